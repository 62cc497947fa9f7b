package main

import (
	"github.com/fathomhq/fathom/internal/command"
)

func main() {
	command.Execute()
}
