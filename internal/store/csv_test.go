package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fathomhq/fathom/internal/model"
)

func TestImportCSV(t *testing.T) {
	input := strings.Join([]string{
		"team,member,feature,hours,category,date",
		"backend,alice,CRUD,4.5,core,2026-08-01",
		"frontend,bob,Dashboard,6,,",
		"both,carol,Settings,2.5",
	}, "\n")

	entries, rowErrs, err := ImportCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	require.Len(t, entries, 3)

	assert.Equal(t, model.TeamBackend, entries[0].Team)
	assert.Equal(t, "alice", entries[0].Member)
	assert.Equal(t, "CRUD", entries[0].FeatureLabel)
	assert.Equal(t, 4.5, entries[0].Hours)
	assert.Equal(t, "core", entries[0].Category)
	assert.Equal(t, "2026-08-01", entries[0].Date.Format("2006-01-02"))

	assert.True(t, entries[1].Date.IsZero())
	assert.NotEmpty(t, entries[1].ID)
	assert.Equal(t, model.TeamBoth, entries[2].Team)
}

func TestImportCSVCollectsRowErrors(t *testing.T) {
	input := strings.Join([]string{
		"team,member,feature,hours",
		"backend,alice,CRUD,4.5",
		"backend,bob,CRUD,not-a-number",
		"ops,carol,CRUD,3",
		"backend,dave,CRUD,-1",
		"backend,erin,Websocket,8",
		"backend,frank",
	}, "\n")

	entries, rowErrs, err := ImportCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Len(t, entries, 2, "valid rows survive a partially bad batch")
	require.Len(t, rowErrs, 4)
	assert.Equal(t, 3, rowErrs[0].Line)
	assert.Contains(t, rowErrs[0].Error(), "hours")

	var verr *model.ValidationError
	assert.ErrorAs(t, rowErrs[1].Err, &verr)
	assert.Equal(t, "team", verr.Field)
	assert.ErrorAs(t, rowErrs[2].Err, &verr)
	assert.Equal(t, "hours", verr.Field)
}

func TestImportCSVWithoutHeader(t *testing.T) {
	entries, rowErrs, err := ImportCSV(strings.NewReader("backend,alice,CRUD,4\n"))
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	assert.Len(t, entries, 1)
}

func TestImportCSVTeamIsCaseInsensitive(t *testing.T) {
	entries, rowErrs, err := ImportCSV(strings.NewReader("Backend,alice,CRUD,4\n"))
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	require.Len(t, entries, 1)
	assert.Equal(t, model.TeamBackend, entries[0].Team)
}

func TestImportCSVRejectsBadDate(t *testing.T) {
	_, rowErrs, err := ImportCSV(strings.NewReader("backend,alice,CRUD,4,core,08/01/2026\n"))
	require.NoError(t, err)
	require.Len(t, rowErrs, 1)
	var verr *model.ValidationError
	assert.ErrorAs(t, rowErrs[0].Err, &verr)
	assert.Equal(t, "date", verr.Field)
}

func TestImportCSVEmptyInput(t *testing.T) {
	entries, rowErrs, err := ImportCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Empty(t, rowErrs)
}
