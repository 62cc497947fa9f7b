package estimate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fathomhq/fathom/internal/model"
)

func TestDetectOverlaps(t *testing.T) {
	vocab := model.DefaultOverlapKeywords

	tests := []struct {
		name     string
		features []string
		want     int
	}{
		{
			name:     "shared keyword flags both features",
			features: []string{"User Login", "User Profile"},
			want:     1,
		},
		{
			name:     "no shared keyword",
			features: []string{"CRUD", "Websocket"},
			want:     0,
		},
		{
			name:     "keyword in one feature only",
			features: []string{"Payment Gateway", "Websocket"},
			want:     0,
		},
		{
			name:     "single feature never overlaps",
			features: []string{"User Login"},
			want:     0,
		},
		{
			name:     "empty selection",
			features: nil,
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectOverlaps(tt.features, vocab)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestDetectOverlapsDetails(t *testing.T) {
	got := DetectOverlaps([]string{"Admin Login", "Login Page", "Checkout"}, model.DefaultOverlapKeywords)
	require.Len(t, got, 1)
	assert.Equal(t, "login", got[0].Keyword)
	assert.Equal(t, []string{"Admin Login", "Login Page"}, got[0].Features)
	assert.NotEmpty(t, got[0].Suggestion)
}

func TestDetectOverlapsWholeTokenOnly(t *testing.T) {
	// "authentication" contains "auth" as a substring but not as a token.
	got := DetectOverlaps([]string{"Authentication", "Authorization"}, []string{"auth"})
	assert.Empty(t, got)

	got = DetectOverlaps([]string{"Auth Service", "OAuth2 Auth Flow"}, []string{"auth"})
	assert.Len(t, got, 1)
}

func TestDetectOverlapsCustomVocabulary(t *testing.T) {
	got := DetectOverlaps([]string{"Invoice Export", "Invoice Import"}, []string{"invoice"})
	require.Len(t, got, 1)
	assert.Equal(t, "invoice", got[0].Keyword)
}

func TestDetectOverlapsCaseInsensitive(t *testing.T) {
	got := DetectOverlaps([]string{"USER management", "user settings"}, model.DefaultOverlapKeywords)
	require.Len(t, got, 1)
	assert.Equal(t, "user", got[0].Keyword)
}
