package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionLabel(t *testing.T) {
	g := GameSearchResult{ID: 70, Name: "Half-Life"}
	assert.Equal(t, "Half-Life (ID: 70)", g.SelectionLabel())
}

func TestParseSelectionLabel(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		wantID int
		wantOK bool
	}{
		{
			name:   "plain label",
			text:   "Half-Life (ID: 70)",
			wantID: 70,
			wantOK: true,
		},
		{
			name:   "name contains parentheses",
			text:   "Halo (2003) (ID: 123)",
			wantID: 123,
			wantOK: true,
		},
		{
			name:   "trailing whitespace",
			text:   "Portal (ID: 400) ",
			wantID: 400,
			wantOK: true,
		},
		{
			name:   "no id marker",
			text:   "Half-Life",
			wantOK: false,
		},
		{
			name:   "non-numeric id",
			text:   "Half-Life (ID: abc)",
			wantOK: false,
		},
		{
			name:   "zero id",
			text:   "Half-Life (ID: 0)",
			wantOK: false,
		},
		{
			name:   "empty text",
			text:   "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ParseSelectionLabel(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}
