package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		want    string
		wantErr string
	}{
		{
			name:  "plain title",
			title: "Buy milk",
			want:  "Buy milk",
		},
		{
			name:  "trims surrounding whitespace",
			title: "  Buy milk\t",
			want:  "Buy milk",
		},
		{
			name:  "exactly max length",
			title: strings.Repeat("A", 200),
			want:  strings.Repeat("A", 200),
		},
		{
			name:  "max length after trimming",
			title: "  " + strings.Repeat("A", 200) + "  ",
			want:  strings.Repeat("A", 200),
		},
		{
			name:  "multibyte runes counted as characters",
			title: strings.Repeat("й", 200),
			want:  strings.Repeat("й", 200),
		},
		{
			name:    "empty",
			title:   "",
			wantErr: "Title cannot be empty.",
		},
		{
			name:    "whitespace only",
			title:   "   \t ",
			wantErr: "Title cannot be empty.",
		},
		{
			name:    "one over max length",
			title:   strings.Repeat("A", 201),
			wantErr: "Title must be 200 characters or less.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateTitle(tt.title)
			if tt.wantErr != "" {
				require.Error(t, err)

				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "title", validationErr.Field)
				assert.Equal(t, tt.wantErr, validationErr.Message)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateDescription(t *testing.T) {
	t.Run("nil is valid", func(t *testing.T) {
		require.NoError(t, ValidateDescription(nil))
	})

	t.Run("exactly max length", func(t *testing.T) {
		description := strings.Repeat("A", 1000)
		require.NoError(t, ValidateDescription(&description))
	})

	t.Run("not trimmed before counting", func(t *testing.T) {
		// 999 letters plus two surrounding spaces exceed the limit.
		description := " " + strings.Repeat("A", 999) + " "
		require.Error(t, ValidateDescription(&description))
	})

	t.Run("one over max length", func(t *testing.T) {
		description := strings.Repeat("A", 1001)
		err := ValidateDescription(&description)
		require.Error(t, err)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "description", validationErr.Field)
		assert.Equal(t, "Description must be 1000 characters or less.", validationErr.Message)
	})
}
