package domain

import (
	"errors"
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrUnsupportedType", ErrUnsupportedType},
		{"ErrInvalidPattern", ErrInvalidPattern},
		{"ErrAnalysisUnavailable", ErrAnalysisUnavailable},
		{"ErrRateLimited", ErrRateLimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestPatternError(t *testing.T) {
	_, compileErr := regexp.Compile("(")
	require.Error(t, compileErr)

	err := &PatternError{Index: 2, Pattern: "(", Err: compileErr}

	t.Run("message names finding and pattern", func(t *testing.T) {
		assert.Contains(t, err.Error(), "finding 2")
		assert.Contains(t, err.Error(), `"("`)
	})

	t.Run("matches ErrInvalidPattern", func(t *testing.T) {
		assert.ErrorIs(t, err, ErrInvalidPattern)
		assert.NotErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unwraps compile error", func(t *testing.T) {
		assert.Equal(t, compileErr, errors.Unwrap(err))
	})

	t.Run("survives wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("annotator grammar: %w", err)
		assert.ErrorIs(t, wrapped, ErrInvalidPattern)

		var pe *PatternError
		require.ErrorAs(t, wrapped, &pe)
		assert.Equal(t, 2, pe.Index)
	})
}
