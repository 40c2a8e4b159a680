package errors_test

import (
	"fmt"
	"testing"

	"github.com/speakeasy-api/gamexml/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Is_Success(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      errors.Error
		target   error
		expected bool
	}{
		{
			name:     "exact match",
			err:      errors.Error("test error"),
			target:   errors.Error("test error"),
			expected: true,
		},
		{
			name:     "wrapped error with separator",
			err:      errors.Error("test error"),
			target:   errors.New("test error -- wrapped cause"),
			expected: true,
		},
		{
			name:     "different error",
			err:      errors.Error("test error"),
			target:   errors.Error("different error"),
			expected: false,
		},
		{
			name:     "partial match without separator",
			err:      errors.Error("test error"),
			target:   errors.New("test error but different"),
			expected: false,
		},
		{
			name:     "nil target",
			err:      errors.Error("test error"),
			target:   nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.err.Is(tt.target))
		})
	}
}

func TestError_Wrap_Success(t *testing.T) {
	t.Parallel()

	const errBase = errors.Error("base failure")
	cause := fmt.Errorf("disk full")

	wrapped := errBase.Wrap(cause)
	require.Equal(t, "base failure -- disk full", wrapped.Error())
	require.ErrorIs(t, wrapped, errBase)
	require.ErrorIs(t, wrapped, cause)

	formatted := errBase.Wrapf("line %d", 3)
	require.Equal(t, "base failure -- line 3", formatted.Error())
	require.ErrorIs(t, formatted, errBase)

	outer := fmt.Errorf("loading: %w", wrapped)
	require.ErrorIs(t, outer, errBase)
}

func TestUnwrapErrors_Success(t *testing.T) {
	t.Parallel()

	require.Nil(t, errors.UnwrapErrors(nil))

	single := errors.New("one")
	require.Equal(t, []error{single}, errors.UnwrapErrors(single))

	a, b := errors.New("a"), errors.New("b")
	joined := errors.Join(a, b)
	require.Equal(t, []error{a, b}, errors.UnwrapErrors(joined))
}
