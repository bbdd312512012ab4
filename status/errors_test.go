package status

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodeOf(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		require.Equal(t, OK, CodeOf(nil))
	})

	t.Run("sentinel", func(t *testing.T) {
		require.Equal(t, Grammar, CodeOf(ErrBadBoundary))
		require.Equal(t, TooLarge, CodeOf(ErrPartTooLarge))
	})

	t.Run("wrapped veto", func(t *testing.T) {
		err := fmt.Errorf("%w: %w", ErrCallbackVeto, io.ErrShortWrite)
		require.Equal(t, CallbackVeto, CodeOf(err))
		require.True(t, errors.Is(err, io.ErrShortWrite))
		require.True(t, errors.Is(err, ErrCallbackVeto))
	})

	t.Run("foreign", func(t *testing.T) {
		require.Equal(t, Usage, CodeOf(io.EOF))
	})
}

func TestCodeString(t *testing.T) {
	require.Equal(t, "grammar violation", Grammar.String())
	require.Equal(t, "unknown", Code(200).String())
}

func TestFormCodes(t *testing.T) {
	require.Equal(t, Form, CodeOf(ErrNoPartName))
	require.Equal(t, "malformed form", Form.String())
}
