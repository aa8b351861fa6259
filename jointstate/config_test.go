package jointstate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lacam/jointstate"
)

func TestFingerprintPureFunctionOfSequence(t *testing.T) {
	a := jointstate.New([]int{1, 2, 3})
	b := jointstate.New([]int{1, 2, 3})
	require.True(t, a.Equal(b))
	require.Equal(t, a.Fingerprint(), b.Fingerprint())
}

func TestFingerprintDiffersOnDifferentSequence(t *testing.T) {
	a := jointstate.New([]int{1, 2, 3})
	b := jointstate.New([]int{1, 3, 2})
	require.False(t, a.Equal(b))
	require.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}

func TestWithDoesNotMutateOriginal(t *testing.T) {
	a := jointstate.New([]int{1, 2, 3})
	b := a.With(1, 9)
	require.Equal(t, 2, a.At(1))
	require.Equal(t, 9, b.At(1))
}

func TestNewCopiesInputSlice(t *testing.T) {
	src := []int{1, 2, 3}
	c := jointstate.New(src)
	src[0] = 99
	require.Equal(t, 1, c.At(0))
}
