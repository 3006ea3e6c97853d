package panel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPairLeftActive(t *testing.T) {
	p := NewPair("/a", "/b")
	require.Equal(t, Left, p.ActiveSide())
	require.True(t, p.Left.Active)
	require.False(t, p.Right.Active)
	require.Same(t, p.Left, p.Active())
}

func TestSwapTogglesActive(t *testing.T) {
	p := NewPair("/a", "/b")
	p.Swap()
	require.Equal(t, Right, p.ActiveSide())
	require.True(t, p.Right.Active)
	require.False(t, p.Left.Active)
	p.Swap()
	require.Equal(t, Left, p.ActiveSide())
}
