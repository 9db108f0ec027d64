package pagination

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_ClampsBounds(t *testing.T) {
	p := New(0, 0, 45)
	require.Equal(t, 1, p.Page)
	require.Equal(t, 20, p.Limit)
	require.Equal(t, 3, p.Pages)
	require.True(t, p.HasNext)
	require.False(t, p.HasPrev)

	p = New(2, 500, 45)
	require.Equal(t, 100, p.Limit)
	require.Equal(t, 1, p.Pages)
}

func TestSlice(t *testing.T) {
	p := New(2, 10, 25)
	start, end := p.Slice(25)
	require.Equal(t, 10, start)
	require.Equal(t, 20, end)

	// Past the end of the list.
	p = New(5, 10, 25)
	start, end = p.Slice(25)
	require.Equal(t, 25, start)
	require.Equal(t, 25, end)
}
