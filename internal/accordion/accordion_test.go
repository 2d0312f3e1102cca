package accordion

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertOnlyOpen checks the single-open invariant: want is the only open panel (-1 for none)
func assertOnlyOpen(t *testing.T, c *Controller, want int) {
	t.Helper()
	for i := 0; i < c.Len(); i++ {
		assert.Equal(t, i == want, c.IsOpen(i), "panel %d", i)
	}
	idx, ok := c.OpenIndex()
	if want < 0 {
		assert.False(t, ok, "expected all panels closed, got %d open", idx)
		return
	}
	require.True(t, ok)
	assert.Equal(t, want, idx)
}

func newController(t *testing.T, n int) *Controller {
	t.Helper()
	c, err := New(n)
	require.NoError(t, err)
	return c
}

func TestNewStartsClosed(t *testing.T) {
	c := newController(t, 4)
	assert.Equal(t, 4, c.Len())
	assertOnlyOpen(t, c, -1)
}

func TestNewRejectsNegativeCount(t *testing.T) {
	_, err := New(-1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNegativeCount))
}

func TestZeroPanels(t *testing.T) {
	c := newController(t, 0)
	err := c.Toggle(0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfRange))
	assert.False(t, c.IsOpen(0))
}

func TestToggleTwiceRestoresState(t *testing.T) {
	c := newController(t, 4)

	// from closed
	require.NoError(t, c.Toggle(1))
	require.NoError(t, c.Toggle(1))
	assertOnlyOpen(t, c, -1)

	// from another panel open
	require.NoError(t, c.Toggle(3))
	require.NoError(t, c.Toggle(0))
	require.NoError(t, c.Toggle(0))
	assertOnlyOpen(t, c, -1)

	require.NoError(t, c.Toggle(2))
	require.NoError(t, c.Toggle(2))
	require.NoError(t, c.Toggle(2))
	assertOnlyOpen(t, c, 2)
}

func TestOpeningOneClosesOthers(t *testing.T) {
	for n := 2; n <= 6; n++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				c := newController(t, n)
				require.NoError(t, c.Toggle(i))
				require.NoError(t, c.Toggle(j))
				assert.False(t, c.IsOpen(i), "n=%d i=%d j=%d", n, i, j)
				assert.True(t, c.IsOpen(j), "n=%d i=%d j=%d", n, i, j)
			}
		}
	}
}

func TestFAQScenario(t *testing.T) {
	c := newController(t, 4)

	require.NoError(t, c.Toggle(2))
	assertOnlyOpen(t, c, 2)

	require.NoError(t, c.Toggle(0))
	assertOnlyOpen(t, c, 0)
	assert.False(t, c.IsOpen(2))
}

func TestToggleOutOfRangeKeepsState(t *testing.T) {
	c := newController(t, 3)
	require.NoError(t, c.Toggle(1))

	for _, idx := range []int{-1, 3, 42} {
		err := c.Toggle(idx)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrOutOfRange), "idx=%d", idx)
	}
	assertOnlyOpen(t, c, 1)
}

func TestClose(t *testing.T) {
	c := newController(t, 3)
	require.NoError(t, c.Toggle(2))
	c.Close()
	assertOnlyOpen(t, c, -1)
}
