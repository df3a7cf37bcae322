package pager

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeItems(n int) []string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf("item-%d", i)
	}
	return items
}

// TestWindowIsPure verifies that repeated calls with identical inputs
// return identical slices.
func TestWindowIsPure(t *testing.T) {
	items := makeItems(23)
	for _, size := range []int{1, 2, 5, 10} {
		for index := 1; index <= 6; index++ {
			first := Window(items, size, index)
			second := Window(items, size, index)
			assert.Equal(t, first, second, "size=%d index=%d", size, index)
		}
	}
}

func TestWindowSevenItemsPageSizeFive(t *testing.T) {
	items := makeItems(7)

	page1 := Window(items, 5, 1)
	require.Len(t, page1, 5)
	assert.Equal(t, items[0:5], page1)

	page2 := Window(items, 5, 2)
	require.Len(t, page2, 2)
	assert.Equal(t, items[5:7], page2)

	assert.Equal(t, 2, TotalPages(7, 5))
}

func TestWindowPastEndIsEmpty(t *testing.T) {
	items := makeItems(4)
	assert.Empty(t, Window(items, 5, 2))
	assert.Empty(t, Window(items, 5, 100))
	assert.Empty(t, Window[string](nil, 5, 1))
}

func TestWindowRejectsBadInputs(t *testing.T) {
	items := makeItems(4)
	assert.Empty(t, Window(items, 0, 1))
	assert.Empty(t, Window(items, 3, 0))
	assert.Empty(t, Window(items, -1, -1))
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total, size, want int
	}{
		{0, 5, 1},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{7, 5, 2},
		{10, 5, 2},
		{11, 5, 3},
		{9, 2, 5},
		{100, 10, 10},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, TotalPages(c.total, c.size), "total=%d size=%d", c.total, c.size)
	}
}

// TestPagerClampedNavigation walks arbitrary next/prev sequences and
// checks the index never leaves [1, totalPages].
func TestPagerClampedNavigation(t *testing.T) {
	const total = 13
	p := New(5) // 3 pages

	steps := []string{"next", "next", "next", "next", "next", "prev", "prev", "prev", "prev", "next"}
	for _, step := range steps {
		if step == "next" {
			p.Next(total)
		} else {
			p.Prev()
		}
		assert.GreaterOrEqual(t, p.Index(), 1)
		assert.LessOrEqual(t, p.Index(), TotalPages(total, p.PageSize()))
	}
}

func TestPagerNoWraparound(t *testing.T) {
	p := New(5)

	p.Prev()
	assert.Equal(t, 1, p.Index())

	p.Next(7) // 2 pages
	p.Next(7)
	p.Next(7)
	assert.Equal(t, 2, p.Index())
}

// TestPagerClampAfterShrink simulates a refresh shrinking the collection
// below the current page.
func TestPagerClampAfterShrink(t *testing.T) {
	p := New(5)
	p.SetIndex(4, 20) // 4 pages, valid

	p.Clamp(6) // now only 2 pages
	assert.Equal(t, 2, p.Index())

	p.Clamp(0) // empty collection still has page 1
	assert.Equal(t, 1, p.Index())
}

func TestPagerEmptyCollection(t *testing.T) {
	p := New(5)
	assert.Equal(t, 1, p.Index())
	assert.Equal(t, 1, TotalPages(0, 5))

	p.Next(0)
	assert.Equal(t, 1, p.Index())
}
