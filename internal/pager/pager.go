// Package pager derives a visible page window over an in-memory collection.
// All derivations are pure: the same inputs always yield the same slice.
package pager

// Window returns the contiguous slice of items for a 1-based page index,
// clamped to the collection bounds. An index past the end yields an empty
// slice, never an error.
func Window[T any](items []T, pageSize, pageIndex int) []T {
	if pageSize < 1 || pageIndex < 1 {
		return nil
	}
	start := (pageIndex - 1) * pageSize
	if start >= len(items) {
		return nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// TotalPages returns ceil(total/pageSize), but never less than one: an
// empty collection still displays as "page 1 of 1".
func TotalPages(total, pageSize int) int {
	if pageSize < 1 {
		return 1
	}
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// Pager is a page cursor over a collection of known length. The index is
// 1-based and always clamped into [1, TotalPages]; Next and Prev never
// wrap around.
type Pager struct {
	pageSize int
	index    int
}

// New creates a pager positioned on the first page.
func New(pageSize int) *Pager {
	if pageSize < 1 {
		pageSize = 1
	}
	return &Pager{pageSize: pageSize, index: 1}
}

// Index returns the current 1-based page index.
func (p *Pager) Index() int { return p.index }

// PageSize returns the configured page size.
func (p *Pager) PageSize() int { return p.pageSize }

// SetIndex moves to the given page, clamped against total items.
func (p *Pager) SetIndex(index, total int) {
	p.index = index
	p.Clamp(total)
}

// Next advances one page, clamped against total items.
func (p *Pager) Next(total int) {
	p.index++
	p.Clamp(total)
}

// Prev steps back one page, clamped at the first page.
func (p *Pager) Prev() {
	p.index--
	if p.index < 1 {
		p.index = 1
	}
}

// Clamp pulls a stale index back into range after the collection changed,
// e.g. when a refresh shrank the collection below the current page.
func (p *Pager) Clamp(total int) {
	last := TotalPages(total, p.pageSize)
	if p.index > last {
		p.index = last
	}
	if p.index < 1 {
		p.index = 1
	}
}
