package domain

import "fmt"

// Page is one slice of a larger ordered result set. PageNumber is 1-based.
type Page[T any] struct {
	Items         []T
	PageNumber    int
	PageSize      int
	TotalElements int64
}

// CheckPageRequest rejects page numbers or sizes below 1.
func CheckPageRequest(page, size int) error {
	if page < 1 || size < 1 {
		return fmt.Errorf("%w: page=%d size=%d", ErrInvalidPageRequest, page, size)
	}
	return nil
}

// NewPage builds a page, enforcing len(items) <= size.
func NewPage[T any](items []T, page, size int, total int64) (Page[T], error) {
	if err := CheckPageRequest(page, size); err != nil {
		return Page[T]{}, err
	}
	if len(items) > size {
		return Page[T]{}, fmt.Errorf("%w: %d items, size %d", ErrPageOverflow, len(items), size)
	}
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, PageNumber: page, PageSize: size, TotalElements: total}, nil
}

// Offset is the number of items preceding the page.
func (p Page[T]) Offset() int {
	return (p.PageNumber - 1) * p.PageSize
}

// TotalPages is the number of pages needed to hold TotalElements.
func (p Page[T]) TotalPages() int {
	if p.PageSize < 1 {
		return 0
	}
	return int((p.TotalElements + int64(p.PageSize) - 1) / int64(p.PageSize))
}

// MapPage converts every item with fn, keeping page metadata. Items for which
// fn reports false are dropped.
func MapPage[T, U any](p Page[T], fn func(T) (U, bool)) Page[U] {
	out := make([]U, 0, len(p.Items))
	for _, it := range p.Items {
		if u, ok := fn(it); ok {
			out = append(out, u)
		}
	}
	return Page[U]{Items: out, PageNumber: p.PageNumber, PageSize: p.PageSize, TotalElements: p.TotalElements}
}
