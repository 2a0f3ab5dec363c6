package pagination

import (
	"context"
	"errors"
	"iter"
)

// Iterator walks a paginated result set one page at a time while keeping a
// single page in memory, which makes it the right tool for very long result
// sets. It navigates with NoCache throughout, so produced pages are never
// retained in any adjacency cache.
type Iterator[T any] struct {
	start *Page[T]
}

// NewIterator wraps a starting page for page-level traversal. The wrapped
// page is forced out of auto-advance mode so that item iteration over a
// produced page never advances the traversal on its own.
//
// Returns ErrNilPage when page is nil.
func NewIterator[T any](page *Page[T]) (*Iterator[T], error) {
	if page == nil {
		return nil, ErrNilPage
	}
	page.autoAdvance = false
	return &Iterator[T]{start: page}, nil
}

// Pages returns a forward-only iterator over pages, starting with the
// wrapped page. End of data terminates the sequence cleanly; any other fetch
// error is yielded once with a nil page, then iteration stops.
//
// Example:
//
//	it, err := pagination.NewIterator(first)
//	if err != nil {
//		return err
//	}
//	for page, err := range it.Pages(ctx) {
//		if err != nil {
//			return err
//		}
//		for _, item := range page.Items() {
//			process(item)
//		}
//	}
func (it *Iterator[T]) Pages(ctx context.Context) iter.Seq2[*Page[T], error] {
	return func(yield func(*Page[T], error) bool) {
		current := it.start
		for {
			if !yield(current, nil) {
				return
			}
			next, err := current.Next(ctx, NoCache())
			if err != nil {
				if !errors.Is(err, ErrNoPage) {
					yield(nil, err)
				}
				return
			}
			current = next
		}
	}
}
