package pagination

import (
	"context"
	"errors"
	"iter"
	"net/http"
	"slices"
)

// Fetcher retrieves and deserializes one page by URL. It is the injected
// collaborator that owns HTTP transport; its errors propagate to callers
// unchanged and are never retried here.
type Fetcher[T any] func(ctx context.Context, url string) (*Page[T], error)

// Option configures a page at construction time.
type Option func(*pageConfig)

type pageConfig struct {
	autoAdvance bool
}

// WithoutAutoAdvance suppresses auto-advance during item iteration: All
// yields only the page's own items instead of continuing into the next page.
func WithoutAutoAdvance() Option {
	return func(c *pageConfig) {
		c.autoAdvance = false
	}
}

// NavOption configures a single Next/Previous call.
type NavOption func(*navConfig)

type navConfig struct {
	noCache bool
}

// NoCache keeps a freshly fetched page out of the adjacency cache. It does
// not bypass an existing cache hit: a neighbor that is already cached is
// returned regardless of this option.
func NoCache() NavOption {
	return func(c *navConfig) {
		c.noCache = true
	}
}

// Page is one fetched batch of items plus the links needed to fetch its
// neighbors. Pages are created by a Fetcher in response to an initial query
// or a Next/Previous call.
//
// A page caches at most one already-fetched neighbor per direction. The
// cache mutation performed by navigation is not atomic; callers using a page
// from multiple goroutines must lock around navigation themselves.
type Page[T any] struct {
	items       []T
	links       Links
	fetcher     Fetcher[T]
	autoAdvance bool

	next *Page[T]
	prev *Page[T]
}

// NewPage builds a page from its items, the response header the page arrived
// with, and the fetcher used to realize its neighbor links. Pagination links
// are derived from the header once, at construction, and never recomputed.
//
// Returns ErrNilFetcher when fetcher is nil. Item iteration auto-advances
// into following pages by default; pass WithoutAutoAdvance to yield only
// this page's items.
func NewPage[T any](items []T, header http.Header, fetcher Fetcher[T], opts ...Option) (*Page[T], error) {
	if fetcher == nil {
		return nil, ErrNilFetcher
	}

	cfg := pageConfig{autoAdvance: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Page[T]{
		items:       slices.Clone(items),
		links:       ParseLinks(header),
		fetcher:     fetcher,
		autoAdvance: cfg.autoAdvance,
	}, nil
}

// Items returns a copy of the page's own items, in the order the server
// returned them. Mutating the result does not affect the page.
func (p *Page[T]) Items() []T {
	return slices.Clone(p.items)
}

// HasNext reports whether a next link was present in the page's metadata.
func (p *Page[T]) HasNext() bool {
	return p.links.Next != ""
}

// HasPrevious reports whether a previous link was present in the page's
// metadata.
func (p *Page[T]) HasPrevious() bool {
	return p.links.Previous != ""
}

// NextURL returns the raw next link, or "" if none.
func (p *Page[T]) NextURL() string {
	return p.links.Next
}

// PreviousURL returns the raw previous link, or "" if none.
func (p *Page[T]) PreviousURL() string {
	return p.links.Previous
}

// Next returns the following page.
//
// An already-cached neighbor is returned without a fetch, regardless of
// NoCache. Otherwise the page is fetched through the Fetcher; with the
// default caching behavior the result is linked bidirectionally so repeated
// navigation is O(1) after the first fetch. Returns ErrNoPage when the page
// has no next link.
func (p *Page[T]) Next(ctx context.Context, opts ...NavOption) (*Page[T], error) {
	if p.next != nil {
		return p.next, nil
	}
	if !p.HasNext() {
		return nil, ErrNoPage
	}
	page, cache, err := p.fetchPage(ctx, p.links.Next, opts)
	if err != nil {
		return nil, err
	}
	if cache {
		p.next = page
		page.prev = p
	}
	return page, nil
}

// Previous returns the preceding page, with the same caching behavior as
// Next. Returns ErrNoPage when the page has no previous link.
func (p *Page[T]) Previous(ctx context.Context, opts ...NavOption) (*Page[T], error) {
	if p.prev != nil {
		return p.prev, nil
	}
	if !p.HasPrevious() {
		return nil, ErrNoPage
	}
	page, cache, err := p.fetchPage(ctx, p.links.Previous, opts)
	if err != nil {
		return nil, err
	}
	if cache {
		p.prev = page
		page.next = p
	}
	return page, nil
}

func (p *Page[T]) fetchPage(ctx context.Context, url string, opts []NavOption) (*Page[T], bool, error) {
	cfg := navConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	page, err := p.fetcher(ctx, url)
	if err != nil {
		return nil, false, err
	}
	// The iteration mode travels with navigation so that a chain started
	// without auto-advance stays that way.
	page.autoAdvance = p.autoAdvance
	return page, !cfg.noCache, nil
}

// All returns an iterator over the page's items. With auto-advance enabled
// (the default), exhausting the current page's items transparently fetches
// the next page and continues until a page has no next link; pages fetched
// this way are cached, so a second full iteration reuses them instead of
// re-fetching.
//
// End of data terminates the sequence cleanly. Any other fetch error is
// yielded once with a zero item, then iteration stops. Each call to All
// restarts from this page's first item.
func (p *Page[T]) All(ctx context.Context) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		current := p
		for {
			for _, item := range current.items {
				if !yield(item, nil) {
					return
				}
			}
			if !current.autoAdvance {
				return
			}
			next, err := current.Next(ctx)
			if err != nil {
				if !errors.Is(err, ErrNoPage) {
					var zero T
					yield(zero, err)
				}
				return
			}
			current = next
		}
	}
}

// Len returns the page's own item count plus the count of every page already
// cached in the next direction. It never fetches to compute a total.
func (p *Page[T]) Len() int {
	n := len(p.items)
	if p.next != nil {
		n += p.next.Len()
	}
	return n
}
