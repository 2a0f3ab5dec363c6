// Package pagination walks an HTTP-backed, cursor-paginated result set as a
// single logical sequence, fetching pages lazily through an injected fetcher.
//
// # Overview
//
// A Page holds one fetched batch of items plus the next/previous URLs parsed
// from the response's Link header. Navigation is synchronous and one page at
// a time: Next and Previous invoke the Fetcher on the stored link and, by
// default, cache the result bidirectionally so walking back and forth never
// re-fetches. Item-level iteration via All flattens the chain, transparently
// advancing into following pages until one has no next link.
//
// Iterator offers the page-level alternative: it traverses forward with
// NoCache navigation so memory stays bounded to a single page regardless of
// result-set length.
//
// # Usage
//
//	fetch := client.PageFetcher[Product](api, "products")
//
//	first, err := fetch(ctx, "https://api.example.com/products.json")
//	if err != nil {
//		return err
//	}
//
//	// Flatten every page into one item sequence.
//	for product, err := range first.All(ctx) {
//		if err != nil {
//			return err
//		}
//		process(product)
//	}
//
// # Caching
//
// Each page caches at most one already-fetched neighbor per direction. The
// NoCache navigation option only controls whether a freshly fetched page is
// retained; a cache hit is honored regardless. This mirrors the behavior
// callers of the original API depend on, surprising as the option name makes
// it.
//
// # Error Handling
//
// ErrNoPage signals end of data and is swallowed by All and Iterator.Pages,
// which simply stop. Transport errors from the Fetcher are never caught or
// retried here; they surface to the caller unchanged.
package pagination
