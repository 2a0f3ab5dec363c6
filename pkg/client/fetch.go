package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"

	"github.com/storekit-go/storekit/pkg/pagination"
)

// PageFetcher returns a pagination fetcher that GETs a URL through c and
// decodes a JSON object whose root field holds the page's items:
//
//	{"products": [{...}, {...}]}
//
// The response's Link header provides the page's neighbor URLs. A missing
// root field decodes as an empty page, which some APIs use for the tail of a
// result set.
func PageFetcher[T any](c *Client, root string) pagination.Fetcher[T] {
	var fetch pagination.Fetcher[T]
	fetch = func(ctx context.Context, pageURL string) (*pagination.Page[T], error) {
		resp, err := c.Get(ctx, pageURL)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		var body map[string]json.RawMessage
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return nil, errors.Join(ErrDecodeResponse, err)
		}

		var items []T
		if raw, ok := body[root]; ok {
			if err := json.Unmarshal(raw, &items); err != nil {
				return nil, errors.Join(ErrDecodeResponse, err)
			}
		}

		// Neighbor pages must be fetched the same way, so the closure hands
		// itself to the page it builds.
		return pagination.NewPage(items, resp.Header, fetch)
	}
	return fetch
}

// GetPage fetches the first page of a paginated listing.
//
// Example:
//
//	page, err := client.GetPage[Product](ctx, api, "/products.json", "products", url.Values{
//		"limit": []string{"50"},
//	})
//	if err != nil {
//		return err
//	}
//	for product, err := range page.All(ctx) {
//		...
//	}
func GetPage[T any](ctx context.Context, c *Client, path, root string, query url.Values) (*pagination.Page[T], error) {
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	return PageFetcher[T](c, root)(ctx, path)
}
