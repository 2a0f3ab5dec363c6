// Package client is the HTTP transport collaborator for the storekit
// primitives: an authenticated, pooled REST client that realizes the
// pagination package's Fetcher contract.
//
// # Overview
//
// A Client is bound to one API origin and authenticates either with a static
// access-token header or an OAuth2 token source. Every request carries a
// generated X-Request-ID, the library user agent, and a JSON Accept header.
// Responses update the client's view of the server-reported call budget
// (X-API-Call-Limit), which callers can inspect via CallLimit to pace
// themselves; the client itself never retries or throttles.
//
// Configuration comes from the environment:
//
//	API_BASE_URL=https://shop.example.com/admin/api/2024-01
//	API_ACCESS_TOKEN=shpat_...
//	API_TIMEOUT=30s
//
// # Usage
//
//	cfg, err := client.LoadConfig()
//	if err != nil {
//		return err
//	}
//	api, err := client.New(cfg, client.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	page, err := client.GetPage[Order](ctx, api, "/orders.json", "orders", nil)
//	if err != nil {
//		return err
//	}
//	for order, err := range page.All(ctx) {
//		if err != nil {
//			return err
//		}
//		process(order)
//	}
//
// # Error Handling
//
// Sentinel errors (ErrInvalidConfig, ErrInvalidBaseURL, ErrUnexpectedStatus,
// ErrDecodeResponse, ErrTokenSource) are matchable with errors.Is. Transport
// failures from the underlying http.Client pass through unchanged.
package client
