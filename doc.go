// Package storekit provides the reusable core of a REST API client library
// for cursor-paginated, scope-protected commerce APIs.
//
// The library is a set of small, independent packages rather than a
// framework; use the ones you need:
//
//   - pkg/scopes: the authorization-scope algebra. Parse and normalize
//     granted permission scopes and answer "does the set of scopes I hold
//     cover everything this operation requires?", including the read scope
//     implied by every write scope.
//   - pkg/pagination: cursor-based pagination. Walk an HTTP-backed result
//     set as one logical sequence with lazy, link-ordered page fetching,
//     or page at a time with constant memory.
//   - pkg/client: the HTTP transport collaborator that ties the two to a
//     real API: env-driven configuration, request identification,
//     token-based auth, and call-budget tracking.
//
// Basic Usage:
//
//	cfg, err := client.LoadConfig()
//	if err != nil {
//		return err
//	}
//	api, err := client.New(cfg)
//	if err != nil {
//		return err
//	}
//
//	page, err := client.GetPage[Product](ctx, api, "/products.json", "products", nil)
//	if err != nil {
//		return err
//	}
//	for product, err := range page.All(ctx) {
//		if err != nil {
//			return err
//		}
//		fmt.Println(product.Title)
//	}
package storekit
