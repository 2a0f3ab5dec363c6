// Package scopes implements the authorization-scope algebra used by REST API
// access tokens.
//
// A scope is a permission string of the form
//
//	[unauthenticated_]<read|write>_<resource>
//
// e.g. "read_orders", "write_products" or "unauthenticated_read_checkouts".
// Scopes travel on the wire as a comma-delimited list. A write scope implies
// the read scope for the same resource, so "write_orders" grants everything
// "read_orders" grants.
//
// # Overview
//
// The central type is Set, an immutable value built once from raw input.
// Construction validates every entry, collapses duplicates, and removes
// scopes that are implied by another scope already present (the compressed
// view). Authorization checks use Covers, which answers "does the set of
// scopes I hold grant everything the other set requires?" via containment in
// the implication-expanded view.
//
// # Usage
//
//	import "github.com/storekit-go/storekit/pkg/scopes"
//
//	granted, err := scopes.Parse("write_orders,read_products")
//	if err != nil {
//		// one of the entries was not a valid scope
//	}
//
//	required, _ := scopes.Parse("read_orders")
//	if !granted.Covers(required) {
//		return errors.New("insufficient permissions")
//	}
//
//	granted.String() // "read_products,write_orders"
//
// # Error Handling
//
// Construction is all-or-nothing: the only failure mode is ErrInvalidScope,
// wrapped with the offending entry and matchable with errors.Is. No partial
// set is ever produced.
package scopes
