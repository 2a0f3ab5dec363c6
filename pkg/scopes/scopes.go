package scopes

import (
	"fmt"
	"iter"
	"regexp"
	"slices"
	"strings"
)

// Delimiter separates individual scopes inside a delimited scope string.
// Embedded delimiters inside a resource name are not supported and will
// misparse; the wire format has no escaping.
const Delimiter = ","

var (
	scopeRe   = regexp.MustCompile(`^(unauthenticated_)?(write|read)_(.+)$`)
	impliedRe = regexp.MustCompile(`^(unauthenticated_)?write_(.+)$`)
)

// Set is an immutable collection of access scopes.
//
// A set keeps two views of its input: the compressed view, with every scope
// that is implied by another scope removed, and the expanded view, with the
// implied read scope of every write scope added. Holding "write_orders"
// therefore covers a requirement of "read_orders" even when "read_orders"
// was never granted explicitly.
//
// The zero value is an empty set that covers only other empty sets.
type Set struct {
	compressed []string // sorted, deduplicated, implied scopes removed
	expanded   map[string]struct{}
}

// Parse builds a Set from a comma-delimited scope string.
//
// Each entry is trimmed of surrounding whitespace and empty entries are
// discarded, so "read_orders, write_products" and "read_orders,,write_products"
// parse identically. Returns ErrInvalidScope if any remaining entry does not
// match the [unauthenticated_]<read|write>_<resource> shape; no partial set
// is produced.
//
// Example:
//
//	granted, err := scopes.Parse("write_orders,read_products")
//	if err != nil {
//		// handle invalid scope string
//	}
func Parse(s string) (Set, error) {
	return New(strings.Split(s, Delimiter))
}

// New builds a Set from a slice of scope strings.
//
// Sanitization and validation rules are identical to Parse; duplicates
// collapse and insertion order is irrelevant.
func New(list []string) (Set, error) {
	sanitized := make(map[string]struct{}, len(list))
	for _, raw := range list {
		scope := strings.TrimSpace(raw)
		if scope == "" {
			continue
		}
		if !scopeRe.MatchString(scope) {
			return Set{}, fmt.Errorf("%w: %q", ErrInvalidScope, scope)
		}
		sanitized[scope] = struct{}{}
	}

	// The implication is derived from the leading verb token only, so
	// resource names that themselves contain "read" or "write" are safe.
	implied := make(map[string]struct{}, len(sanitized))
	for scope := range sanitized {
		if m := impliedRe.FindStringSubmatch(scope); m != nil {
			implied[m[1]+"read_"+m[2]] = struct{}{}
		}
	}

	compressed := make([]string, 0, len(sanitized))
	expanded := make(map[string]struct{}, len(sanitized)+len(implied))
	for scope := range sanitized {
		expanded[scope] = struct{}{}
		if _, ok := implied[scope]; !ok {
			compressed = append(compressed, scope)
		}
	}
	for scope := range implied {
		expanded[scope] = struct{}{}
	}
	slices.Sort(compressed)

	return Set{compressed: compressed, expanded: expanded}, nil
}

// Covers reports whether s grants everything other requires.
//
// The check is containment of other's compressed scopes in s's expanded
// scopes, so implied read scopes count as granted.
//
// Example:
//
//	granted, _ := scopes.Parse("write_orders")
//	required, _ := scopes.Parse("read_orders")
//	granted.Covers(required) // true
func (s Set) Covers(other Set) bool {
	for _, scope := range other.compressed {
		if _, ok := s.expanded[scope]; !ok {
			return false
		}
	}
	return true
}

// Equal reports whether two sets hold the same compressed scopes,
// regardless of the order or duplication of their original input.
func (s Set) Equal(other Set) bool {
	return slices.Equal(s.compressed, other.compressed)
}

// String returns the compressed scopes joined with Delimiter, in sorted
// order. Parsing the result reproduces an equal Set.
func (s Set) String() string {
	return strings.Join(s.compressed, Delimiter)
}

// List returns a copy of the compressed scopes in sorted order.
func (s Set) List() []string {
	return slices.Clone(s.compressed)
}

// All iterates over the compressed scopes, yielding each member exactly once
// in sorted order.
func (s Set) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, scope := range s.compressed {
			if !yield(scope) {
				return
			}
		}
	}
}

// Len returns the number of compressed scopes.
func (s Set) Len() int {
	return len(s.compressed)
}
