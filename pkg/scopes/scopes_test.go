package scopes_test

import (
	"testing"

	"github.com/storekit-go/storekit/pkg/scopes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: []string{},
		},
		{
			name:     "single scope",
			input:    "read_orders",
			expected: []string{"read_orders"},
		},
		{
			name:     "multiple scopes",
			input:    "read_orders,write_products",
			expected: []string{"read_orders", "write_products"},
		},
		{
			name:     "extra whitespace and empty entries",
			input:    " read_orders , ,write_products, ",
			expected: []string{"read_orders", "write_products"},
		},
		{
			name:     "duplicates collapse",
			input:    "read_orders,read_orders",
			expected: []string{"read_orders"},
		},
		{
			name:     "read implied by write is removed",
			input:    "write_orders,read_orders",
			expected: []string{"write_orders"},
		},
		{
			name:     "unauthenticated implied read is removed",
			input:    "unauthenticated_write_products,unauthenticated_read_products",
			expected: []string{"unauthenticated_write_products"},
		},
		{
			name:     "prefix mismatch keeps both",
			input:    "unauthenticated_write_products,read_products",
			expected: []string{"read_products", "unauthenticated_write_products"},
		},
		{
			name:     "resource containing verb substring",
			input:    "write_read_only_reports,read_read_only_reports",
			expected: []string{"write_read_only_reports"},
		},
		{
			name:     "resource with underscores",
			input:    "read_price_rules,write_draft_orders",
			expected: []string{"read_price_rules", "write_draft_orders"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			set, err := scopes.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, set.List())
		})
	}
}

func TestParseInvalid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
	}{
		{name: "no verb", input: "foo"},
		{name: "verb as suffix", input: "orders_read"},
		{name: "empty resource", input: "write_"},
		{name: "unauthenticated without verb", input: "unauthenticated_orders"},
		{name: "one invalid among valid", input: "read_orders,foo,write_products"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := scopes.Parse(tt.input)
			assert.ErrorIs(t, err, scopes.ErrInvalidScope)
		})
	}
}

func TestParseInvalidNamesOffendingScope(t *testing.T) {
	t.Parallel()
	_, err := scopes.Parse("read_orders,foo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"foo"`)
}

func TestNewMatchesParse(t *testing.T) {
	t.Parallel()
	fromList, err := scopes.New([]string{"write_orders", " read_products "})
	require.NoError(t, err)
	fromString, err := scopes.Parse("write_orders,read_products")
	require.NoError(t, err)
	assert.True(t, fromList.Equal(fromString))
}

func TestCovers(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		granted  string
		required string
		expected bool
	}{
		{
			name:     "write covers its implied read",
			granted:  "write_orders",
			required: "read_orders",
			expected: true,
		},
		{
			name:     "read does not cover write",
			granted:  "read_orders",
			required: "write_orders",
			expected: false,
		},
		{
			name:     "exact match",
			granted:  "read_orders",
			required: "read_orders",
			expected: true,
		},
		{
			name:     "superset covers subset",
			granted:  "read_orders,write_products,read_customers",
			required: "read_orders,read_products",
			expected: true,
		},
		{
			name:     "missing scope fails",
			granted:  "read_orders",
			required: "read_orders,read_products",
			expected: false,
		},
		{
			name:     "unauthenticated write covers unauthenticated read",
			granted:  "unauthenticated_write_products",
			required: "unauthenticated_read_products",
			expected: true,
		},
		{
			name:     "unauthenticated write does not cover authenticated read",
			granted:  "unauthenticated_write_products",
			required: "read_products",
			expected: false,
		},
		{
			name:     "authenticated write does not cover unauthenticated read",
			granted:  "write_products",
			required: "unauthenticated_read_products",
			expected: false,
		},
		{
			name:     "anything covers empty",
			granted:  "read_orders",
			required: "",
			expected: true,
		},
		{
			name:     "empty covers empty",
			granted:  "",
			required: "",
			expected: true,
		},
		{
			name:     "empty does not cover non-empty",
			granted:  "",
			required: "read_orders",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			granted, err := scopes.Parse(tt.granted)
			require.NoError(t, err)
			required, err := scopes.Parse(tt.required)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, granted.Covers(required))
		})
	}
}

func TestCoversReflexive(t *testing.T) {
	t.Parallel()
	inputs := []string{
		"read_orders",
		"write_orders,read_products",
		"unauthenticated_write_checkouts,read_orders,write_orders",
		"",
	}
	for _, input := range inputs {
		set, err := scopes.Parse(input)
		require.NoError(t, err)
		assert.True(t, set.Covers(set), "set %q must cover itself", input)
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		a        string
		b        string
		expected bool
	}{
		{
			name:     "order irrelevant",
			a:        "read_orders,write_products",
			b:        "write_products,read_orders",
			expected: true,
		},
		{
			name:     "duplicates irrelevant",
			a:        "read_orders,read_orders",
			b:        "read_orders",
			expected: true,
		},
		{
			name:     "implied read collapses to same set",
			a:        "write_orders,read_orders",
			b:        "write_orders",
			expected: true,
		},
		{
			name:     "different members",
			a:        "read_orders",
			b:        "read_products",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a, err := scopes.Parse(tt.a)
			require.NoError(t, err)
			b, err := scopes.Parse(tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, a.Equal(b))
			assert.Equal(t, tt.expected, b.Equal(a))
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	t.Parallel()
	set, err := scopes.Parse("read_orders,write_orders,write_products")
	require.NoError(t, err)

	reparsed, err := scopes.Parse(set.String())
	require.NoError(t, err)
	assert.True(t, set.Equal(reparsed))

	// String is deterministic across repeated calls on one instance.
	assert.Equal(t, set.String(), set.String())
}

func TestAll(t *testing.T) {
	t.Parallel()
	set, err := scopes.Parse("write_orders,read_products,read_orders")
	require.NoError(t, err)

	var seen []string
	for scope := range set.All() {
		seen = append(seen, scope)
	}
	assert.Equal(t, []string{"read_products", "write_orders"}, seen)
	assert.Equal(t, set.Len(), len(seen))
}

func TestAllEarlyBreak(t *testing.T) {
	t.Parallel()
	set, err := scopes.Parse("read_a,read_b,read_c")
	require.NoError(t, err)

	count := 0
	for range set.All() {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}
