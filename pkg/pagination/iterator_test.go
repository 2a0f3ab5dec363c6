package pagination_test

import (
	"context"
	"testing"

	"github.com/storekit-go/storekit/pkg/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIteratorNilPage(t *testing.T) {
	t.Parallel()
	_, err := pagination.NewIterator[string](nil)
	assert.ErrorIs(t, err, pagination.ErrNilPage)
}

func TestIteratorYieldsAllPages(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	backend, first := threePageChain(t)

	it, err := pagination.NewIterator(first)
	require.NoError(t, err)

	var pages [][]string
	for page, err := range it.Pages(ctx) {
		require.NoError(t, err)
		pages = append(pages, page.Items())
	}
	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}, {"e"}}, pages)
	assert.Equal(t, []string{"/pages/2", "/pages/3"}, backend.calls)
}

func TestIteratorDoesNotRetainPages(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	backend, first := threePageChain(t)

	it, err := pagination.NewIterator(first)
	require.NoError(t, err)

	for _, err := range it.Pages(ctx) {
		require.NoError(t, err)
	}

	// NoCache traversal must leave the starting page's adjacency cache
	// empty: a later Next goes back to the transport.
	require.Equal(t, 2, len(backend.calls))
	_, err = first.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, len(backend.calls))
}

func TestIteratorSuppressesAutoAdvance(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	backend, first := threePageChain(t)

	_, err := pagination.NewIterator(first)
	require.NoError(t, err)

	// Item iteration over the wrapped page no longer advances on its own,
	// and neither does iteration over pages the traversal produced.
	var items []string
	for item, err := range first.All(ctx) {
		require.NoError(t, err)
		items = append(items, item)
	}
	assert.Equal(t, []string{"a", "b"}, items)
	assert.Empty(t, backend.calls)
}

func TestIteratorEarlyBreak(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	backend, first := threePageChain(t)

	it, err := pagination.NewIterator(first)
	require.NoError(t, err)

	count := 0
	for _, err := range it.Pages(ctx) {
		require.NoError(t, err)
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
	assert.Equal(t, []string{"/pages/2"}, backend.calls)
}

func TestIteratorPropagatesTransportError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	backend := &fakeBackend{pages: map[string]fakePage{}}
	first, err := pagination.NewPage([]string{"a"}, linkHeader("/pages/missing", ""), backend.fetcher())
	require.NoError(t, err)

	it, err := pagination.NewIterator(first)
	require.NoError(t, err)

	var yielded int
	var fetchErr error
	for page, err := range it.Pages(ctx) {
		if err != nil {
			fetchErr = err
			continue
		}
		require.NotNil(t, page)
		yielded++
	}
	assert.Equal(t, 1, yielded)
	require.Error(t, fetchErr)
	assert.NotErrorIs(t, fetchErr, pagination.ErrNoPage)
}
