package pagination

import "errors"

var (
	// ErrNoPage is returned by Next/Previous when no link exists in that
	// direction. It signals end of data, not a transport failure.
	ErrNoPage = errors.New("pagination: no such page")

	// ErrNilFetcher is returned by NewPage when no fetcher is supplied;
	// navigation would be impossible without one.
	ErrNilFetcher = errors.New("pagination: nil page fetcher")

	// ErrNilPage is returned by NewIterator when the starting page is nil.
	ErrNilPage = errors.New("pagination: nil page")
)
