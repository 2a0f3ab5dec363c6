package client

import (
	"net/http"
	"strconv"
	"strings"
)

// callLimitHeader carries the leaky-bucket call budget in "used/max" form,
// e.g. "32/40".
const callLimitHeader = "X-API-Call-Limit"

// CallLimit is the API call budget as last reported by the server.
type CallLimit struct {
	Used int
	Max  int
}

// Remaining returns how many calls are left in the current bucket.
func (l CallLimit) Remaining() int {
	if l.Max <= 0 {
		return 0
	}
	return l.Max - l.Used
}

// Exhausted reports whether the bucket is full and the next call is likely
// to be throttled.
func (l CallLimit) Exhausted() bool {
	return l.Max > 0 && l.Used >= l.Max
}

// ParseCallLimit extracts the call budget from a response header. The second
// return value is false when the header is absent or malformed.
func ParseCallLimit(header http.Header) (CallLimit, bool) {
	raw := header.Get(callLimitHeader)
	if raw == "" {
		return CallLimit{}, false
	}

	usedStr, maxStr, ok := strings.Cut(raw, "/")
	if !ok {
		return CallLimit{}, false
	}
	used, err := strconv.Atoi(strings.TrimSpace(usedStr))
	if err != nil {
		return CallLimit{}, false
	}
	limit, err := strconv.Atoi(strings.TrimSpace(maxStr))
	if err != nil || limit <= 0 {
		return CallLimit{}, false
	}
	return CallLimit{Used: used, Max: limit}, true
}
