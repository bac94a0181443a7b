package classify

import (
	"fmt"
	"strings"
)

// Query is an immutable classification request. Hints are optional
// structured fields the caller already knows.
type Query struct {
	Description string
	HSPrefix    string // declared HS prefix, if any
	Origin      string // ISO country code
	Destination string // ISO country code
}

// Normalize canonicalizes a query into the exact string handed to the
// encoder. Identical logical queries must always encode identically, so
// the text is lower-cased and whitespace-collapsed and hint fields are
// appended in a fixed order.
func Normalize(q Query) (string, error) {
	text := strings.ToLower(strings.Join(strings.Fields(q.Description), " "))
	if text == "" {
		return "", ErrInvalidQuery
	}

	var b strings.Builder
	b.WriteString(text)
	if p := strings.TrimSpace(q.HSPrefix); p != "" {
		fmt.Fprintf(&b, " | hs prefix: %s", strings.ToLower(p))
	}
	if o := strings.TrimSpace(q.Origin); o != "" {
		fmt.Fprintf(&b, " | origin: %s", strings.ToLower(o))
	}
	if d := strings.TrimSpace(q.Destination); d != "" {
		fmt.Fprintf(&b, " | destination: %s", strings.ToLower(d))
	}
	return b.String(), nil
}
