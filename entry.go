package pocket

import (
	"fmt"
	"strings"
)

// Entry is one expense or income record.
type Entry struct {
	Category string
	Item     string
	Amount   Amount
}

// String returns the record in its persisted form: "category item amount".
func (e Entry) String() string {
	return e.Category + " " + e.Item + " " + e.Amount.String()
}

// Line is an entry with its 1-based position in a listing.
type Line struct {
	Number int
	Entry
}

// ParseEntry decodes a stored "category item amount" record.
//
// The category is not checked against a category tree: stored records are trusted.
func ParseEntry(raw string) (Entry, error) {
	fields := strings.Fields(raw)
	if len(fields) != 3 {
		return Entry{}, fmt.Errorf("%w: %q", ErrMalformedInput, raw)
	}
	amount, err := ParseAmount(fields[2])
	if err != nil {
		return Entry{}, err
	}
	return Entry{Category: fields[0], Item: fields[1], Amount: amount}, nil
}
