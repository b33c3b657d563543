package event

import (
	"strings"

	"github.com/tourledger-dev/tourledger/internal/model"
)

// Key is the derived identity of one settlement group: a normalized event
// name plus the calendar month it took place in. Two events with the same
// name in different months are distinct groups on purpose.
//
// Keys are value objects; construct them with NewKey (or ParseKey for the
// persisted string form) so every call site normalizes the same way.
type Key struct {
	Month string // "YYYY-MM"
	Name  string // trimmed, lowercased event name
}

const keySep = "::"

// NewKey derives the key for an event name and a Y-M-D date text.
func NewKey(eventName, date string) Key {
	return Key{
		Month: monthOf(date),
		Name:  normalizeName(eventName),
	}
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// KeyOf derives the key for an entry.
func KeyOf(e model.Entry) Key {
	return NewKey(e.EventName, e.Date)
}

// ParseKey parses the persisted "YYYY-MM::name" form. The name part is
// normalized the same way NewKey normalizes it, so hand-typed keys match
// derived ones regardless of casing.
func ParseKey(s string) Key {
	month, name, ok := strings.Cut(s, keySep)
	if !ok {
		return Key{Name: normalizeName(s)}
	}
	return Key{Month: month, Name: normalizeName(name)}
}

// String returns the persisted form, "YYYY-MM::name".
func (k Key) String() string {
	return k.Month + keySep + k.Name
}

// IsZero reports whether the key carries no identity at all.
func (k Key) IsZero() bool {
	return k.Month == "" && k.Name == ""
}

func monthOf(date string) string {
	if len(date) < 7 {
		return ""
	}
	return date[:7]
}
