package event

import "github.com/tourledger-dev/tourledger/internal/model"

// Info is one distinct settlement group found in the ledger.
type Info struct {
	Key         Key
	DisplayName string // first-seen event name text, original casing
	Month       string
}

// KeyStatus classifies a key against the current ledger contents.
type KeyStatus int

const (
	// StatusAbsent: no entry and no satellite record references the key.
	StatusAbsent KeyStatus = iota
	// StatusActive: at least one ledger entry carries the key.
	StatusActive
	// StatusOrphaned: a satellite record references the key but all of
	// its entries have been deleted.
	StatusOrphaned
)

// Groupable reports whether an entry participates in event grouping.
// Entries missing an event name or client stay in the raw ledger but
// never form a settlement group.
func Groupable(e model.Entry) bool {
	return e.EventName != "" && e.Client != ""
}

// GroupsByMonth partitions entries by their YYYY-MM prefix. Entries whose
// date is too short to carry a month are dropped from the grouping only;
// they remain visible in the raw ledger.
func GroupsByMonth(entries []model.Entry) map[string][]model.Entry {
	groups := make(map[string][]model.Entry)
	for _, e := range entries {
		m := e.Month()
		if m == "" {
			continue
		}
		groups[m] = append(groups[m], e)
	}
	return groups
}

// DistinctEvents returns one Info per unique key among entries that have
// both an event name and a client, in first-seen order. The first entry
// seen for a key wins the display name, even if a later entry spells the
// same key with different casing or whitespace.
func DistinctEvents(entries []model.Entry) []Info {
	seen := make(map[Key]bool)
	var infos []Info
	for _, e := range entries {
		if !Groupable(e) {
			continue
		}
		k := KeyOf(e)
		if seen[k] {
			continue
		}
		seen[k] = true
		infos = append(infos, Info{Key: k, DisplayName: e.EventName, Month: k.Month})
	}
	return infos
}

// EntriesForKey filters entries whose own derived key equals k.
func EntriesForKey(entries []model.Entry, k Key) []model.Entry {
	var out []model.Entry
	for _, e := range entries {
		if !Groupable(e) {
			continue
		}
		if KeyOf(e) == k {
			out = append(out, e)
		}
	}
	return out
}

// Status classifies k against the ledger: active while entries carry it,
// orphaned while only a satellite record (settlement report or profit
// income record) still references it, absent otherwise.
func Status(k Key, entries []model.Entry, referenced bool) KeyStatus {
	if len(EntriesForKey(entries, k)) > 0 {
		return StatusActive
	}
	if referenced {
		return StatusOrphaned
	}
	return StatusAbsent
}
