package entry

import (
	"encoding/json"
	"log/slog"

	"github.com/tourledger-dev/tourledger/internal/model"
)

// decodeEntries is deliberately forgiving: a non-array root yields the
// empty list, and any element that does not coerce to an entry (or has
// lost its date) is dropped rather than failing the load.
func decodeEntries(body []byte) []model.Entry {
	if len(body) == 0 {
		return nil
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(body, &raws); err != nil {
		slog.Warn("entries document is not an array, starting empty", "error", err)
		return nil
	}

	entries := make([]model.Entry, 0, len(raws))
	for i, raw := range raws {
		var e model.Entry
		if err := json.Unmarshal(raw, &e); err != nil {
			slog.Warn("dropping malformed entry record", "index", i, "error", err)
			continue
		}
		if e.Date == "" {
			slog.Warn("dropping entry without a date", "index", i, "id", e.ID)
			continue
		}
		entries = append(entries, e)
	}
	return entries
}

func encodeEntries(entries []model.Entry) ([]byte, error) {
	if entries == nil {
		entries = []model.Entry{}
	}
	return json.MarshalIndent(entries, "", "  ")
}
