package settlement

import (
	"encoding/json"
	"log/slog"

	"github.com/tourledger-dev/tourledger/internal/model"
)

// decodeReports tolerates a malformed document: a non-object root yields
// an empty map, and any value that does not coerce to a report is
// dropped rather than failing the load.
func decodeReports(body []byte) map[string]model.SettlementReport {
	reports := make(map[string]model.SettlementReport)
	if len(body) == 0 {
		return reports
	}

	var raws map[string]json.RawMessage
	if err := json.Unmarshal(body, &raws); err != nil {
		slog.Warn("settlements document is not an object, starting empty", "error", err)
		return reports
	}

	for k, raw := range raws {
		var r model.SettlementReport
		if err := json.Unmarshal(raw, &r); err != nil {
			slog.Warn("dropping malformed settlement report", "key", k, "error", err)
			continue
		}
		reports[k] = r
	}
	return reports
}

func encodeReports(reports map[string]model.SettlementReport) ([]byte, error) {
	return json.MarshalIndent(reports, "", "  ")
}
