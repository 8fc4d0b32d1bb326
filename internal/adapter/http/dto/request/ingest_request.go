package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"cobranca_service/internal/usecase"
)

var (
	ErrInvalidIngestBody = errors.New("invalid ingest body")
	ErrEmptyIngestBody   = errors.New("empty ingest body")
)

// dueDateKeys are the accepted spellings of the due-date attribute. External
// systems integrate in whichever casing their stack emits.
var dueDateKeys = map[string]struct{}{
	"duedate":         {},
	"due_date":        {},
	"datavencimento":  {},
	"data_vencimento": {},
}

var payloadKeys = map[string]struct{}{
	"payload":   {},
	"variaveis": {},
}

// IngestRow is one inbound webhook row. The wire shape is open: dueDate and
// payload are reserved attributes, every other top-level scalar is treated
// as a destination/system field.
type IngestRow struct {
	DueDate string
	Fields  map[string]string
	Payload map[string]string
}

func (r *IngestRow) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Fields = make(map[string]string)
	r.Payload = make(map[string]string)

	for key, value := range raw {
		normalized := strings.ToLower(strings.TrimSpace(key))
		if _, ok := dueDateKeys[normalized]; ok {
			r.DueDate = scalarToString(value)
			continue
		}
		if _, ok := payloadKeys[normalized]; ok {
			var vars map[string]json.RawMessage
			if err := json.Unmarshal(value, &vars); err != nil {
				return fmt.Errorf("payload must be an object: %w", err)
			}
			for k, v := range vars {
				r.Payload[k] = scalarToString(v)
			}
			continue
		}
		r.Fields[key] = scalarToString(value)
	}
	return nil
}

// scalarToString renders a JSON scalar the way the caller wrote it; numbers
// keep their literal form so "valor": 10.50 survives as "10.50".
func scalarToString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.Trim(string(raw), `"`)
}

// ParseIngestRows decodes the webhook body, normalizing a single object into
// a one-element array.
func ParseIngestRows(body []byte) ([]usecase.RawRow, error) {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return nil, ErrEmptyIngestBody
	}

	var rows []IngestRow
	if strings.HasPrefix(trimmed, "[") {
		if err := json.Unmarshal(body, &rows); err != nil {
			return nil, ErrInvalidIngestBody
		}
	} else {
		var single IngestRow
		if err := json.Unmarshal(body, &single); err != nil {
			return nil, ErrInvalidIngestBody
		}
		rows = []IngestRow{single}
	}
	if len(rows) == 0 {
		return nil, ErrEmptyIngestBody
	}

	out := make([]usecase.RawRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, usecase.RawRow{
			Fields:  row.Fields,
			DueDate: row.DueDate,
			Payload: row.Payload,
		})
	}
	return out, nil
}
