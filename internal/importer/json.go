package importer

import (
	"bytes"
	"encoding/json"

	"ms-attendance/internal/models"
)

// ParseJSON accepts the structured-record import forms: a bare list of
// records, or a full-backup object whose "attendees" field is a list. From a
// backup only PRE-REG (or untagged) entries are taken; walk-ins are never
// re-imported.
func ParseJSON(payload []byte) ([]models.ImportCandidate, error) {
	entries, err := decodeEntries(payload)
	if err != nil {
		return nil, ErrParseFailed
	}

	candidates := make([]models.ImportCandidate, 0, len(entries))
	for _, entry := range entries {
		fields := make(map[string]string, len(entry))
		category := models.CategoryPreRegistered
		for key, value := range entry {
			normalized := normalizeKey(key)
			if normalized == "type" {
				// In the backup format "type" is the category tag, not the
				// ticket tier.
				switch models.Category(stringifyValue(value)) {
				case models.CategoryWalkIn:
					category = models.CategoryWalkIn
				}
				continue
			}
			fields[normalized] = stringifyValue(value)
		}
		if category == models.CategoryWalkIn {
			continue
		}

		candidate := candidateFromFields(fields)
		candidate.Category = models.CategoryPreRegistered
		candidates = append(candidates, candidate)
	}

	if len(candidates) == 0 {
		return nil, ErrParseFailed
	}
	return candidates, nil
}

func decodeEntries(payload []byte) ([]map[string]any, error) {
	decoder := json.NewDecoder(bytes.NewReader(payload))
	decoder.UseNumber()

	var wrapper struct {
		Attendees []map[string]any `json:"attendees"`
	}
	if err := decoder.Decode(&wrapper); err == nil && wrapper.Attendees != nil {
		return wrapper.Attendees, nil
	}

	decoder = json.NewDecoder(bytes.NewReader(payload))
	decoder.UseNumber()
	var list []map[string]any
	if err := decoder.Decode(&list); err != nil {
		return nil, err
	}
	return list, nil
}

func stringifyValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		if v {
			return "true"
		}
		return "false"
	case nil:
		return ""
	default:
		raw, _ := json.Marshal(v)
		return string(raw)
	}
}
