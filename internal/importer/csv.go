package importer

import (
	"strings"

	"ms-attendance/internal/models"
)

// ParseCSV turns a raw CSV payload into import candidates. The first
// non-empty line is the header; header cells are normalized (trim,
// lower-case, spaces to underscores) into field keys, then each data line is
// alias-mapped into a candidate. Returns ErrParseFailed when no data rows
// survive.
//
// The splitter is quote-aware by hand rather than encoding/csv: registration
// exports in the wild have unescaped quotes mid-field and ragged rows, and
// those must degrade to best-effort fields instead of failing the file.
func ParseCSV(payload []byte) ([]models.ImportCandidate, error) {
	var lines []string
	for _, line := range strings.Split(string(payload), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 2 {
		return nil, ErrParseFailed
	}

	headers := make([]string, 0)
	for _, cell := range splitCSVLine(lines[0]) {
		headers = append(headers, normalizeKey(cell))
	}

	candidates := make([]models.ImportCandidate, 0, len(lines)-1)
	for _, line := range lines[1:] {
		values := splitCSVLine(line)
		fields := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(values) {
				fields[header] = values[i]
			} else {
				// Missing trailing fields map to empty string.
				fields[header] = ""
			}
		}
		candidates = append(candidates, candidateFromFields(fields))
	}

	if len(candidates) == 0 {
		return nil, ErrParseFailed
	}
	return candidates, nil
}

// splitCSVLine splits one line on commas with quote awareness: a quote
// toggles the in-quotes state, a doubled quote inside quotes is a literal
// quote, and commas inside quotes do not separate fields.
func splitCSVLine(line string) []string {
	var values []string
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				current.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == ',' && !inQuotes:
			values = append(values, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteByte(ch)
		}
	}

	values = append(values, strings.TrimSpace(current.String()))
	return values
}
