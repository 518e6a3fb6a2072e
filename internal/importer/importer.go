package importer

import (
	"fmt"
	"strings"

	"ms-attendance/internal/models"
)

// Parse dispatches on the declared format. The format comes from the file
// extension or MIME type only; payload content is never sniffed.
func Parse(payload []byte, format string) ([]models.ImportCandidate, error) {
	switch strings.ToLower(format) {
	case "csv", "text/csv":
		return ParseCSV(payload)
	case "json", "application/json":
		return ParseJSON(payload)
	default:
		return nil, fmt.Errorf("unsupported import format %q: %w", format, ErrParseFailed)
	}
}
