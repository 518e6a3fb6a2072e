package registry

import (
	"strings"

	"ms-attendance/internal/models"
)

// MatchTicket resolves a raw scanned or typed string against the record set.
// Records are scanned in insertion order and the first one matching any rule
// wins; per record the rules are tried in order:
//
//  1. exact case-insensitive equality,
//  2. record id is a suffix of the input,
//  3. input is a suffix of the record id.
//
// The suffix rules tolerate scanners that wrap the raw code in a fixed
// prefix (URL scheme and the like). They are intentionally loose: two ids
// sharing a numeric tail can shadow each other. That ambiguity is a known
// product decision, do not tighten it here.
func MatchTicket(records []models.AttendanceRecord, rawInput string) (*models.AttendanceRecord, error) {
	normalized := strings.ToLower(strings.TrimSpace(rawInput))
	if normalized == "" {
		return nil, ErrNotFound
	}

	for i := range records {
		id := strings.ToLower(records[i].ID)
		if id == normalized ||
			strings.HasSuffix(normalized, id) ||
			strings.HasSuffix(id, normalized) {
			return &records[i], nil
		}
	}
	return nil, ErrNotFound
}
