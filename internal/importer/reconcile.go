package importer

import (
	"fmt"
	"time"

	"ms-attendance/internal/models"
)

// Reconcile defaults and validates candidates into strict pre-registered
// records, skipping every candidate whose id already exists (byte-for-byte
// compare - re-imports never overwrite). Candidates without an id get a
// generated IMP-<timestamp>-<rowIndex> one. The returned records are the
// additions, in candidate order.
func Reconcile(candidates []models.ImportCandidate, existingIDs map[string]struct{}, unitPrice int, now time.Time) []models.AttendanceRecord {
	taken := make(map[string]struct{}, len(existingIDs))
	for id := range existingIDs {
		taken[id] = struct{}{}
	}

	additions := make([]models.AttendanceRecord, 0, len(candidates))
	for i, candidate := range candidates {
		id := candidate.ID
		if id == "" {
			id = fmt.Sprintf("IMP-%d-%d", now.UnixMilli(), i)
		}
		if _, exists := taken[id]; exists {
			continue
		}
		taken[id] = struct{}{}

		record := models.AttendanceRecord{
			ID:         id,
			Name:       candidate.Name,
			Phone:      candidate.Phone,
			Email:      candidate.Email,
			TicketType: candidate.TicketType,
			Quantity:   1,
			AmountPaid: unitPrice,
			Category:   models.CategoryPreRegistered,
		}
		if record.Name == "" {
			record.Name = "Unknown"
		}
		if record.TicketType == "" {
			record.TicketType = "Regular"
		}
		if candidate.Quantity != nil && *candidate.Quantity > 1 {
			record.Quantity = *candidate.Quantity
		}
		if candidate.AmountPaid != nil && *candidate.AmountPaid >= 0 {
			record.AmountPaid = *candidate.AmountPaid
		}

		additions = append(additions, record)
	}
	return additions
}
