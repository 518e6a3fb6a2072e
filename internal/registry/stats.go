package registry

import (
	"math"

	"ms-attendance/internal/models"
)

// AggregateStats derives counts and revenue from the record set. It is a pure
// function of its input and is recomputed on every call; nothing is cached,
// so the numbers can never drift from the records.
func AggregateStats(records []models.AttendanceRecord) models.Stats {
	var stats models.Stats

	for i := range records {
		r := &records[i]
		stats.TotalRevenue += r.AmountPaid
		if r.CheckedIn {
			stats.TotalCheckedIn++
		}
		if r.Category == models.CategoryWalkIn {
			stats.WalkIns++
			stats.WalkInRevenue += r.AmountPaid
			continue
		}
		stats.PreRegistered++
		if r.CheckedIn {
			stats.PreRegCheckedIn++
		}
	}

	if stats.PreRegistered > 0 {
		pct := float64(stats.PreRegCheckedIn) / float64(stats.PreRegistered) * 100
		stats.CheckInPercentage = int(math.Round(pct))
	}
	return stats
}
