package registry_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ms-attendance/internal/models"
	"ms-attendance/internal/registry"
)

func checkedIn(r models.AttendanceRecord) models.AttendanceRecord {
	now := time.Now().UTC()
	r.CheckedIn = true
	r.CheckInTime = &now
	return r
}

func TestAggregateStatsEmptySet(t *testing.T) {
	stats := registry.AggregateStats(nil)
	assert.Zero(t, stats.PreRegistered)
	assert.Zero(t, stats.CheckInPercentage)
	assert.Zero(t, stats.TotalRevenue)
}

func TestAggregateStatsPercentageZeroWithoutPreRegistered(t *testing.T) {
	set := []models.AttendanceRecord{
		checkedIn(models.AttendanceRecord{ID: "W1", Category: models.CategoryWalkIn, AmountPaid: 255, Quantity: 1}),
		checkedIn(models.AttendanceRecord{ID: "W2", Category: models.CategoryWalkIn, AmountPaid: 510, Quantity: 2}),
	}

	stats := registry.AggregateStats(set)
	assert.Equal(t, 0, stats.CheckInPercentage, "no division by zero regardless of walk-in count")
	assert.Equal(t, 2, stats.WalkIns)
	assert.Equal(t, 765, stats.WalkInRevenue)
	assert.Equal(t, 765, stats.TotalRevenue)
}

func TestAggregateStatsMixedSet(t *testing.T) {
	set := []models.AttendanceRecord{
		checkedIn(models.AttendanceRecord{ID: "R1", Category: models.CategoryPreRegistered, AmountPaid: 255}),
		{ID: "R2", Category: models.CategoryPreRegistered, AmountPaid: 510},
		{ID: "R3", Category: models.CategoryPreRegistered, AmountPaid: 255},
		checkedIn(models.AttendanceRecord{ID: "W1", Category: models.CategoryWalkIn, AmountPaid: 765}),
	}

	stats := registry.AggregateStats(set)
	assert.Equal(t, 3, stats.PreRegistered)
	assert.Equal(t, 1, stats.PreRegCheckedIn)
	assert.Equal(t, 2, stats.TotalCheckedIn)
	assert.Equal(t, 1, stats.WalkIns)
	assert.Equal(t, 1785, stats.TotalRevenue)
	assert.Equal(t, 765, stats.WalkInRevenue)
	assert.Equal(t, 33, stats.CheckInPercentage, "1 of 3 rounds to 33")
}

func TestAggregateStatsPercentageRoundsHalfUp(t *testing.T) {
	set := []models.AttendanceRecord{
		checkedIn(models.AttendanceRecord{ID: "R1", Category: models.CategoryPreRegistered}),
		{ID: "R2", Category: models.CategoryPreRegistered},
	}
	assert.Equal(t, 50, registry.AggregateStats(set).CheckInPercentage)

	set = append(set, checkedIn(models.AttendanceRecord{ID: "R3", Category: models.CategoryPreRegistered}))
	assert.Equal(t, 67, registry.AggregateStats(set).CheckInPercentage, "2 of 3 rounds to 67")
}
