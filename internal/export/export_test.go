package export_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ms-attendance/internal/export"
	"ms-attendance/internal/models"
)

func sampleSet() []models.AttendanceRecord {
	checkIn := time.Date(2026, 1, 17, 19, 30, 0, 0, time.UTC)
	return []models.AttendanceRecord{
		{
			ID: "REG-001", Name: "Priya Sharma", Phone: "9876543210",
			Email: "priya@example.com", TicketType: "Regular", Quantity: 1,
			AmountPaid: 255, Category: models.CategoryPreRegistered,
			CheckedIn: true, CheckInTime: &checkIn,
		},
		{
			ID: "REG-002", Name: "Smith, Jane", TicketType: "VIP", Quantity: 2,
			AmountPaid: 510, Category: models.CategoryPreRegistered,
		},
		{
			ID: "WALKIN-1", Name: "Door Sale", TicketType: "Walk-In", Quantity: 3,
			AmountPaid: 765, Category: models.CategoryWalkIn,
			CheckedIn: true, CheckInTime: &checkIn, TransactionID: "txn-9",
		},
	}
}

func TestBuildCheckInsCSV(t *testing.T) {
	payload := export.BuildCheckInsCSV(sampleSet())
	lines := strings.Split(strings.TrimRight(string(payload), "\n"), "\n")

	require.Len(t, lines, 3, "header plus the two pre-registered rows only")
	assert.Equal(t, "Ticket ID,Name,Phone,Email,Ticket Type,Quantity,Amount Paid,Checked In,Check-In Time", lines[0])
	assert.Contains(t, lines[1], "REG-001")
	assert.Contains(t, lines[1], "Yes")
	assert.Contains(t, lines[2], `"Smith, Jane"`, "comma-bearing fields are quoted")
	assert.Contains(t, lines[2], "No")
	assert.NotContains(t, string(payload), "WALKIN-1")
}

func TestBuildWalkInsCSV(t *testing.T) {
	payload := export.BuildWalkInsCSV(sampleSet())
	lines := strings.Split(strings.TrimRight(string(payload), "\n"), "\n")

	require.Len(t, lines, 2)
	assert.Equal(t, "ID,Name,Tickets,Amount,Transaction ID,Time", lines[0])
	assert.Contains(t, lines[1], "WALKIN-1")
	assert.Contains(t, lines[1], "txn-9")
	assert.Contains(t, lines[1], "765")
}

func TestCSVEscaping(t *testing.T) {
	set := []models.AttendanceRecord{
		{
			ID: "R1", Name: `Say "hi", please`, Quantity: 1, AmountPaid: 255,
			Category: models.CategoryPreRegistered,
		},
	}
	payload := string(export.BuildCheckInsCSV(set))
	assert.Contains(t, payload, `"Say ""hi"", please"`)
}

func TestBuildBackupRoundTrips(t *testing.T) {
	snapshot := models.Snapshot{
		Config:    models.EventConfig{EventName: "The Sound Nexus", TicketPrice: 255},
		Attendees: sampleSet(),
	}

	payload, err := export.BuildBackup(snapshot)
	require.NoError(t, err)

	var decoded models.Snapshot
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, snapshot.Config.EventName, decoded.Config.EventName)
	require.Len(t, decoded.Attendees, 3)
	assert.Equal(t, models.CategoryWalkIn, decoded.Attendees[2].Category)
}

func TestBuildSummary(t *testing.T) {
	cfg := models.EventConfig{EventName: "The Sound Nexus", EventDate: "2026-01-17", TicketPrice: 255}
	stats := models.Stats{
		PreRegistered:     10,
		PreRegCheckedIn:   7,
		WalkIns:           3,
		TotalRevenue:      4000,
		WalkInRevenue:     900,
		CheckInPercentage: 70,
	}
	exportedAt := time.Date(2026, 1, 17, 23, 0, 0, 0, time.UTC)

	payload, err := export.BuildSummary(cfg, stats, exportedAt)
	require.NoError(t, err)

	var summary export.Summary
	require.NoError(t, json.Unmarshal(payload, &summary))

	assert.Equal(t, "The Sound Nexus", summary.Event.Name)
	assert.Equal(t, "70%", summary.Statistics.CheckInPercentage)
	assert.Equal(t, 10, summary.Statistics.TotalAttendees, "checked-in pre-reg plus walk-ins")
	assert.Equal(t, 3100, summary.Statistics.PreRegRevenue, "total minus walk-in revenue")
	assert.Equal(t, 900, summary.Statistics.WalkInRevenue)
	assert.Equal(t, exportedAt, summary.ExportedAt)
}

func TestFileName(t *testing.T) {
	at := time.Date(2026, 1, 17, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "The_Sound_Nexus_backup_2026-01-17.json",
		export.FileName("The Sound Nexus", "backup", "json", at))
	assert.Equal(t, "X_checkins_2026-01-17.csv",
		export.FileName("  X ", "checkins", "csv", at))
}
