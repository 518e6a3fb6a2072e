// Package export builds the byte payloads served by the export endpoints:
// full backup, check-in and walk-in CSVs, and the summary report. File
// download mechanics are the caller's concern; only content is produced here.
package export

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"ms-attendance/internal/models"
)

const timeLayout = "2006-01-02 15:04:05"

// BuildBackup renders the entire persisted structure as indented JSON.
func BuildBackup(snapshot models.Snapshot) ([]byte, error) {
	return json.MarshalIndent(snapshot, "", "  ")
}

// BuildCheckInsCSV renders the pre-registered records.
func BuildCheckInsCSV(records []models.AttendanceRecord) []byte {
	var b strings.Builder
	writeCSVRow(&b, []string{"Ticket ID", "Name", "Phone", "Email", "Ticket Type", "Quantity", "Amount Paid", "Checked In", "Check-In Time"})

	for i := range records {
		r := &records[i]
		if r.Category != models.CategoryPreRegistered {
			continue
		}
		writeCSVRow(&b, []string{
			r.ID,
			r.Name,
			r.Phone,
			r.Email,
			r.TicketType,
			fmt.Sprintf("%d", r.Quantity),
			fmt.Sprintf("%d", r.AmountPaid),
			yesNo(r.CheckedIn),
			formatTime(r.CheckInTime),
		})
	}
	return []byte(b.String())
}

// BuildWalkInsCSV renders the walk-in records.
func BuildWalkInsCSV(records []models.AttendanceRecord) []byte {
	var b strings.Builder
	writeCSVRow(&b, []string{"ID", "Name", "Tickets", "Amount", "Transaction ID", "Time"})

	for i := range records {
		r := &records[i]
		if r.Category != models.CategoryWalkIn {
			continue
		}
		writeCSVRow(&b, []string{
			r.ID,
			r.Name,
			fmt.Sprintf("%d", r.Quantity),
			fmt.Sprintf("%d", r.AmountPaid),
			r.TransactionID,
			formatTime(r.CheckInTime),
		})
	}
	return []byte(b.String())
}

// Summary is the exported event report: configuration highlights plus the
// aggregated statistics with the revenue split.
type Summary struct {
	Event      SummaryEvent `json:"event"`
	Statistics SummaryStats `json:"statistics"`
	ExportedAt time.Time    `json:"exportedAt"`
}

type SummaryEvent struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	TicketPrice int    `json:"ticketPrice"`
}

type SummaryStats struct {
	PreRegistered     int    `json:"preRegistered"`
	CheckedIn         int    `json:"checkedIn"`
	CheckInPercentage string `json:"checkInPercentage"`
	WalkIns           int    `json:"walkIns"`
	TotalAttendees    int    `json:"totalAttendees"`
	PreRegRevenue     int    `json:"preRegRevenue"`
	WalkInRevenue     int    `json:"walkInRevenue"`
	TotalRevenue      int    `json:"totalRevenue"`
}

// BuildSummary renders the summary report.
func BuildSummary(cfg models.EventConfig, stats models.Stats, exportedAt time.Time) ([]byte, error) {
	summary := Summary{
		Event: SummaryEvent{
			Name:        cfg.EventName,
			Date:        cfg.EventDate,
			TicketPrice: cfg.TicketPrice,
		},
		Statistics: SummaryStats{
			PreRegistered:     stats.PreRegistered,
			CheckedIn:         stats.PreRegCheckedIn,
			CheckInPercentage: fmt.Sprintf("%d%%", stats.CheckInPercentage),
			WalkIns:           stats.WalkIns,
			TotalAttendees:    stats.PreRegCheckedIn + stats.WalkIns,
			PreRegRevenue:     stats.TotalRevenue - stats.WalkInRevenue,
			WalkInRevenue:     stats.WalkInRevenue,
			TotalRevenue:      stats.TotalRevenue,
		},
		ExportedAt: exportedAt,
	}
	return json.MarshalIndent(summary, "", "  ")
}

// FileName builds the conventional export file name: event name with spaces
// collapsed to underscores, a kind tag and the date.
func FileName(eventName, kind, extension string, at time.Time) string {
	base := strings.Join(strings.Fields(eventName), "_")
	return fmt.Sprintf("%s_%s_%s.%s", base, kind, at.Format("2006-01-02"), extension)
}

func writeCSVRow(b *strings.Builder, values []string) {
	for i, value := range values {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(escapeCSV(value))
	}
	b.WriteByte('\n')
}

// escapeCSV doubles embedded quotes and wraps the field when it carries a
// comma, quote or newline.
func escapeCSV(value string) string {
	if !strings.ContainsAny(value, ",\"\n") {
		return value
	}
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Local().Format(timeLayout)
}
