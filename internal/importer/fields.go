package importer

import (
	"strconv"
	"strings"

	"ms-attendance/internal/models"
)

// Alias lists per target field, first match wins.
var (
	idAliases     = []string{"id", "ticket_id", "booking_id"}
	nameAliases   = []string{"name", "full_name", "customer_name"}
	phoneAliases  = []string{"phone", "mobile", "contact"}
	emailAliases  = []string{"email"}
	typeAliases   = []string{"ticket_type", "type"}
	qtyAliases    = []string{"quantity", "tickets"}
	amountAliases = []string{"amount", "amount_paid", "total"}
)

// candidateFromFields maps one normalized key/value row into a candidate.
// Defaults for absent or unparsable quantity/amount are left nil; the
// reconciler fills them in (amount needs the configured unit price).
func candidateFromFields(fields map[string]string) models.ImportCandidate {
	candidate := models.ImportCandidate{
		ID:         firstField(fields, idAliases),
		Name:       firstField(fields, nameAliases),
		Phone:      firstField(fields, phoneAliases),
		Email:      firstField(fields, emailAliases),
		TicketType: firstField(fields, typeAliases),
	}

	if qty, ok := parseIntField(firstField(fields, qtyAliases)); ok {
		candidate.Quantity = &qty
	}
	if amount, ok := parseIntField(firstField(fields, amountAliases)); ok {
		candidate.AmountPaid = &amount
	}
	return candidate
}

func firstField(fields map[string]string, aliases []string) string {
	for _, alias := range aliases {
		if value := strings.TrimSpace(fields[alias]); value != "" {
			return value
		}
	}
	return ""
}

// normalizeKey folds a header cell or JSON key into the canonical snake_case
// field key: trimmed, spaces to underscores, camelCase split ("Ticket Type",
// "ticketType" and "ticket_type" all land on "ticket_type").
func normalizeKey(key string) string {
	key = strings.ReplaceAll(strings.TrimSpace(key), " ", "_")
	var b strings.Builder
	for i, r := range key {
		if r >= 'A' && r <= 'Z' {
			// Split camelCase, but leave all-caps headers like "ID" alone.
			if i > 0 && (key[i-1] >= 'a' && key[i-1] <= 'z' || key[i-1] >= '0' && key[i-1] <= '9') {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

func parseIntField(value string) (int, bool) {
	if value == "" {
		return 0, false
	}
	// Tolerate "2.0" style exports.
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return int(f), true
	}
	return 0, false
}
