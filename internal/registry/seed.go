package registry

import (
	"ms-attendance/internal/config"
	"ms-attendance/internal/models"
)

// DefaultEventConfig builds the EventConfig used when the slot is empty or
// unreadable.
func DefaultEventConfig(defaults config.EventDefaults) models.EventConfig {
	return models.EventConfig{
		EventName:          defaults.EventName,
		EventDate:          defaults.EventDate,
		TicketPrice:        defaults.TicketPrice,
		GrowthXPrice:       defaults.GrowthXPrice,
		PaymentLink:        defaults.PaymentLink,
		GrowthXPaymentLink: defaults.GrowthXPaymentLink,
	}
}

// SampleAttendees returns the seed records loaded on first run so the floor
// staff can exercise scanning before real data is imported.
func SampleAttendees() []models.AttendanceRecord {
	return []models.AttendanceRecord{
		{
			ID:         "REG-001",
			Name:       "Priya Sharma",
			Phone:      "9876543210",
			Email:      "priya@example.com",
			TicketType: "Regular",
			Quantity:   1,
			AmountPaid: 255,
			Category:   models.CategoryPreRegistered,
		},
		{
			ID:         "REG-002",
			Name:       "Rahul Kumar",
			Phone:      "9876543211",
			Email:      "rahul@example.com",
			TicketType: "Regular",
			Quantity:   2,
			AmountPaid: 510,
			Category:   models.CategoryPreRegistered,
		},
		{
			ID:         "REG-003",
			Name:       "Ananya Patel",
			Phone:      "9876543212",
			Email:      "ananya@example.com",
			TicketType: "VIP",
			Quantity:   1,
			AmountPaid: 255,
			Category:   models.CategoryPreRegistered,
		},
		{
			ID:         "REG-004",
			Name:       "Vikram Singh",
			Phone:      "9876543213",
			Email:      "vikram@example.com",
			TicketType: "Regular",
			Quantity:   3,
			AmountPaid: 765,
			Category:   models.CategoryPreRegistered,
		},
		{
			ID:         "REG-005",
			Name:       "Neha Gupta",
			Phone:      "9876543214",
			Email:      "neha@example.com",
			TicketType: "Regular",
			Quantity:   1,
			AmountPaid: 255,
			Category:   models.CategoryPreRegistered,
		},
	}
}
