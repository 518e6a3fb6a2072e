package models

// EventConfig is the singleton event setup persisted alongside the attendee
// set. TicketPrice is the PreRegistered unit price; GrowthXPrice is an
// alternate, informational tier.
type EventConfig struct {
	EventName          string `json:"eventName"`
	EventDate          string `json:"eventDate"`
	TicketPrice        int    `json:"ticketPrice"`
	GrowthXPrice       int    `json:"growthxPrice"`
	PaymentLink        string `json:"paymentLink"`
	GrowthXPaymentLink string `json:"growthxPaymentLink"`
}

// EventConfigUpdate is a partial update: nil fields keep the current value.
type EventConfigUpdate struct {
	EventName          *string `json:"eventName,omitempty"`
	EventDate          *string `json:"eventDate,omitempty"`
	TicketPrice        *int    `json:"ticketPrice,omitempty"`
	GrowthXPrice       *int    `json:"growthxPrice,omitempty"`
	PaymentLink        *string `json:"paymentLink,omitempty"`
	GrowthXPaymentLink *string `json:"growthxPaymentLink,omitempty"`
}
