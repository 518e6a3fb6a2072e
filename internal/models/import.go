package models

// ImportCandidate is the loosely-typed intermediate shape produced by the
// import parsers. Optional fields stay pointers until the reconciler defaults
// and validates them into a strict AttendanceRecord.
type ImportCandidate struct {
	ID         string
	Name       string
	Phone      string
	Email      string
	TicketType string
	Quantity   *int
	AmountPaid *int
	Category   Category
}

// ImportResult reports a reconciliation run: how many rows parsed into
// candidates and how many were actually added (duplicates are skipped).
type ImportResult struct {
	TotalParsed int `json:"totalParsed"`
	Added       int `json:"added"`
}
