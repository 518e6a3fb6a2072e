package models

// Stats is the StatsAggregator output: counts and revenue derived from the
// live record set, recomputed on demand.
type Stats struct {
	PreRegistered     int `json:"preRegistered"`
	PreRegCheckedIn   int `json:"preRegCheckedIn"`
	TotalCheckedIn    int `json:"totalCheckedIn"`
	WalkIns           int `json:"walkIns"`
	TotalRevenue      int `json:"totalRevenue"`
	WalkInRevenue     int `json:"walkInRevenue"`
	CheckInPercentage int `json:"checkInPercentage"`
}
