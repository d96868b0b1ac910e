package models

import "time"

// DayDateFormat is the wire format for local calendar dates in availability
// responses.
const DayDateFormat = "2006-01-02"

// AvailabilityQuery is the logical availability search request.
type AvailabilityQuery struct {
	PractitionerIDs []string   `json:"practitionerIds" binding:"required"`
	MemberTimezone  string     `json:"memberTimezone" binding:"required"`
	StartTime       *time.Time `json:"startTime,omitempty"`
	EndTime         *time.Time `json:"endTime,omitempty"`
	ProviderType    string     `json:"providerType,omitempty"` // optional vertical filter
	CanPrescribe    *bool      `json:"canPrescribe,omitempty"` // optional prescribing filter
}

// DayAvailability is one entry of the availability response: a local calendar
// day and whether any candidate practitioner has a bookable opening on it.
type DayAvailability struct {
	Date            string `json:"date"` // formatted with DayDateFormat
	HasAvailability bool   `json:"hasAvailability"`
}

// SearchWindow is the resolved, validated request window: UTC search bounds plus
// the member's location for local-day arithmetic.
type SearchWindow struct {
	SearchStart time.Time // UTC, inclusive
	SearchEnd   time.Time // UTC, exclusive
	Location    *time.Location
	Days        int // number of local calendar days covered
}

// FetchWindow is the UTC window handed to schedule storage. It is the search
// window expanded by the timezone buffer so blocks that land inside a local day
// only after conversion are still fetched.
type FetchWindow struct {
	Start time.Time
	End   time.Time
}

// PractitionerSchedule is the per-practitioner snapshot the reducer consumes:
// everything fetched once, then evaluated purely in memory.
type PractitionerSchedule struct {
	PractitionerID  string
	Blocks          []ScheduleBlock
	Bookings        []BookedInterval
	Capacity        int
	MinimumDuration time.Duration // zero when the practitioner has no active product
}

// Eligible reports whether the practitioner has an active bookable product.
// Ineligible practitioners contribute "unavailable" for every day.
func (s PractitionerSchedule) Eligible() bool {
	return s.MinimumDuration > 0
}
