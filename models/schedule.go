package models

import "time"

// Booking statuses stored on appointment documents. Only active bookings consume
// capacity during availability computation; cancelled ones are kept for history.
const (
	BookingStatusActive    = "active"
	BookingStatusCancelled = "cancelled"
)

// ScheduleBlock is a contiguous interval during which a practitioner is
// nominally bookable. Instants are stored in UTC.
type ScheduleBlock struct {
	ID             string    `bson:"id" json:"id"`
	PractitionerID string    `bson:"practitionerId" json:"practitionerId"`
	StartsAt       time.Time `bson:"startsAt" json:"startsAt"`
	EndsAt         time.Time `bson:"endsAt" json:"endsAt"`
	Capacity       int       `bson:"capacity,omitempty" json:"capacity,omitempty"` // 0 means "use the practitioner default"
	Recurring      bool      `bson:"recurring,omitempty" json:"recurring,omitempty"`
	SeriesID       string    `bson:"seriesId,omitempty" json:"seriesId,omitempty"` // set on instances expanded from a recurring series
}

// BookedInterval is an existing appointment or hold that consumes one unit of
// capacity inside a schedule block. Instants are stored in UTC.
type BookedInterval struct {
	ID             string    `bson:"id" json:"id"`
	PractitionerID string    `bson:"practitionerId" json:"practitionerId"`
	MemberID       string    `bson:"memberId,omitempty" json:"memberId,omitempty"`
	StartsAt       time.Time `bson:"startsAt" json:"startsAt"`
	EndsAt         time.Time `bson:"endsAt" json:"endsAt"`
	Status         string    `bson:"status" json:"status"`
}

// Overlaps reports whether the block intersects [start, end).
func (b ScheduleBlock) Overlaps(start, end time.Time) bool {
	return b.StartsAt.Before(end) && b.EndsAt.After(start)
}

// Overlaps reports whether the booking intersects [start, end).
func (b BookedInterval) Overlaps(start, end time.Time) bool {
	return b.StartsAt.Before(end) && b.EndsAt.After(start)
}
