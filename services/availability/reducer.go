package availability

import (
	"sort"
	"time"

	"medibook/models"
)

// dayWindow returns the UTC bounds of the i-th local calendar day after the
// anchor (a local midnight). Constructing the boundaries in the member's zone
// keeps DST transitions correct: a 23- or 25-hour local day maps to exactly
// that UTC interval.
func dayWindow(anchor time.Time, i int, loc *time.Location) (time.Time, time.Time) {
	dayStart := time.Date(anchor.Year(), anchor.Month(), anchor.Day()+i, 0, 0, 0, 0, loc)
	dayEnd := time.Date(anchor.Year(), anchor.Month(), anchor.Day()+i+1, 0, 0, 0, 0, loc)
	return dayStart.UTC(), dayEnd.UTC()
}

// practitionerDayAvailable reports whether the practitioner has a free
// contiguous sub-interval of at least their minimum bookable duration within
// the UTC interval [dayStart, dayEnd). Pure function of the fetched snapshot.
func practitionerDayAvailable(sched models.PractitionerSchedule, dayStart, dayEnd time.Time) bool {
	if !sched.Eligible() {
		return false
	}

	for _, block := range sched.Blocks {
		if !block.Overlaps(dayStart, dayEnd) {
			continue
		}

		// Clip the block to the day interval.
		clipStart := maxTime(block.StartsAt, dayStart)
		clipEnd := minTime(block.EndsAt, dayEnd)
		if clipEnd.Sub(clipStart) < sched.MinimumDuration {
			continue
		}

		capacity := block.Capacity
		if capacity <= 0 {
			capacity = sched.Capacity
		}
		if capacity <= 0 {
			capacity = 1
		}

		if blockHasOpening(clipStart, clipEnd, capacity, sched.MinimumDuration, sched.Bookings) {
			return true
		}
	}
	return false
}

// blockHasOpening subtracts bookings from the clipped block under the capacity
// model: a sub-interval is free while strictly fewer than capacity bookings
// overlap it. It then checks for a contiguous free run of at least minDuration.
func blockHasOpening(clipStart, clipEnd time.Time, capacity int, minDuration time.Duration, bookings []models.BookedInterval) bool {
	// Boundary sweep: between consecutive booking boundaries the overlap count
	// is constant, so only those segments need to be examined.
	points := []time.Time{clipStart, clipEnd}
	for _, booking := range bookings {
		if !booking.Overlaps(clipStart, clipEnd) {
			continue
		}
		if booking.StartsAt.After(clipStart) {
			points = append(points, booking.StartsAt)
		}
		if booking.EndsAt.Before(clipEnd) {
			points = append(points, booking.EndsAt)
		}
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Before(points[j]) })

	var freeRun time.Duration
	for i := 0; i < len(points)-1; i++ {
		segStart, segEnd := points[i], points[i+1]
		if !segEnd.After(segStart) {
			continue
		}

		booked := 0
		for _, booking := range bookings {
			if booking.Overlaps(segStart, segEnd) {
				booked++
			}
		}

		if booked < capacity {
			freeRun += segEnd.Sub(segStart)
			if freeRun >= minDuration {
				return true
			}
		} else {
			freeRun = 0
		}
	}
	return false
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
