package availability

import (
	"time"

	"medibook/models"
)

// maxZoneOffset is the widest plausible UTC offset in the IANA database
// (UTC+14, Line Islands). The fetch window is padded by this amount on both
// ends so a block outside the UTC search range that lands inside a member-local
// day after conversion is still fetched.
const maxZoneOffset = 14 * time.Hour

// WindowLimits carries the configured span bounds for a search window.
type WindowLimits struct {
	DefaultSpanDays int
	MaxSpanDays     int
}

// resolveWindow validates the query's timezone and time range and produces the
// canonical UTC search window. Validation is fail-fast: the first rule that
// fails stops processing. A partial trailing day counts as a whole day, so a
// 49-hour explicit range yields three emitted days.
func resolveWindow(query models.AvailabilityQuery, now time.Time, limits WindowLimits) (models.SearchWindow, error) {
	if query.MemberTimezone == "" {
		return models.SearchWindow{}, NewInvalidTimezoneError("")
	}
	loc, err := time.LoadLocation(query.MemberTimezone)
	if err != nil {
		return models.SearchWindow{}, NewInvalidTimezoneError(query.MemberTimezone)
	}

	defaultSpan := time.Duration(limits.DefaultSpanDays) * 24 * time.Hour

	start := now.UTC()
	if query.StartTime != nil {
		start = query.StartTime.UTC()
	}
	end := start.Add(defaultSpan)
	if query.EndTime != nil {
		end = query.EndTime.UTC()
	}

	span := end.Sub(start)
	if span <= 0 {
		return models.SearchWindow{}, NewInvalidDateRangeError()
	}
	if span > time.Duration(limits.MaxSpanDays)*24*time.Hour {
		return models.SearchWindow{}, NewDateRangeTooLargeError(limits.MaxSpanDays)
	}

	if len(query.PractitionerIDs) == 0 {
		return models.SearchWindow{}, NewEmptyPractitionerSetError()
	}

	days := int(span / (24 * time.Hour))
	if span%(24*time.Hour) != 0 {
		days++
	}

	return models.SearchWindow{
		SearchStart: start,
		SearchEnd:   end,
		Location:    loc,
		Days:        days,
	}, nil
}

// fetchWindow expands the search window by the timezone buffer on both ends.
func fetchWindow(window models.SearchWindow) models.FetchWindow {
	return models.FetchWindow{
		Start: window.SearchStart.Add(-maxZoneOffset),
		End:   window.SearchEnd.Add(maxZoneOffset),
	}
}

// localDayStart returns midnight of the window's first local calendar day.
func localDayStart(window models.SearchWindow) time.Time {
	local := window.SearchStart.In(window.Location)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, window.Location)
}
