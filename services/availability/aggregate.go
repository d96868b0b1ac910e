package availability

import "medibook/models"

// buildDayAvailabilities reduces the per-(practitioner, day) matrix along the
// practitioner axis: a day is available when any candidate practitioner has an
// opening. Exactly one record is emitted per local calendar day in the window,
// ascending and contiguous, even when every day is unavailable.
func buildDayAvailabilities(window models.SearchWindow, schedules []models.PractitionerSchedule) []models.DayAvailability {
	anchor := localDayStart(window)

	days := make([]models.DayAvailability, 0, window.Days)
	for i := 0; i < window.Days; i++ {
		dayStart, dayEnd := dayWindow(anchor, i, window.Location)

		available := false
		for _, sched := range schedules {
			if practitionerDayAvailable(sched, dayStart, dayEnd) {
				available = true
				break
			}
		}

		days = append(days, models.DayAvailability{
			Date:            anchor.AddDate(0, 0, i).Format(models.DayDateFormat),
			HasAvailability: available,
		})
	}
	return days
}
