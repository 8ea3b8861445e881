package services

import (
	"time"

	"homeledger/internal/models"
)

type recurrenceService struct{}

// NewRecurrenceService creates a new RecurrenceServiceInterface instance
func NewRecurrenceService() RecurrenceServiceInterface {
	return &recurrenceService{}
}

// Expand materializes the occurrences of a recurring template whose dates
// fall inside [windowStart, windowEnd]. The template's own date is never
// re-emitted; the first candidate is one period after it. Occurrence dates
// are anchored to the template date so that monthly templates on the 29th,
// 30th or 31st clamp to short months instead of drifting into the next one.
func (s *recurrenceService) Expand(template *models.Transaction, windowStart, windowEnd time.Time) []models.Transaction {
	if template == nil || !template.IsExpandable() {
		return nil
	}
	if windowEnd.Before(windowStart) {
		return nil
	}

	occurrences := make([]models.Transaction, 0, 4)

	for step := 1; ; step++ {
		date := advance(template.Date, template.RecurringPeriod, step)

		if date.After(windowEnd) {
			break
		}
		if template.RecurringEndDate != nil && date.After(*template.RecurringEndDate) {
			break
		}
		if date.Before(windowStart) {
			continue
		}

		occurrences = append(occurrences, template.MaterializeOccurrence(date))
	}

	return occurrences
}

// ExpandWindow flattens a record set into the window: literal records whose
// dates fall inside it, plus every expanded occurrence of the recurring
// templates among them.
func (s *recurrenceService) ExpandWindow(transactions []models.Transaction, windowStart, windowEnd time.Time) []models.Transaction {
	result := make([]models.Transaction, 0, len(transactions))

	for i := range transactions {
		txn := &transactions[i]

		if !txn.Date.Before(windowStart) && !txn.Date.After(windowEnd) {
			result = append(result, *txn)
		}

		result = append(result, s.Expand(txn, windowStart, windowEnd)...)
	}

	return result
}

// NextOccurrence returns the first occurrence date of a template strictly
// after the given date, or false when the template does not recur past it.
func (s *recurrenceService) NextOccurrence(template *models.Transaction, after time.Time) (time.Time, bool) {
	if template == nil || !template.IsExpandable() {
		return time.Time{}, false
	}

	for step := 1; ; step++ {
		date := advance(template.Date, template.RecurringPeriod, step)
		if template.RecurringEndDate != nil && date.After(*template.RecurringEndDate) {
			return time.Time{}, false
		}
		if date.After(after) {
			return date, true
		}
	}
}

// advance moves the anchor date forward by step periods
func advance(anchor time.Time, period string, step int) time.Time {
	switch period {
	case models.RecurringPeriodWeekly:
		return anchor.AddDate(0, 0, 7*step)
	case models.RecurringPeriodMonthly:
		return addMonthsClamped(anchor, step)
	case models.RecurringPeriodQuarterly:
		return addMonthsClamped(anchor, 3*step)
	case models.RecurringPeriodYearly:
		return addMonthsClamped(anchor, 12*step)
	default:
		return anchor
	}
}

// addMonthsClamped adds calendar months keeping the anchor's day of month,
// clamped to the last day of the target month. time.AddDate would normalize
// Jan 31 + 1 month into March; recurring entries must not skip months.
func addMonthsClamped(anchor time.Time, months int) time.Time {
	year := anchor.Year()
	month := int(anchor.Month()) + months
	// normalize into [1,12]
	year += (month - 1) / 12
	month = (month-1)%12 + 1
	if month <= 0 {
		month += 12
		year--
	}

	day := anchor.Day()
	if last := daysInMonth(year, time.Month(month)); day > last {
		day = last
	}

	return time.Date(year, time.Month(month), day,
		anchor.Hour(), anchor.Minute(), anchor.Second(), anchor.Nanosecond(), anchor.Location())
}

func daysInMonth(year int, month time.Month) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
