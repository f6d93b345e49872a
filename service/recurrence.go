package service

import (
	"fmt"
	"time"

	"cashflow/models"
)

// expandRecurringRule expands a rule into concrete occurrence dates inside
// [windowStart, windowEnd]. Occurrences are computed as fixed multiples of
// the interval from the rule's anchor (its next occurrence date), so a rule
// anchored on the 31st keeps landing on the 31st where the month allows it
// and on the month's last day where it doesn't. Expansion never produces a
// date before the anchor, and stops at the rule's end date when that comes
// before the window end.
func expandRecurringRule(rule *models.RecurringRule, windowStart, windowEnd time.Time) ([]time.Time, error) {
	if rule.Status != models.RuleStatusActive {
		return nil, nil
	}
	if rule.IntervalCount <= 0 {
		return nil, &ConfigurationError{
			SourceID: rule.ID,
			Reason:   fmt.Sprintf("interval count must be positive, got %d", rule.IntervalCount),
		}
	}
	switch rule.IntervalUnit {
	case models.IntervalDay, models.IntervalWeek, models.IntervalMonth, models.IntervalYear:
	default:
		return nil, &ConfigurationError{
			SourceID: rule.ID,
			Reason:   fmt.Sprintf("unknown interval unit %q", rule.IntervalUnit),
		}
	}

	windowStart = models.Midnight(windowStart)
	windowEnd = models.Midnight(windowEnd)
	anchor := models.Midnight(rule.NextOccurrence)

	end := windowEnd
	if rule.EndDate != nil {
		if ruleEnd := models.Midnight(*rule.EndDate); ruleEnd.Before(end) {
			end = ruleEnd
		}
	}

	var dates []time.Time
	for step := 0; ; step++ {
		occurrence := advance(anchor, rule.IntervalUnit, rule.IntervalCount*step)
		if occurrence.After(end) {
			break
		}
		if occurrence.Before(windowStart) {
			continue
		}
		dates = append(dates, occurrence)
	}
	return dates, nil
}

// monthlyOccurrences returns one date per calendar month in the window,
// landing on dayOfMonth clamped to each month's length.
func monthlyOccurrences(dayOfMonth int, windowStart, windowEnd time.Time) ([]time.Time, error) {
	if dayOfMonth < 1 || dayOfMonth > 31 {
		return nil, fmt.Errorf("day of month must be between 1 and 31, got %d", dayOfMonth)
	}

	windowStart = models.Midnight(windowStart)
	windowEnd = models.Midnight(windowEnd)

	var dates []time.Time
	month := time.Date(windowStart.Year(), windowStart.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !month.After(windowEnd) {
		day := dayOfMonth
		if last := daysIn(month.Year(), month.Month()); day > last {
			day = last
		}
		occurrence := time.Date(month.Year(), month.Month(), day, 0, 0, 0, 0, time.UTC)
		if !occurrence.Before(windowStart) && !occurrence.After(windowEnd) {
			dates = append(dates, occurrence)
		}
		month = month.AddDate(0, 1, 0)
	}
	return dates, nil
}

// advance moves the anchor forward by n interval units. Month and year
// advancement preserves the anchor's day-of-month, clamped to the last valid
// day of the target month, instead of inheriting the rollover behavior of
// naive date arithmetic.
func advance(anchor time.Time, unit models.IntervalUnit, n int) time.Time {
	if n == 0 {
		return anchor
	}
	switch unit {
	case models.IntervalDay:
		return anchor.AddDate(0, 0, n)
	case models.IntervalWeek:
		return anchor.AddDate(0, 0, 7*n)
	case models.IntervalMonth:
		return addMonthsClamped(anchor, n)
	case models.IntervalYear:
		return addMonthsClamped(anchor, 12*n)
	}
	return anchor
}

// addMonthsClamped adds months to t, clamping the day to the target month's
// length (Jan 31 + 1 month = Feb 28/29, not Mar 2/3).
func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	m := int(month) - 1 + months
	y := year + m/12
	m = m % 12
	if m < 0 {
		m += 12
		y--
	}
	target := time.Month(m + 1)
	if last := daysIn(y, target); day > last {
		day = last
	}
	return time.Date(y, target, day, 0, 0, 0, 0, time.UTC)
}

// daysIn returns the number of days in the given month
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
