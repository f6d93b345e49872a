package service

import (
	"time"

	"cashflow/models"
)

// buildDailySummaries bins events into one summary per calendar day across
// the whole window and carries the running balance forward day over day.
// Days without events still produce a summary with zero totals, so the
// output always covers every date in [windowStart, windowEnd] with no gaps.
// Within a day, events keep the order they arrive in; bucketing itself does
// not depend on input order. Single pass over window length plus event count.
func buildDailySummaries(events []*models.CashflowEvent, startingBalanceCents int64, windowStart, windowEnd time.Time, currency string) []*models.DailyCashflowSummary {
	eventsByDay := make(map[string][]*models.CashflowEvent)
	for _, event := range events {
		key := event.DayKey()
		eventsByDay[key] = append(eventsByDay[key], event)
	}

	windowStart = models.Midnight(windowStart)
	windowEnd = models.Midnight(windowEnd)

	runningBalance := startingBalanceCents
	var summaries []*models.DailyCashflowSummary
	for day := windowStart; !day.After(windowEnd); day = day.AddDate(0, 0, 1) {
		dayEvents := eventsByDay[day.Format(models.DayFormat)]
		if dayEvents == nil {
			dayEvents = []*models.CashflowEvent{}
		}

		var totalIncome, totalExpense int64
		for _, event := range dayEvents {
			if event.IsIncome {
				totalIncome += event.AmountCents
			} else {
				totalExpense += event.AmountCents
			}
		}

		netFlow := totalIncome - totalExpense
		runningBalance += netFlow

		summaries = append(summaries, &models.DailyCashflowSummary{
			Date:                day,
			TotalIncomeCents:    totalIncome,
			TotalExpenseCents:   totalExpense,
			NetFlowCents:        netFlow,
			RunningBalanceCents: runningBalance,
			Events:              dayEvents,
			Currency:            currency,
		})
	}
	return summaries
}
