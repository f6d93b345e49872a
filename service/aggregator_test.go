package service

import (
	"testing"
	"time"

	"cashflow/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent(id string, day time.Time, amount int64, isIncome bool) *models.CashflowEvent {
	eventType := models.EventTypeRecurringExpense
	if isIncome {
		eventType = models.EventTypeRecurringIncome
	}
	return &models.CashflowEvent{
		ID:          id,
		Type:        eventType,
		Scope:       models.ScopePersonal,
		Date:        day,
		AmountCents: amount,
		Currency:    "EUR",
		SourceID:    id,
		SourceType:  models.SourceTypeRecurringRule,
		IsIncome:    isIncome,
	}
}

func TestBuildDailySummaries_CoversEveryDay(t *testing.T) {
	start := date(2024, 1, 1)
	end := date(2024, 1, 31)

	summaries := buildDailySummaries(nil, 100000, start, end, "EUR")

	require.Len(t, summaries, 31)
	for i, summary := range summaries {
		assert.Equal(t, start.AddDate(0, 0, i), summary.Date)
		assert.Zero(t, summary.TotalIncomeCents)
		assert.Zero(t, summary.TotalExpenseCents)
		assert.Zero(t, summary.NetFlowCents)
		assert.Equal(t, int64(100000), summary.RunningBalanceCents)
		assert.NotNil(t, summary.Events)
		assert.Empty(t, summary.Events)
		assert.Equal(t, "EUR", summary.Currency)
	}
}

func TestBuildDailySummaries_RunningBalanceRecurrence(t *testing.T) {
	start := date(2024, 1, 1)
	end := date(2024, 1, 10)

	events := []*models.CashflowEvent{
		testEvent("salary", date(2024, 1, 2), 250000, true),
		testEvent("rent", date(2024, 1, 5), 90000, false),
		testEvent("groceries", date(2024, 1, 5), 12500, false),
		testEvent("dividend", date(2024, 1, 9), 3000, true),
	}

	summaries := buildDailySummaries(events, 50000, start, end, "EUR")
	require.Len(t, summaries, 10)

	assert.Equal(t, int64(50000), summaries[0].RunningBalanceCents)
	for i := 1; i < len(summaries); i++ {
		assert.Equal(t,
			summaries[i-1].RunningBalanceCents+summaries[i].NetFlowCents,
			summaries[i].RunningBalanceCents,
			"running balance must carry forward on day %d", i)
	}

	assert.Equal(t, int64(300000), summaries[1].RunningBalanceCents)
	assert.Equal(t, int64(197500), summaries[4].RunningBalanceCents)
	assert.Equal(t, int64(200500), summaries[9].RunningBalanceCents)
}

func TestBuildDailySummaries_SameDayEvents(t *testing.T) {
	day := date(2024, 2, 14)
	events := []*models.CashflowEvent{
		testEvent("salary", day, 20000, true),
		testEvent("insurance", day, 7500, false),
	}

	summaries := buildDailySummaries(events, 0, day, day, "EUR")
	require.Len(t, summaries, 1)

	summary := summaries[0]
	assert.Equal(t, int64(20000), summary.TotalIncomeCents)
	assert.Equal(t, int64(7500), summary.TotalExpenseCents)
	assert.Equal(t, int64(12500), summary.NetFlowCents)
	assert.Equal(t, int64(12500), summary.RunningBalanceCents)

	// Within-day order follows the input order
	require.Len(t, summary.Events, 2)
	assert.Equal(t, "salary", summary.Events[0].ID)
	assert.Equal(t, "insurance", summary.Events[1].ID)
}

func TestBuildDailySummaries_TotalsNeverNegative(t *testing.T) {
	start := date(2024, 3, 1)
	end := date(2024, 3, 7)
	events := []*models.CashflowEvent{
		testEvent("a", date(2024, 3, 2), 10000, false),
		testEvent("b", date(2024, 3, 2), 5000, false),
		testEvent("c", date(2024, 3, 4), 2500, true),
	}

	summaries := buildDailySummaries(events, 1000, start, end, "EUR")

	for _, summary := range summaries {
		assert.GreaterOrEqual(t, summary.TotalIncomeCents, int64(0))
		assert.GreaterOrEqual(t, summary.TotalExpenseCents, int64(0))
	}
	// Net flow and running balance may go negative
	assert.Equal(t, int64(-15000), summaries[1].NetFlowCents)
	assert.Equal(t, int64(-14000), summaries[1].RunningBalanceCents)
}

func TestBuildDailySummaries_EventsOutsideWindowIgnored(t *testing.T) {
	start := date(2024, 1, 10)
	end := date(2024, 1, 20)
	events := []*models.CashflowEvent{
		testEvent("before", date(2024, 1, 5), 1000, false),
		testEvent("inside", date(2024, 1, 15), 2000, false),
		testEvent("after", date(2024, 1, 25), 3000, false),
	}

	summaries := buildDailySummaries(events, 0, start, end, "EUR")
	require.Len(t, summaries, 11)

	var total int64
	for _, summary := range summaries {
		total += summary.TotalExpenseCents
	}
	assert.Equal(t, int64(2000), total)
	assert.Equal(t, int64(-2000), summaries[len(summaries)-1].RunningBalanceCents)
}
