package models

import (
	"time"
)

// DailyCashflowSummary aggregates one calendar day of projected events.
// Every day in a projection window produces a summary, including days with
// no events, so the running balance is continuous across the whole window.
type DailyCashflowSummary struct {
	Date                time.Time        `json:"date"`
	TotalIncomeCents    int64            `json:"total_income_cents"`
	TotalExpenseCents   int64            `json:"total_expense_cents"`
	NetFlowCents        int64            `json:"net_flow_cents"`
	RunningBalanceCents int64            `json:"running_balance_cents"`
	Events              []*CashflowEvent `json:"events"`
	Currency            string           `json:"currency"`
}

// CashflowPeriod is the aggregated projection over a window. Period totals
// are sums of the daily totals.
type CashflowPeriod struct {
	StartDate            time.Time               `json:"start_date"`
	EndDate              time.Time               `json:"end_date"`
	DailySummaries       []*DailyCashflowSummary `json:"daily_summaries"`
	TotalIncomeCents     int64                   `json:"total_income_cents"`
	TotalExpenseCents    int64                   `json:"total_expense_cents"`
	NetFlowCents         int64                   `json:"net_flow_cents"`
	StartingBalanceCents int64                   `json:"starting_balance_cents"`
	EndingBalanceCents   int64                   `json:"ending_balance_cents"`
	Currency             string                  `json:"currency"`
}

// CashflowProjection is the engine's full output for one projection call
type CashflowProjection struct {
	CurrentBalances []*AccountBalance `json:"current_balances"`
	Period          *CashflowPeriod   `json:"period"`
	Filters         ProjectionFilters `json:"filters"`
	GeneratedAt     time.Time         `json:"generated_at"`
}
