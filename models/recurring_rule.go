package models

import (
	"time"
)

// IntervalUnit is the unit a recurring rule advances by
type IntervalUnit string

const (
	IntervalDay   IntervalUnit = "day"
	IntervalWeek  IntervalUnit = "week"
	IntervalMonth IntervalUnit = "month"
	IntervalYear  IntervalUnit = "year"
)

// RuleStatus is the lifecycle state of a recurring rule
type RuleStatus string

const (
	RuleStatusActive   RuleStatus = "active"
	RuleStatusPaused   RuleStatus = "paused"
	RuleStatusCanceled RuleStatus = "canceled"
)

// RecurringRule is a stored recurring income or expense commitment.
// AmountCents is signed: positive amounts are income, negative are expenses.
// NextOccurrence anchors expansion; no occurrence is ever produced before it.
type RecurringRule struct {
	ID             string       `db:"id"`
	Scope          Scope        `db:"scope"`
	Description    string       `db:"description"`
	Payee          string       `db:"payee"`
	Vendor         string       `db:"vendor"`
	CategoryID     string       `db:"category_id"`
	AmountCents    int64        `db:"amount_cents"`
	Currency       string       `db:"currency"`
	IntervalUnit   IntervalUnit `db:"interval_unit"`
	IntervalCount  int          `db:"interval_count"`
	StartDate      time.Time    `db:"start_date"`
	EndDate        *time.Time   `db:"end_date"`
	NextOccurrence time.Time    `db:"next_occurrence_date"`
	Status         RuleStatus   `db:"status"`
	IsSubscription bool         `db:"is_subscription"`
	PaymentMethod  string       `db:"payment_method"`
}

// IsIncome reports whether the rule produces income events
func (r *RecurringRule) IsIncome() bool {
	return r.AmountCents > 0
}
