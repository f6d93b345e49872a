package models

import (
	"time"
)

// Scope indicates whether an entity belongs to an individual user or to a
// shared family context.
type Scope string

const (
	ScopePersonal Scope = "personal"
	ScopeFamily   Scope = "family"
)

// EventType classifies a projected cash movement
type EventType string

const (
	EventTypeRecurringIncome      EventType = "recurring_income"
	EventTypeRecurringExpense     EventType = "recurring_expense"
	EventTypeSubscription         EventType = "subscription"
	EventTypeGoalFunding          EventType = "goal_funding"
	EventTypeCreditCardDue        EventType = "credit_card_due"
	EventTypeScheduledTransaction EventType = "scheduled_transaction"
)

// SourceType identifies the kind of commitment an event was derived from
type SourceType string

const (
	SourceTypeRecurringRule   SourceType = "recurring_rule"
	SourceTypeGoalFundingRule SourceType = "goal_funding_rule"
)

// CashflowEvent is a single projected cash movement on a calendar day.
// Events are derived from stored commitments and never persisted; the ID is
// deterministic from source and date so repeated projections over the same
// window produce identical events.
type CashflowEvent struct {
	ID          string         `json:"id"`
	Type        EventType      `json:"type"`
	Scope       Scope          `json:"scope"`
	Date        time.Time      `json:"date"`
	AmountCents int64          `json:"amount_cents"`
	Currency    string         `json:"currency"`
	Description string         `json:"description"`
	CategoryID  string         `json:"category_id,omitempty"`
	SourceID    string         `json:"source_id"`
	SourceType  SourceType     `json:"source_type"`
	IsIncome    bool           `json:"is_income"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// DayKey returns the calendar-day bucket key for the event
func (e *CashflowEvent) DayKey() string {
	return e.Date.Format(DayFormat)
}

// DayFormat is the canonical calendar-day representation used for event IDs
// and day bucketing.
const DayFormat = "2006-01-02"

// Midnight truncates t to 00:00:00 UTC. All projection dates carry no time
// component.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
