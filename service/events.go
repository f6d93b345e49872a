package service

import (
	"context"
	"fmt"
	"time"

	"cashflow/models"

	log "github.com/sirupsen/logrus"
)

// eventSource produces the events of one commitment kind for a projection
// window. Sources are fetched concurrently; the coordinator re-establishes a
// canonical order afterwards, so a source only guarantees its own internal
// emission order.
type eventSource interface {
	name() string
	events(ctx context.Context, filter models.ScopeFilter, windowStart, windowEnd time.Time) ([]*models.CashflowEvent, error)
}

// recurringRuleSource derives events from active recurring income/expense
// and subscription rules.
type recurringRuleSource struct {
	rules RecurringRuleRepository
}

func (s *recurringRuleSource) name() string {
	return "recurring_rules"
}

func (s *recurringRuleSource) events(ctx context.Context, filter models.ScopeFilter, windowStart, windowEnd time.Time) ([]*models.CashflowEvent, error) {
	rules, err := s.rules.GetActiveRules(ctx, filter, windowEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recurring rules: %w", err)
	}

	var events []*models.CashflowEvent
	for _, rule := range rules {
		dates, err := expandRecurringRule(rule, windowStart, windowEnd)
		if err != nil {
			// One malformed rule must not blank the whole source
			log.WithError(err).WithField("rule_id", rule.ID).Warn("Skipping recurring rule with invalid definition")
			continue
		}
		for _, date := range dates {
			events = append(events, eventFromRecurringRule(rule, date))
		}
	}
	return events, nil
}

// eventFromRecurringRule maps one occurrence of a recurring rule to a
// cashflow event. Subscription rules are always typed subscription; for the
// rest the sign of the stored amount decides between income and expense. The
// event amount is always the absolute value, with direction carried by
// IsIncome.
func eventFromRecurringRule(rule *models.RecurringRule, date time.Time) *models.CashflowEvent {
	eventType := models.EventTypeRecurringExpense
	if rule.IsSubscription {
		eventType = models.EventTypeSubscription
	} else if rule.IsIncome() {
		eventType = models.EventTypeRecurringIncome
	}

	description := rule.Description
	if description == "" {
		description = rule.Payee
	}
	if description == "" {
		description = "Recurring transaction"
	}

	amount := rule.AmountCents
	if amount < 0 {
		amount = -amount
	}

	return &models.CashflowEvent{
		ID:          fmt.Sprintf("%s_%s", rule.ID, date.Format(models.DayFormat)),
		Type:        eventType,
		Scope:       rule.Scope,
		Date:        date,
		AmountCents: amount,
		Currency:    rule.Currency,
		Description: description,
		CategoryID:  rule.CategoryID,
		SourceID:    rule.ID,
		SourceType:  models.SourceTypeRecurringRule,
		IsIncome:    rule.IsIncome(),
		Metadata: map[string]any{
			"payee":            rule.Payee,
			"vendor":           rule.Vendor,
			"rule_description": rule.Description,
			"payment_method":   rule.PaymentMethod,
			"is_subscription":  rule.IsSubscription,
		},
	}
}

// goalFundingSource derives events from enabled fixed-monthly goal funding
// rules. Funding moves money out of an account toward a goal, so every event
// is an expense regardless of the stored amount's sign.
type goalFundingSource struct {
	funding GoalFundingRuleRepository
}

func (s *goalFundingSource) name() string {
	return "goal_funding"
}

func (s *goalFundingSource) events(ctx context.Context, filter models.ScopeFilter, windowStart, windowEnd time.Time) ([]*models.CashflowEvent, error) {
	rules, err := s.funding.GetEnabledFixedMonthlyRules(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch goal funding rules: %w", err)
	}

	var events []*models.CashflowEvent
	for _, rule := range rules {
		dates, err := monthlyOccurrences(rule.DayOfMonth, windowStart, windowEnd)
		if err != nil {
			log.WithError(err).WithField("rule_id", rule.ID).Warn("Skipping goal funding rule with invalid definition")
			continue
		}
		for _, date := range dates {
			events = append(events, eventFromGoalFunding(rule, date))
		}
	}
	return events, nil
}

// eventFromGoalFunding maps one monthly occurrence of a funding rule to a
// cashflow event
func eventFromGoalFunding(rule *models.GoalFundingRule, date time.Time) *models.CashflowEvent {
	amount := rule.AmountCents
	if amount < 0 {
		amount = -amount
	}

	return &models.CashflowEvent{
		ID:          fmt.Sprintf("%s_%s", rule.ID, date.Format(models.DayFormat)),
		Type:        models.EventTypeGoalFunding,
		Scope:       rule.Scope,
		Date:        date,
		AmountCents: amount,
		Currency:    rule.Currency,
		Description: fmt.Sprintf("Goal funding: %s", rule.GoalName),
		SourceID:    rule.ID,
		SourceType:  models.SourceTypeGoalFundingRule,
		IsIncome:    false,
		Metadata: map[string]any{
			"goal_id":      rule.GoalID,
			"goal_name":    rule.GoalName,
			"funding_type": "fixed_monthly",
			"day_of_month": rule.DayOfMonth,
		},
	}
}
