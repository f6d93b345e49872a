package service

import (
	"context"
	"errors"
	"testing"

	"cashflow/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEventFromRecurringRule_Expense(t *testing.T) {
	rule := testRule(models.IntervalMonth, 1, date(2024, 1, 15))
	rule.Description = "Rent"
	rule.Payee = "Landlord"

	event := eventFromRecurringRule(rule, date(2024, 2, 15))

	assert.Equal(t, "rule-1_2024-02-15", event.ID)
	assert.Equal(t, models.EventTypeRecurringExpense, event.Type)
	assert.Equal(t, int64(5000), event.AmountCents)
	assert.False(t, event.IsIncome)
	assert.Equal(t, "Rent", event.Description)
	assert.Equal(t, "rule-1", event.SourceID)
	assert.Equal(t, models.SourceTypeRecurringRule, event.SourceType)
	assert.Equal(t, "Landlord", event.Metadata["payee"])
}

func TestEventFromRecurringRule_Income(t *testing.T) {
	rule := testRule(models.IntervalMonth, 1, date(2024, 1, 25))
	rule.AmountCents = 250000

	event := eventFromRecurringRule(rule, date(2024, 1, 25))

	assert.Equal(t, models.EventTypeRecurringIncome, event.Type)
	assert.Equal(t, int64(250000), event.AmountCents)
	assert.True(t, event.IsIncome)
}

func TestEventFromRecurringRule_SubscriptionOverridesSign(t *testing.T) {
	rule := testRule(models.IntervalMonth, 1, date(2024, 1, 5))
	rule.IsSubscription = true
	rule.AmountCents = 1299

	event := eventFromRecurringRule(rule, date(2024, 1, 5))

	// Subscription typing wins regardless of the amount's sign
	assert.Equal(t, models.EventTypeSubscription, event.Type)
	assert.Equal(t, int64(1299), event.AmountCents)
	assert.True(t, event.IsIncome)
}

func TestEventFromRecurringRule_DescriptionFallsBackToPayee(t *testing.T) {
	rule := testRule(models.IntervalMonth, 1, date(2024, 1, 5))
	rule.Description = ""
	rule.Payee = "Electric Co"

	event := eventFromRecurringRule(rule, date(2024, 1, 5))
	assert.Equal(t, "Electric Co", event.Description)

	rule.Payee = ""
	event = eventFromRecurringRule(rule, date(2024, 1, 5))
	assert.Equal(t, "Recurring transaction", event.Description)
}

func TestEventFromGoalFunding_AlwaysExpense(t *testing.T) {
	rule := &models.GoalFundingRule{
		ID:          "funding-1",
		GoalID:      "goal-1",
		GoalName:    "Vacation",
		Scope:       models.ScopeFamily,
		AmountCents: -20000, // stored sign must not matter
		DayOfMonth:  15,
		Currency:    "EUR",
		Enabled:     true,
	}

	event := eventFromGoalFunding(rule, date(2024, 3, 15))

	assert.Equal(t, "funding-1_2024-03-15", event.ID)
	assert.Equal(t, models.EventTypeGoalFunding, event.Type)
	assert.Equal(t, int64(20000), event.AmountCents)
	assert.False(t, event.IsIncome)
	assert.Equal(t, "Goal funding: Vacation", event.Description)
	assert.Equal(t, models.SourceTypeGoalFundingRule, event.SourceType)
	assert.Equal(t, "goal-1", event.Metadata["goal_id"])
}

func TestRecurringRuleSource_SkipsMalformedRules(t *testing.T) {
	ctx := context.Background()
	mockRules := new(MockRecurringRuleRepository)

	good := testRule(models.IntervalMonth, 1, date(2024, 1, 1))
	good.ID = "good"
	bad := testRule(models.IntervalUnit("bogus"), 1, date(2024, 1, 1))
	bad.ID = "bad"

	mockRules.On("GetActiveRules", ctx, mock.Anything, mock.Anything).
		Return([]*models.RecurringRule{bad, good}, nil)

	source := &recurringRuleSource{rules: mockRules}
	events, err := source.events(ctx, models.ScopeFilter{UserID: "user-1"}, date(2024, 1, 1), date(2024, 2, 29))

	require.NoError(t, err)
	require.Len(t, events, 2)
	for _, event := range events {
		assert.Equal(t, "good", event.SourceID)
	}
	mockRules.AssertExpectations(t)
}

func TestRecurringRuleSource_FetchErrorPropagates(t *testing.T) {
	ctx := context.Background()
	mockRules := new(MockRecurringRuleRepository)
	mockRules.On("GetActiveRules", ctx, mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	source := &recurringRuleSource{rules: mockRules}
	events, err := source.events(ctx, models.ScopeFilter{UserID: "user-1"}, date(2024, 1, 1), date(2024, 1, 31))

	assert.Nil(t, events)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch recurring rules")
}

func TestGoalFundingSource_MonthlyEvents(t *testing.T) {
	ctx := context.Background()
	mockFunding := new(MockGoalFundingRuleRepository)

	rule := &models.GoalFundingRule{
		ID:          "funding-1",
		GoalID:      "goal-1",
		GoalName:    "Emergency fund",
		Scope:       models.ScopePersonal,
		AmountCents: 10000,
		DayOfMonth:  1,
		Currency:    "EUR",
		Enabled:     true,
	}
	mockFunding.On("GetEnabledFixedMonthlyRules", ctx, mock.Anything).
		Return([]*models.GoalFundingRule{rule}, nil)

	source := &goalFundingSource{funding: mockFunding}
	events, err := source.events(ctx, models.ScopeFilter{UserID: "user-1"}, date(2024, 1, 1), date(2024, 3, 31))

	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, date(2024, 1, 1), events[0].Date)
	assert.Equal(t, date(2024, 2, 1), events[1].Date)
	assert.Equal(t, date(2024, 3, 1), events[2].Date)
	for _, event := range events {
		assert.False(t, event.IsIncome)
	}
}
