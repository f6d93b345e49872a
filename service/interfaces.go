package service

import (
	"context"
	"time"

	"cashflow/models"
)

// AccountRepository defines the interface for account balance access
type AccountRepository interface {
	// GetBalances returns current balances for accounts matching the filter
	GetBalances(ctx context.Context, filter models.ScopeFilter) ([]*models.AccountBalance, error)
}

// RecurringRuleRepository defines the interface for recurring rule access
type RecurringRuleRepository interface {
	// GetActiveRules returns active rules matching the filter whose start
	// date is not later than startedBy
	GetActiveRules(ctx context.Context, filter models.ScopeFilter, startedBy time.Time) ([]*models.RecurringRule, error)
}

// GoalFundingRuleRepository defines the interface for goal funding rule access
type GoalFundingRuleRepository interface {
	// GetEnabledFixedMonthlyRules returns enabled fixed-monthly funding rules
	// for goals visible under the filter
	GetEnabledFixedMonthlyRules(ctx context.Context, filter models.ScopeFilter) ([]*models.GoalFundingRule, error)
}

// FamilyRepository defines the interface for family membership lookups
type FamilyRepository interface {
	// GetFamilyIDByUser returns the ID of the family the user belongs to, or
	// an empty string if the user is not a family member
	GetFamilyIDByUser(ctx context.Context, userID string) (string, error)
}

// CashflowService defines the interface for cashflow projection operations
type CashflowService interface {
	// GenerateProjection produces a day-by-day cashflow forecast over the
	// next days days for the given user
	GenerateProjection(ctx context.Context, days int, filters models.ProjectionFilters, userID string) (*models.CashflowProjection, error)

	// GetCurrentBalances returns the user's current account balances for the
	// requested scope
	GetCurrentBalances(ctx context.Context, scope models.Scope, userID string) ([]*models.AccountBalance, error)
}
