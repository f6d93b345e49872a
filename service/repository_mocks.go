package service

import (
	"context"
	"time"

	"cashflow/models"

	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock implementation of AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) GetBalances(ctx context.Context, filter models.ScopeFilter) ([]*models.AccountBalance, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.AccountBalance), args.Error(1)
}

// MockRecurringRuleRepository is a mock implementation of RecurringRuleRepository
type MockRecurringRuleRepository struct {
	mock.Mock
}

func (m *MockRecurringRuleRepository) GetActiveRules(ctx context.Context, filter models.ScopeFilter, startedBy time.Time) ([]*models.RecurringRule, error) {
	args := m.Called(ctx, filter, startedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.RecurringRule), args.Error(1)
}

// MockGoalFundingRuleRepository is a mock implementation of GoalFundingRuleRepository
type MockGoalFundingRuleRepository struct {
	mock.Mock
}

func (m *MockGoalFundingRuleRepository) GetEnabledFixedMonthlyRules(ctx context.Context, filter models.ScopeFilter) ([]*models.GoalFundingRule, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.GoalFundingRule), args.Error(1)
}

// MockFamilyRepository is a mock implementation of FamilyRepository
type MockFamilyRepository struct {
	mock.Mock
}

func (m *MockFamilyRepository) GetFamilyIDByUser(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}
