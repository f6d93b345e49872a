package testutil

import (
	"context"
	"testing"
	"time"

	"cashflow/database"
	"cashflow/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// The projection engine only reads, so test fixtures are inserted directly.

// InsertTestFamily creates a family and returns its ID
func InsertTestFamily(t *testing.T, db *database.DB, name string) string {
	id := uuid.NewString()
	_, err := db.Pool.Exec(context.Background(),
		`INSERT INTO families (id, name) VALUES ($1, $2)`, id, name)
	require.NoError(t, err)
	return id
}

// InsertTestFamilyMember links a user to a family and returns the user ID
func InsertTestFamilyMember(t *testing.T, db *database.DB, familyID string) string {
	userID := uuid.NewString()
	_, err := db.Pool.Exec(context.Background(),
		`INSERT INTO family_members (user_id, family_id) VALUES ($1, $2)`, userID, familyID)
	require.NoError(t, err)
	return userID
}

// InsertTestAccount creates an account owned by a user or a family. Pass an
// empty familyID for a personal account.
func InsertTestAccount(t *testing.T, db *database.DB, userID, familyID, name string, balanceCents int64) string {
	id := uuid.NewString()
	_, err := db.Pool.Exec(context.Background(),
		`INSERT INTO accounts (id, user_id, family_id, name, balance_cents)
		 VALUES ($1, $2, $3, $4, $5)`,
		id, nullable(userID), nullable(familyID), name, balanceCents)
	require.NoError(t, err)
	return id
}

// InsertTestGoal creates a goal owned by a user or a family
func InsertTestGoal(t *testing.T, db *database.DB, userID, familyID, name string) string {
	id := uuid.NewString()
	_, err := db.Pool.Exec(context.Background(),
		`INSERT INTO goals (id, user_id, family_id, name, target_cents)
		 VALUES ($1, $2, $3, $4, $5)`,
		id, nullable(userID), nullable(familyID), name, 100000)
	require.NoError(t, err)
	return id
}

// InsertTestRecurringRule persists a rule and returns its ID. Ownership
// columns are derived from the rule's scope.
func InsertTestRecurringRule(t *testing.T, db *database.DB, rule *models.RecurringRule, userID, familyID string) string {
	id := uuid.NewString()
	var endDate any
	if rule.EndDate != nil {
		endDate = *rule.EndDate
	}
	_, err := db.Pool.Exec(context.Background(),
		`INSERT INTO recurring_rules (
			id, scope, user_id, family_id, description, payee, vendor,
			amount_cents, currency, interval_unit, interval_count,
			start_date, end_date, next_occurrence_date, status,
			is_subscription, payment_method
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		id, rule.Scope, nullable(userID), nullable(familyID),
		nullable(rule.Description), nullable(rule.Payee), nullable(rule.Vendor),
		rule.AmountCents, rule.Currency, rule.IntervalUnit, rule.IntervalCount,
		rule.StartDate, endDate, rule.NextOccurrence, rule.Status,
		rule.IsSubscription, nullable(rule.PaymentMethod))
	require.NoError(t, err)
	return id
}

// InsertTestGoalFundingRule persists a fixed-monthly funding rule for a goal
func InsertTestGoalFundingRule(t *testing.T, db *database.DB, goalID string, amountCents int64, dayOfMonth int, enabled bool) string {
	id := uuid.NewString()
	_, err := db.Pool.Exec(context.Background(),
		`INSERT INTO goal_funding_rules (id, goal_id, funding_type, enabled, fixed_cents, day_of_month)
		 VALUES ($1, $2, 'fixed_monthly', $3, $4, $5)`,
		id, goalID, enabled, amountCents, dayOfMonth)
	require.NoError(t, err)
	return id
}

// NewTestRecurringRule builds a monthly expense rule with sensible defaults
func NewTestRecurringRule(scope models.Scope, amountCents int64, startDate time.Time) *models.RecurringRule {
	return &models.RecurringRule{
		Scope:          scope,
		Description:    "test rule",
		AmountCents:    amountCents,
		Currency:       "EUR",
		IntervalUnit:   models.IntervalMonth,
		IntervalCount:  1,
		StartDate:      startDate,
		NextOccurrence: startDate,
		Status:         models.RuleStatusActive,
	}
}

// nullable maps empty strings to NULL for optional text and UUID columns
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
