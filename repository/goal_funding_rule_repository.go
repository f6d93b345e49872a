package repository

import (
	"context"
	"fmt"
	"strings"

	"cashflow/database"
	"cashflow/models"
)

// GoalFundingRuleRepository implements the service.GoalFundingRuleRepository interface
type GoalFundingRuleRepository struct {
	q queryable
}

// NewGoalFundingRuleRepository creates a new goal funding rule repository
func NewGoalFundingRuleRepository(db *database.DB) *GoalFundingRuleRepository {
	return &GoalFundingRuleRepository{q: db.Pool}
}

// GetEnabledFixedMonthlyRules returns enabled fixed-monthly funding rules
// for goals visible under the filter. Scope is derived from the owning
// goal's family linkage.
func (r *GoalFundingRuleRepository) GetEnabledFixedMonthlyRules(ctx context.Context, filter models.ScopeFilter) ([]*models.GoalFundingRule, error) {
	var conditions []string
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	conditions = append(conditions,
		"r.enabled = TRUE",
		"r.funding_type = 'fixed_monthly'",
		"r.fixed_cents IS NOT NULL",
		"r.day_of_month IS NOT NULL",
	)

	switch {
	case filter.IncludesPersonal() && filter.IncludesFamily():
		conditions = append(conditions, fmt.Sprintf("((g.user_id = %s AND g.family_id IS NULL) OR g.family_id = %s)",
			arg(filter.UserID), arg(filter.FamilyID)))
	case filter.IncludesFamily():
		conditions = append(conditions, fmt.Sprintf("g.family_id = %s", arg(filter.FamilyID)))
	default:
		conditions = append(conditions, fmt.Sprintf("g.user_id = %s AND g.family_id IS NULL", arg(filter.UserID)))
	}

	query := fmt.Sprintf(`
		SELECT
			r.id,
			r.goal_id,
			g.name,
			r.fixed_cents,
			r.day_of_month,
			r.currency,
			r.enabled,
			g.family_id IS NOT NULL AS is_family
		FROM goal_funding_rules r
		JOIN goals g ON g.id = r.goal_id
		WHERE %s
		ORDER BY r.created_at, r.id
	`, strings.Join(conditions, " AND "))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get goal funding rules: %w", err)
	}
	defer rows.Close()

	var rules []*models.GoalFundingRule
	for rows.Next() {
		var rule models.GoalFundingRule
		var isFamily bool
		err := rows.Scan(
			&rule.ID,
			&rule.GoalID,
			&rule.GoalName,
			&rule.AmountCents,
			&rule.DayOfMonth,
			&rule.Currency,
			&rule.Enabled,
			&isFamily,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal funding rule: %w", err)
		}
		rule.Scope = models.ScopePersonal
		if isFamily {
			rule.Scope = models.ScopeFamily
		}
		rules = append(rules, &rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate goal funding rules: %w", err)
	}

	return rules, nil
}
