package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cashflow/database"
	"cashflow/models"
)

// RecurringRuleRepository implements the service.RecurringRuleRepository interface
type RecurringRuleRepository struct {
	q queryable
}

// NewRecurringRuleRepository creates a new recurring rule repository
func NewRecurringRuleRepository(db *database.DB) *RecurringRuleRepository {
	return &RecurringRuleRepository{q: db.Pool}
}

// GetActiveRules returns active rules matching the filter whose start date
// is not later than startedBy. Results are ordered by creation so repeated
// fetches present rules in a stable order.
func (r *RecurringRuleRepository) GetActiveRules(ctx context.Context, filter models.ScopeFilter, startedBy time.Time) ([]*models.RecurringRule, error) {
	var conditions []string
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	conditions = append(conditions, "status = 'active'")
	conditions = append(conditions, fmt.Sprintf("start_date <= %s", arg(startedBy)))

	switch {
	case filter.IncludesPersonal() && filter.IncludesFamily():
		conditions = append(conditions, fmt.Sprintf("((scope = 'personal' AND user_id = %s) OR (scope = 'family' AND family_id = %s))",
			arg(filter.UserID), arg(filter.FamilyID)))
	case filter.IncludesFamily():
		conditions = append(conditions, fmt.Sprintf("scope = 'family' AND family_id = %s", arg(filter.FamilyID)))
	default:
		conditions = append(conditions, fmt.Sprintf("scope = 'personal' AND user_id = %s", arg(filter.UserID)))
	}

	query := fmt.Sprintf(`
		SELECT
			id,
			scope,
			COALESCE(description, ''),
			COALESCE(payee, ''),
			COALESCE(vendor, ''),
			COALESCE(category_id::text, ''),
			amount_cents,
			currency,
			interval_unit,
			interval_count,
			start_date,
			end_date,
			next_occurrence_date,
			status,
			is_subscription,
			COALESCE(payment_method, '')
		FROM recurring_rules
		WHERE %s
		ORDER BY created_at, id
	`, strings.Join(conditions, " AND "))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get active recurring rules: %w", err)
	}
	defer rows.Close()

	var rules []*models.RecurringRule
	for rows.Next() {
		var rule models.RecurringRule
		err := rows.Scan(
			&rule.ID,
			&rule.Scope,
			&rule.Description,
			&rule.Payee,
			&rule.Vendor,
			&rule.CategoryID,
			&rule.AmountCents,
			&rule.Currency,
			&rule.IntervalUnit,
			&rule.IntervalCount,
			&rule.StartDate,
			&rule.EndDate,
			&rule.NextOccurrence,
			&rule.Status,
			&rule.IsSubscription,
			&rule.PaymentMethod,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recurring rule: %w", err)
		}
		rules = append(rules, &rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recurring rules: %w", err)
	}

	return rules, nil
}
