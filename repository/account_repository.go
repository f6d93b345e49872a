package repository

import (
	"context"
	"fmt"
	"strings"

	"cashflow/database"
	"cashflow/models"
)

// AccountRepository implements the service.AccountRepository interface
type AccountRepository struct {
	q queryable
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *database.DB) *AccountRepository {
	return &AccountRepository{q: db.Pool}
}

// GetBalances returns current balances for accounts matching the filter.
// Rows are normalized at this boundary: scope is derived from family
// linkage and balances are integer minor units, so the engine never
// re-validates shape.
func (r *AccountRepository) GetBalances(ctx context.Context, filter models.ScopeFilter) ([]*models.AccountBalance, error) {
	var conditions []string
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	switch {
	case filter.IncludesPersonal() && filter.IncludesFamily():
		conditions = append(conditions, fmt.Sprintf("((a.user_id = %s AND a.family_id IS NULL) OR a.family_id = %s)",
			arg(filter.UserID), arg(filter.FamilyID)))
	case filter.IncludesFamily():
		conditions = append(conditions, fmt.Sprintf("a.family_id = %s", arg(filter.FamilyID)))
	default:
		conditions = append(conditions, fmt.Sprintf("a.user_id = %s AND a.family_id IS NULL", arg(filter.UserID)))
	}

	if filter.AccountID != "" {
		conditions = append(conditions, fmt.Sprintf("a.id = %s", arg(filter.AccountID)))
	}
	if len(filter.AccountIDs) > 0 {
		conditions = append(conditions, fmt.Sprintf("a.id = ANY(%s)", arg(filter.AccountIDs)))
	}

	query := fmt.Sprintf(`
		SELECT
			a.id,
			a.name,
			a.account_type,
			a.balance_cents,
			a.currency,
			a.family_id IS NOT NULL AS is_family
		FROM accounts a
		WHERE %s
		ORDER BY a.created_at, a.id
	`, strings.Join(conditions, " AND "))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get account balances: %w", err)
	}
	defer rows.Close()

	var balances []*models.AccountBalance
	for rows.Next() {
		var balance models.AccountBalance
		var isFamily bool
		err := rows.Scan(
			&balance.AccountID,
			&balance.AccountName,
			&balance.AccountType,
			&balance.BalanceCents,
			&balance.Currency,
			&isFamily,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account balance: %w", err)
		}
		balance.Scope = models.ScopePersonal
		if isFamily {
			balance.Scope = models.ScopeFamily
		}
		balances = append(balances, &balance)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate account balances: %w", err)
	}

	return balances, nil
}
