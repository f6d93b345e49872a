package repository

import (
	"context"
	"errors"
	"fmt"

	"cashflow/database"

	"github.com/jackc/pgx/v5"
)

// FamilyRepository implements the service.FamilyRepository interface
type FamilyRepository struct {
	q queryable
}

// NewFamilyRepository creates a new family repository
func NewFamilyRepository(db *database.DB) *FamilyRepository {
	return &FamilyRepository{q: db.Pool}
}

// GetFamilyIDByUser returns the ID of the family the user belongs to, or an
// empty string if the user is not a family member
func (r *FamilyRepository) GetFamilyIDByUser(ctx context.Context, userID string) (string, error) {
	query := `
		SELECT family_id
		FROM family_members
		WHERE user_id = $1
	`

	var familyID string
	err := r.q.QueryRow(ctx, query, userID).Scan(&familyID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get family for user %s: %w", userID, err)
	}

	return familyID, nil
}
