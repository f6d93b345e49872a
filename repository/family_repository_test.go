package repository

import (
	"context"
	"testing"

	"cashflow/repository/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFamilyRepository_GetFamilyIDByUser(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewFamilyRepository(testDB.DB)
	ctx := context.Background()

	t.Run("member resolves to family", func(t *testing.T) {
		familyID := testutil.InsertTestFamily(t, testDB.DB, "Test Family")
		userID := testutil.InsertTestFamilyMember(t, testDB.DB, familyID)

		got, err := repo.GetFamilyIDByUser(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, familyID, got)
	})

	t.Run("non-member resolves to empty string", func(t *testing.T) {
		got, err := repo.GetFamilyIDByUser(ctx, uuid.NewString())
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
