package repository

import (
	"context"
	"testing"

	"cashflow/models"
	"cashflow/repository/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepository_GetBalances(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewAccountRepository(testDB.DB)
	ctx := context.Background()

	familyID := testutil.InsertTestFamily(t, testDB.DB, "Test Family")
	userID := testutil.InsertTestFamilyMember(t, testDB.DB, familyID)
	otherUserID := uuid.NewString()

	checkingID := testutil.InsertTestAccount(t, testDB.DB, userID, "", "Checking", 150000)
	savingsID := testutil.InsertTestAccount(t, testDB.DB, userID, "", "Savings", 500000)
	familyAccountID := testutil.InsertTestAccount(t, testDB.DB, "", familyID, "Household", 300000)
	testutil.InsertTestAccount(t, testDB.DB, otherUserID, "", "Someone else", 999999)

	t.Run("personal scope returns only the user's own accounts", func(t *testing.T) {
		balances, err := repo.GetBalances(ctx, models.ScopeFilter{
			Scope:  models.ScopePersonal,
			UserID: userID,
		})
		require.NoError(t, err)
		require.Len(t, balances, 2)

		assert.Equal(t, "Checking", balances[0].AccountName)
		assert.Equal(t, int64(150000), balances[0].BalanceCents)
		assert.Equal(t, models.ScopePersonal, balances[0].Scope)
		assert.Equal(t, "Savings", balances[1].AccountName)
	})

	t.Run("family scope returns family accounts", func(t *testing.T) {
		balances, err := repo.GetBalances(ctx, models.ScopeFilter{
			Scope:    models.ScopeFamily,
			UserID:   userID,
			FamilyID: familyID,
		})
		require.NoError(t, err)
		require.Len(t, balances, 1)

		assert.Equal(t, familyAccountID, balances[0].AccountID)
		assert.Equal(t, models.ScopeFamily, balances[0].Scope)
	})

	t.Run("combined scope returns personal and family accounts", func(t *testing.T) {
		balances, err := repo.GetBalances(ctx, models.ScopeFilter{
			UserID:   userID,
			FamilyID: familyID,
		})
		require.NoError(t, err)
		require.Len(t, balances, 3)
	})

	t.Run("combined scope without family narrows to personal", func(t *testing.T) {
		balances, err := repo.GetBalances(ctx, models.ScopeFilter{
			UserID: userID,
		})
		require.NoError(t, err)
		require.Len(t, balances, 2)
	})

	t.Run("account id filter", func(t *testing.T) {
		balances, err := repo.GetBalances(ctx, models.ScopeFilter{
			Scope:     models.ScopePersonal,
			UserID:    userID,
			AccountID: savingsID,
		})
		require.NoError(t, err)
		require.Len(t, balances, 1)
		assert.Equal(t, savingsID, balances[0].AccountID)
	})

	t.Run("account ids filter", func(t *testing.T) {
		balances, err := repo.GetBalances(ctx, models.ScopeFilter{
			Scope:      models.ScopePersonal,
			UserID:     userID,
			AccountIDs: []string{checkingID, savingsID},
		})
		require.NoError(t, err)
		require.Len(t, balances, 2)
	})

	t.Run("no matching accounts", func(t *testing.T) {
		balances, err := repo.GetBalances(ctx, models.ScopeFilter{
			Scope:  models.ScopePersonal,
			UserID: uuid.NewString(),
		})
		require.NoError(t, err)
		assert.Empty(t, balances)
	})
}
