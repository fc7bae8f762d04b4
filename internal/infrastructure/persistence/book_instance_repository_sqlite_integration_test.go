//go:build integration
// +build integration

package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikescor/local-library/internal/domain/accounts"
	"github.com/mikescor/local-library/internal/domain/catalog"
)

func TestBookInstanceRepository_CountsByStatus(t *testing.T) {
	tc := SetupTestDB(t)
	ctx := context.Background()

	author := CreateTestAuthor(t, tc, "Counts")
	book := CreateTestBook(t, tc, "Counted", author)

	CreateTestInstance(t, tc, book, catalog.StatusAvailable)
	CreateTestInstance(t, tc, book, catalog.StatusAvailable)
	CreateTestInstance(t, tc, book, catalog.StatusMaintenance)
	borrower := CreateTestUser(t, tc, "borrower1")
	CreateTestLoan(t, tc, book, borrower.ID, time.Now().AddDate(0, 0, 7))

	total, err := tc.Instances.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)

	available, err := tc.Instances.CountByStatus(ctx, catalog.StatusAvailable)
	require.NoError(t, err)
	assert.Equal(t, int64(2), available)

	onLoan, err := tc.Instances.CountByStatus(ctx, catalog.StatusOnLoan)
	require.NoError(t, err)
	assert.Equal(t, int64(1), onLoan)
}

func TestBookInstanceRepository_ListByBorrowerOrdering(t *testing.T) {
	tc := SetupTestDB(t)
	ctx := context.Background()

	author := CreateTestAuthor(t, tc, "Lender")
	book := CreateTestBook(t, tc, "Lent Out", author)
	reader := CreateTestUser(t, tc, "reader")
	other := CreateTestUser(t, tc, "someone_else")

	late := CreateTestLoan(t, tc, book, reader.ID, time.Now().AddDate(0, 0, 21))
	soon := CreateTestLoan(t, tc, book, reader.ID, time.Now().AddDate(0, 0, 3))
	mid := CreateTestLoan(t, tc, book, reader.ID, time.Now().AddDate(0, 0, 10))
	CreateTestLoan(t, tc, book, other.ID, time.Now().AddDate(0, 0, 1))
	CreateTestInstance(t, tc, book, catalog.StatusAvailable)

	loans, err := tc.Instances.ListByBorrower(ctx, reader.ID, catalog.StatusOnLoan, catalog.NewPageQuery(1))
	require.NoError(t, err)
	require.Len(t, loans, 3, "only the requester's on-loan copies are returned")

	assert.Equal(t, soon.ID, loans[0].ID)
	assert.Equal(t, mid.ID, loans[1].ID)
	assert.Equal(t, late.ID, loans[2].ID)

	for _, loan := range loans {
		require.NotNil(t, loan.BorrowerID)
		assert.Equal(t, reader.ID, *loan.BorrowerID)
		assert.Equal(t, catalog.StatusOnLoan, loan.Status)
		require.NotNil(t, loan.Book)
		assert.Equal(t, "Lent Out", loan.Book.Title)
	}

	count, err := tc.Instances.CountByBorrower(ctx, reader.ID, catalog.StatusOnLoan)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestBookInstanceRepository_ListByStatusPreloadsBorrower(t *testing.T) {
	tc := SetupTestDB(t)
	ctx := context.Background()

	author := CreateTestAuthor(t, tc, "AllLoans")
	book := CreateTestBook(t, tc, "Borrowed Everywhere", author)
	reader := CreateTestUser(t, tc, "heavy_reader")
	CreateTestLoan(t, tc, book, reader.ID, time.Now().AddDate(0, 0, 5))

	loans, err := tc.Instances.ListByStatus(ctx, catalog.StatusOnLoan, catalog.NewPageQuery(1))
	require.NoError(t, err)
	require.Len(t, loans, 1)
	require.NotNil(t, loans[0].Borrower)
	assert.Equal(t, "heavy_reader", loans[0].Borrower.Username)
}

func TestBookInstanceRepository_UpdateDueBack(t *testing.T) {
	tc := SetupTestDB(t)
	ctx := context.Background()

	author := CreateTestAuthor(t, tc, "Renewal")
	book := CreateTestBook(t, tc, "Renewed", author)
	reader := CreateTestUser(t, tc, "renewer")
	loan := CreateTestLoan(t, tc, book, reader.ID, time.Now().AddDate(0, 0, 2))

	newDue := time.Date(2026, time.September, 18, 0, 0, 0, 0, time.UTC)
	require.NoError(t, tc.Instances.UpdateDueBack(ctx, loan.ID, newDue))

	got, err := tc.Instances.GetByID(ctx, loan.ID)
	require.NoError(t, err)
	require.NotNil(t, got.DueBack)
	assert.True(t, got.DueBack.Equal(newDue))
	// Renewal leaves borrower and status untouched.
	assert.Equal(t, catalog.StatusOnLoan, got.Status)
	require.NotNil(t, got.BorrowerID)
	assert.Equal(t, reader.ID, *got.BorrowerID)

	err = tc.Instances.UpdateDueBack(ctx, uuid.NewString(), newDue)
	assert.True(t, errors.Is(err, catalog.ErrNotFound))
}

func TestUserRepository_Roundtrip(t *testing.T) {
	tc := SetupTestDB(t)
	ctx := context.Background()

	user := CreateTestUser(t, tc, "librarian", accounts.PermCanMarkReturned, accounts.PermAddAuthor)

	byID, err := tc.Users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, byID.HasPermission(accounts.PermCanMarkReturned))
	assert.False(t, byID.HasPermission(accounts.PermDeleteBook))

	byName, err := tc.Users.GetByUsername(ctx, "librarian")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	_, err = tc.Users.GetByUsername(ctx, "nobody")
	assert.True(t, errors.Is(err, catalog.ErrNotFound))
}
