//go:build unit
// +build unit

package catalog

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikescor/local-library/internal/domain/accounts"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestAuthorValidate(t *testing.T) {
	tests := []struct {
		name    string
		author  *Author
		wantErr bool
	}{
		{
			name: "valid author",
			author: &Author{
				ID:          uuid.NewString(),
				FirstName:   "Charlotte",
				LastName:    "Bronte",
				DateOfBirth: date(1816, time.April, 21),
				DateOfDeath: date(1855, time.March, 31),
			},
			wantErr: false,
		},
		{
			name: "missing last name",
			author: &Author{
				ID:        uuid.NewString(),
				FirstName: "Charlotte",
			},
			wantErr: true,
		},
		{
			name: "death precedes birth",
			author: &Author{
				ID:          uuid.NewString(),
				FirstName:   "Charlotte",
				LastName:    "Bronte",
				DateOfBirth: date(1855, time.March, 31),
				DateOfDeath: date(1816, time.April, 21),
			},
			wantErr: true,
		},
		{
			name: "invalid id",
			author: &Author{
				ID:        "not-a-uuid",
				FirstName: "Charlotte",
				LastName:  "Bronte",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.author.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestAuthorName(t *testing.T) {
	author := &Author{FirstName: "Charlotte", LastName: "Bronte"}
	assert.Equal(t, "Bronte, Charlotte", author.Name())
}

func TestBookInstanceValidate_BorrowerInvariant(t *testing.T) {
	borrowerID := uuid.NewString()

	instance := &BookInstance{
		ID:         uuid.NewString(),
		BookID:     uuid.NewString(),
		Imprint:    "Penguin Classics, 2006",
		Status:     StatusAvailable,
		BorrowerID: &borrowerID,
	}
	require.Error(t, instance.Validate(), "borrower on an available copy must be rejected")

	instance.Status = StatusOnLoan
	instance.Borrower = &accounts.User{ID: borrowerID}
	require.NoError(t, instance.Validate())
}

func TestBookInstanceValidate_HydratedAssociationsIgnored(t *testing.T) {
	borrowerID := uuid.NewString()
	due := time.Now().AddDate(0, 0, 7)

	// Repositories hand back partially hydrated associations. Only the
	// copy's own fields count for validity.
	instance := &BookInstance{
		ID:         uuid.NewString(),
		BookID:     uuid.NewString(),
		Book:       &Book{Title: "Jane Eyre"},
		Imprint:    "Penguin Classics, 2006",
		Status:     StatusOnLoan,
		DueBack:    &due,
		BorrowerID: &borrowerID,
		Borrower:   &accounts.User{ID: borrowerID},
	}
	require.NoError(t, instance.Validate())
}

func TestBookValidate_HydratedAssociationsIgnored(t *testing.T) {
	book := &Book{
		ID:       uuid.NewString(),
		Title:    "Jane Eyre",
		Summary:  "An orphan makes her way.",
		Language: "English",
		AuthorID: uuid.NewString(),
		Author:   &Author{FirstName: "Charlotte"},
		Genres:   []Genre{{Name: "Gothic"}},
	}
	require.NoError(t, book.Validate())
}

func TestBookInstanceValidate_UnknownStatus(t *testing.T) {
	instance := &BookInstance{
		ID:      uuid.NewString(),
		BookID:  uuid.NewString(),
		Imprint: "Penguin Classics, 2006",
		Status:  LoanStatus("lost"),
	}
	require.Error(t, instance.Validate())
}

func TestBookInstanceIsOverdue(t *testing.T) {
	now := time.Now().UTC()
	todayUTC := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	past := todayUTC.AddDate(0, 0, -2)
	future := todayUTC.AddDate(0, 0, 2)
	yesterday := todayUTC.AddDate(0, 0, -1)

	tests := []struct {
		name     string
		instance *BookInstance
		want     bool
	}{
		{
			name:     "on loan and past due",
			instance: &BookInstance{Status: StatusOnLoan, DueBack: &past},
			want:     true,
		},
		{
			name:     "on loan but not yet due",
			instance: &BookInstance{Status: StatusOnLoan, DueBack: &future},
			want:     false,
		},
		{
			name:     "available copy never overdue",
			instance: &BookInstance{Status: StatusAvailable, DueBack: &past},
			want:     false,
		},
		{
			name:     "no due date",
			instance: &BookInstance{Status: StatusOnLoan},
			want:     false,
		},
		{
			name:     "due on the current UTC day",
			instance: &BookInstance{Status: StatusOnLoan, DueBack: &todayUTC},
			want:     false,
		},
		{
			name:     "due on the previous UTC day",
			instance: &BookInstance{Status: StatusOnLoan, DueBack: &yesterday},
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.instance.IsOverdue())
		})
	}
}

func TestPageQuery(t *testing.T) {
	q := NewPageQuery(3)
	require.NoError(t, q.Validate())
	assert.Equal(t, 20, q.Offset())
	assert.Equal(t, DefaultPageSize, q.PageSize)

	clamped := NewPageQuery(0)
	assert.Equal(t, 1, clamped.Page)
	assert.Equal(t, 0, clamped.Offset())
}
