package catalog

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/mikescor/local-library/internal/domain/accounts"
)

// Author is a book author with optional life dates.
type Author struct {
	ID          string `validate:"required,uuid4"`
	FirstName   string `validate:"required,max=100"`
	LastName    string `validate:"required,max=100"`
	DateOfBirth *time.Time
	DateOfDeath *time.Time
}

// Name returns the display name in "Last, First" form.
func (a *Author) Name() string {
	return fmt.Sprintf("%s, %s", a.LastName, a.FirstName)
}

// Validate checks the author fields, including date ordering when both
// life dates are set.
func (a *Author) Validate() error {
	if err := validateStruct(a); err != nil {
		return err
	}
	if a.DateOfBirth != nil && a.DateOfDeath != nil && a.DateOfDeath.Before(*a.DateOfBirth) {
		return fmt.Errorf("validation failed: date of death precedes date of birth")
	}
	return nil
}

// Genre classifies books, e.g. science fiction or poetry.
type Genre struct {
	ID   string `validate:"required,uuid4"`
	Name string `validate:"required,max=200"`
}

// Validate checks the genre fields.
func (g *Genre) Validate() error {
	return validateStruct(g)
}

// Book is a catalog title. Physical copies are modeled as BookInstance.
type Book struct {
	ID       string  `validate:"required,uuid4"`
	Title    string  `validate:"required,max=200"`
	Summary  string  `validate:"required,max=1000"`
	ISBN     string  `validate:"omitempty,len=13"`
	Language string  `validate:"required,max=50"`
	AuthorID string  `validate:"required,uuid4"`
	Author   *Author `validate:"-"`
	Genres   []Genre `validate:"-"`
}

// Validate checks the book fields.
func (b *Book) Validate() error {
	return validateStruct(b)
}

// BookInstance is a single loanable copy of a book. Borrower and DueBack
// are only meaningful while the status denotes an active loan.
type BookInstance struct {
	ID         string         `validate:"required,uuid4"`
	BookID     string         `validate:"required,uuid4"`
	Book       *Book          `validate:"-"`
	Imprint    string         `validate:"required,max=200"`
	Status     LoanStatus
	DueBack    *time.Time
	BorrowerID *string
	Borrower   *accounts.User `validate:"-"`
}

// Validate checks the instance fields and the loan invariant: a borrower
// may only be set while the copy is on loan.
func (bi *BookInstance) Validate() error {
	if err := validateStruct(bi); err != nil {
		return err
	}
	if !IsValidLoanStatus(bi.Status) {
		return fmt.Errorf("validation failed: unknown loan status %q", bi.Status)
	}
	if bi.BorrowerID != nil && bi.Status != StatusOnLoan {
		return fmt.Errorf("validation failed: borrower set while status is %q", bi.Status)
	}
	return nil
}

// IsOverdue reports whether an on-loan copy is past its due date.
func (bi *BookInstance) IsOverdue() bool {
	if bi.Status != StatusOnLoan || bi.DueBack == nil {
		return false
	}
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return bi.DueBack.Before(today)
}

// Summary aggregates the counts shown on the catalog home page.
type Summary struct {
	Books           int64
	Copies          int64
	CopiesAvailable int64
	Authors         int64
	Genres          int64
	PoetryBooks     int64
}

func validateStruct(v any) error {
	validate := validator.New()

	err := validate.Struct(v)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}
	return nil
}
