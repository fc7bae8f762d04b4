package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/mikescor/local-library/internal/domain/catalog"
)

// Renewal policy: the form proposes today + DefaultRenewalWeeks and
// accepts anything from today up to RenewalWindowWeeks ahead.
const (
	DefaultRenewalWeeks = 3
	RenewalWindowWeeks  = 4
)

// DefaultDeathDate pre-fills the death-date field on the author
// creation form.
var DefaultDeathDate = time.Date(2016, time.December, 10, 0, 0, 0, 0, time.UTC)

// RenewBookForm carries the proposed due date of a loan renewal.
type RenewBookForm struct {
	RenewalDate time.Time `form:"renewal_date" time_format:"2006-01-02" time_utc:"1"`
}

// Validate checks the renewal policy bounds.
func (f *RenewBookForm) Validate() error {
	if f.RenewalDate.IsZero() {
		return fmt.Errorf("enter a renewal date")
	}
	today := startOfToday()
	if f.RenewalDate.Before(today) {
		return fmt.Errorf("invalid date - renewal in past")
	}
	if f.RenewalDate.After(today.AddDate(0, 0, RenewalWindowWeeks*7)) {
		return fmt.Errorf("invalid date - renewal more than %d weeks ahead", RenewalWindowWeeks)
	}
	return nil
}

// AuthorForm carries the full author field set.
type AuthorForm struct {
	FirstName   string    `form:"first_name" validate:"required,max=100"`
	LastName    string    `form:"last_name" validate:"required,max=100"`
	DateOfBirth time.Time `form:"date_of_birth" time_format:"2006-01-02" time_utc:"1"`
	DateOfDeath time.Time `form:"date_of_death" time_format:"2006-01-02" time_utc:"1"`
}

// Validate checks the author fields.
func (f *AuthorForm) Validate() error {
	if err := validateForm(f); err != nil {
		return err
	}
	if !f.DateOfBirth.IsZero() && !f.DateOfDeath.IsZero() && f.DateOfDeath.Before(f.DateOfBirth) {
		return fmt.Errorf("date of death precedes date of birth")
	}
	return nil
}

// ToDomain builds the author entity carried by the form. Unset dates
// map to nil.
func (f *AuthorForm) ToDomain() *catalog.Author {
	author := &catalog.Author{
		FirstName: f.FirstName,
		LastName:  f.LastName,
	}
	if !f.DateOfBirth.IsZero() {
		birth := f.DateOfBirth
		author.DateOfBirth = &birth
	}
	if !f.DateOfDeath.IsZero() {
		death := f.DateOfDeath
		author.DateOfDeath = &death
	}
	return author
}

// BookForm carries the full field set of book creation.
type BookForm struct {
	Title    string   `form:"title" validate:"required,max=200"`
	AuthorID string   `form:"author" validate:"required,uuid4"`
	Summary  string   `form:"summary" validate:"required,max=1000"`
	ISBN     string   `form:"isbn" validate:"omitempty,len=13"`
	Language string   `form:"language" validate:"required,max=50"`
	GenreIDs []string `form:"genre" validate:"omitempty,dive,uuid4"`
}

// Validate checks the book fields.
func (f *BookForm) Validate() error {
	return validateForm(f)
}

// BookUpdateForm carries the mutable book fields. Title and author are
// immutable through the update path.
type BookUpdateForm struct {
	Summary  string   `form:"summary" validate:"required,max=1000"`
	Language string   `form:"language" validate:"required,max=50"`
	GenreIDs []string `form:"genre" validate:"omitempty,dive,uuid4"`
}

// Validate checks the update fields.
func (f *BookUpdateForm) Validate() error {
	return validateForm(f)
}

// LoginForm carries the login credentials and the post-login target.
type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
	Next     string `form:"next"`
}

// Validate checks the login fields.
func (f *LoginForm) Validate() error {
	return validateForm(f)
}

func validateForm(v any) error {
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

// startOfToday truncates to the current UTC date, matching how the
// date-only form fields are parsed.
func startOfToday() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// ProposedRenewalDate returns the pre-filled renewal date.
func ProposedRenewalDate() time.Time {
	return startOfToday().AddDate(0, 0, DefaultRenewalWeeks*7)
}
