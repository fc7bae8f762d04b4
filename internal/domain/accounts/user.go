// Package accounts holds the user entity and the permission vocabulary
// used to gate librarian-only catalog operations.
package accounts

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Permission strings guarding librarian actions. Plain authentication is
// not enough for any of these; they are granted per user.
const (
	PermCanMarkReturned = "catalog.can_mark_returned"
	PermAddAuthor       = "catalog.add_author"
	PermChangeAuthor    = "catalog.change_author"
	PermDeleteAuthor    = "catalog.delete_author"
	PermAddBook         = "catalog.add_book"
	PermChangeBook      = "catalog.change_book"
	PermDeleteBook      = "catalog.delete_book"
)

// LibrarianPermissions is the full grant set assigned to librarian users.
var LibrarianPermissions = []string{
	PermCanMarkReturned,
	PermAddAuthor,
	PermChangeAuthor,
	PermDeleteAuthor,
	PermAddBook,
	PermChangeBook,
	PermDeleteBook,
}

// User is a library member or librarian.
type User struct {
	ID           string `validate:"required,uuid4"`
	Username     string `validate:"required,min=3,max=150"`
	PasswordHash string `validate:"required"`
	Permissions  []string
}

// HasPermission reports whether the user holds the given permission string.
func (u *User) HasPermission(perm string) bool {
	for _, p := range u.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}

// Validate checks the user fields.
func (u *User) Validate() error {
	validate := validator.New()

	err := validate.Struct(u)
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
