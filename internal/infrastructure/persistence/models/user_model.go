package models

import (
	"strings"

	"github.com/mikescor/local-library/internal/domain/accounts"
)

// UserModel is the GORM database model for library users. Permissions
// are stored as a space-separated string; the set is small and only
// ever matched in memory.
type UserModel struct {
	ID           string `gorm:"primaryKey;type:uuid"`
	Username     string `gorm:"not null;uniqueIndex;type:varchar(150)"`
	PasswordHash string `gorm:"not null;type:varchar(255)"`
	Permissions  string `gorm:"type:varchar(1000)"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *accounts.User {
	return &accounts.User{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Permissions:  strings.Fields(m.Permissions),
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *accounts.User) {
	m.ID = u.ID
	m.Username = u.Username
	m.PasswordHash = u.PasswordHash
	m.Permissions = strings.Join(u.Permissions, " ")
}
