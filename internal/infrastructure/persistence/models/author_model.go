package models

import (
	"time"

	"github.com/mikescor/local-library/internal/domain/catalog"
)

// AuthorModel is the GORM database model for authors.
type AuthorModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	FirstName   string `gorm:"not null;type:varchar(100)"`
	LastName    string `gorm:"not null;index;type:varchar(100)"`
	DateOfBirth *time.Time
	DateOfDeath *time.Time
}

// TableName specifies the table name for GORM
func (AuthorModel) TableName() string {
	return "authors"
}

// ToDomain converts GORM model to domain entity
func (m *AuthorModel) ToDomain() *catalog.Author {
	return &catalog.Author{
		ID:          m.ID,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		DateOfBirth: m.DateOfBirth,
		DateOfDeath: m.DateOfDeath,
	}
}

// FromDomain converts domain entity to GORM model
func (m *AuthorModel) FromDomain(a *catalog.Author) {
	m.ID = a.ID
	m.FirstName = a.FirstName
	m.LastName = a.LastName
	m.DateOfBirth = a.DateOfBirth
	m.DateOfDeath = a.DateOfDeath
}
