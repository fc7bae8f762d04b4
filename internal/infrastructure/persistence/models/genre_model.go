package models

import (
	"github.com/mikescor/local-library/internal/domain/catalog"
)

// GenreModel is the GORM database model for genres.
type GenreModel struct {
	ID   string `gorm:"primaryKey;type:uuid"`
	Name string `gorm:"not null;uniqueIndex;type:varchar(200)"`
}

// TableName specifies the table name for GORM
func (GenreModel) TableName() string {
	return "genres"
}

// ToDomain converts GORM model to domain entity
func (m *GenreModel) ToDomain() catalog.Genre {
	return catalog.Genre{
		ID:   m.ID,
		Name: m.Name,
	}
}

// FromDomain converts domain entity to GORM model
func (m *GenreModel) FromDomain(g *catalog.Genre) {
	m.ID = g.ID
	m.Name = g.Name
}
