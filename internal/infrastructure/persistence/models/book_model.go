package models

import (
	"github.com/mikescor/local-library/internal/domain/catalog"
)

// BookModel is the GORM database model for book titles.
type BookModel struct {
	ID       string `gorm:"primaryKey;type:uuid"`
	Title    string `gorm:"not null;index;type:varchar(200)"`
	Summary  string `gorm:"not null;type:varchar(1000)"`
	ISBN     string `gorm:"type:varchar(13)"`
	Language string `gorm:"not null;type:varchar(50)"`
	AuthorID string `gorm:"not null;index;type:uuid"`

	Author AuthorModel  `gorm:"foreignKey:AuthorID"`
	Genres []GenreModel `gorm:"many2many:book_genres;joinForeignKey:BookID;joinReferences:GenreID"`
}

// TableName specifies the table name for GORM
func (BookModel) TableName() string {
	return "books"
}

// ToDomain converts GORM model to domain entity
func (m *BookModel) ToDomain() *catalog.Book {
	book := &catalog.Book{
		ID:       m.ID,
		Title:    m.Title,
		Summary:  m.Summary,
		ISBN:     m.ISBN,
		Language: m.Language,
		AuthorID: m.AuthorID,
	}
	if m.Author.ID != "" {
		book.Author = m.Author.ToDomain()
	}
	for i := range m.Genres {
		book.Genres = append(book.Genres, m.Genres[i].ToDomain())
	}
	return book
}

// FromDomain converts domain entity to GORM model. Genre associations
// are set separately by the repository.
func (m *BookModel) FromDomain(b *catalog.Book) {
	m.ID = b.ID
	m.Title = b.Title
	m.Summary = b.Summary
	m.ISBN = b.ISBN
	m.Language = b.Language
	m.AuthorID = b.AuthorID
}
