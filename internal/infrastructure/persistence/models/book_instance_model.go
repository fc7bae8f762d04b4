package models

import (
	"time"

	"github.com/mikescor/local-library/internal/domain/catalog"
)

// BookInstanceModel is the GORM database model for loanable book copies.
type BookInstanceModel struct {
	ID         string `gorm:"primaryKey;type:uuid"`
	BookID     string `gorm:"not null;index;type:uuid"`
	Imprint    string `gorm:"not null;type:varchar(200)"`
	Status     string `gorm:"not null;index;type:varchar(20)"`
	DueBack    *time.Time
	BorrowerID *string `gorm:"index;type:uuid"`

	Book     BookModel  `gorm:"foreignKey:BookID"`
	Borrower *UserModel `gorm:"foreignKey:BorrowerID"`
}

// TableName specifies the table name for GORM
func (BookInstanceModel) TableName() string {
	return "book_instances"
}

// ToDomain converts GORM model to domain entity
func (m *BookInstanceModel) ToDomain() *catalog.BookInstance {
	instance := &catalog.BookInstance{
		ID:         m.ID,
		BookID:     m.BookID,
		Imprint:    m.Imprint,
		Status:     catalog.LoanStatus(m.Status),
		DueBack:    m.DueBack,
		BorrowerID: m.BorrowerID,
	}
	if m.Book.ID != "" {
		instance.Book = m.Book.ToDomain()
	}
	if m.Borrower != nil {
		instance.Borrower = m.Borrower.ToDomain()
	}
	return instance
}

// FromDomain converts domain entity to GORM model
func (m *BookInstanceModel) FromDomain(bi *catalog.BookInstance) {
	m.ID = bi.ID
	m.BookID = bi.BookID
	m.Imprint = bi.Imprint
	m.Status = string(bi.Status)
	m.DueBack = bi.DueBack
	m.BorrowerID = bi.BorrowerID
}
