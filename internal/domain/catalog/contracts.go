package catalog

import (
	"context"
	"time"
)

// SummaryService computes the aggregate counts for the home page.
type SummaryService interface {
	// Summarize returns the current catalog totals. All counts are zero
	// on an empty store.
	Summarize(ctx context.Context) (*Summary, error)
}

// BookService defines catalog operations on book titles.
type BookService interface {
	// List retrieves one page of books plus the total book count.
	List(ctx context.Context, query *PageQuery) ([]*Book, int64, error)

	// GetByID retrieves a single book with its author and genres.
	// It returns ErrNotFound when the ID is unknown.
	GetByID(ctx context.Context, bookID string) (*Book, error)

	// Create persists a new book with the given genre associations.
	Create(ctx context.Context, book *Book, genreIDs []string) (*Book, error)

	// Update applies the mutable book fields. Title and author are
	// immutable through this path.
	Update(ctx context.Context, bookID string, changes BookChanges) (*Book, error)

	// DeleteByID removes a book. It returns ErrNotFound when the ID is
	// already gone, so repeated deletes stay safe.
	DeleteByID(ctx context.Context, bookID string) error

	// ListByAuthor returns all books written by the given author.
	ListByAuthor(ctx context.Context, authorID string) ([]*Book, error)

	// ListGenres returns all genres for form choices.
	ListGenres(ctx context.Context) ([]*Genre, error)
}

// BookChanges carries the fields a book update may touch.
type BookChanges struct {
	Summary  string
	Language string
	GenreIDs []string
}

// AuthorService defines catalog operations on authors.
type AuthorService interface {
	List(ctx context.Context, query *PageQuery) ([]*Author, int64, error)
	// ListAll returns every author, for form choices.
	ListAll(ctx context.Context) ([]*Author, error)
	GetByID(ctx context.Context, authorID string) (*Author, error)
	Create(ctx context.Context, author *Author) (*Author, error)
	Update(ctx context.Context, author *Author) (*Author, error)
	DeleteByID(ctx context.Context, authorID string) error
}

// LoanService defines operations on loaned book copies.
type LoanService interface {
	// ListBorrowedBy retrieves one page of copies currently on loan to
	// the given user, soonest due date first, plus the total.
	ListBorrowedBy(ctx context.Context, userID string, query *PageQuery) ([]*BookInstance, int64, error)

	// ListOnLoan retrieves one page of all on-loan copies across users,
	// soonest due date first, plus the total.
	ListOnLoan(ctx context.Context, query *PageQuery) ([]*BookInstance, int64, error)

	// GetCopyByID retrieves a single copy with its book.
	// It returns ErrNotFound when the ID is unknown.
	GetCopyByID(ctx context.Context, copyID string) (*BookInstance, error)

	// ListCopiesOf returns all copies of one book, for the detail page.
	ListCopiesOf(ctx context.Context, bookID string) ([]*BookInstance, error)

	// Renew writes a new due date on an on-loan copy without touching
	// its borrower or status.
	Renew(ctx context.Context, copyID string, dueBack time.Time) error
}

// AuthorRepository defines the interface for author persistence.
type AuthorRepository interface {
	Create(ctx context.Context, author *Author) error
	List(ctx context.Context, query *PageQuery) ([]*Author, error)
	ListAll(ctx context.Context) ([]*Author, error)
	Count(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, authorID string) (*Author, error)
	UpdateByID(ctx context.Context, author *Author) error
	DeleteByID(ctx context.Context, authorID string) error
}

// BookRepository defines the interface for book persistence.
type BookRepository interface {
	Create(ctx context.Context, book *Book) error
	List(ctx context.Context, query *PageQuery) ([]*Book, error)
	ListByAuthor(ctx context.Context, authorID string) ([]*Book, error)
	Count(ctx context.Context) (int64, error)
	// CountByGenreNameContains counts distinct books having at least one
	// genre whose name contains substr, case-insensitively.
	CountByGenreNameContains(ctx context.Context, substr string) (int64, error)
	GetByID(ctx context.Context, bookID string) (*Book, error)
	UpdateByID(ctx context.Context, book *Book) error
	DeleteByID(ctx context.Context, bookID string) error
}

// GenreRepository defines the interface for genre persistence.
type GenreRepository interface {
	Create(ctx context.Context, genre *Genre) error
	List(ctx context.Context) ([]*Genre, error)
	Count(ctx context.Context) (int64, error)
	GetByIDs(ctx context.Context, genreIDs []string) ([]Genre, error)
}

// BookInstanceRepository defines the interface for book copy persistence.
type BookInstanceRepository interface {
	Create(ctx context.Context, instance *BookInstance) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status LoanStatus) (int64, error)
	CountByBorrower(ctx context.Context, userID string, status LoanStatus) (int64, error)
	ListByBook(ctx context.Context, bookID string) ([]*BookInstance, error)
	ListByBorrower(ctx context.Context, userID string, status LoanStatus, query *PageQuery) ([]*BookInstance, error)
	ListByStatus(ctx context.Context, status LoanStatus, query *PageQuery) ([]*BookInstance, error)
	GetByID(ctx context.Context, copyID string) (*BookInstance, error)
	// UpdateDueBack writes only the due date of a copy in a single
	// statement, leaving concurrency to the store.
	UpdateDueBack(ctx context.Context, copyID string, dueBack time.Time) error
	DeleteByID(ctx context.Context, copyID string) error
}
