//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mikescor/local-library/internal/domain/accounts"
	"github.com/mikescor/local-library/internal/domain/catalog"
	"github.com/mikescor/local-library/internal/infrastructure/persistence/models"
	"github.com/mikescor/local-library/internal/pkg/config"
	"github.com/mikescor/local-library/internal/pkg/logger"
)

// TestContext holds the test database and repositories
type TestContext struct {
	DB        *gorm.DB
	Authors   catalog.AuthorRepository
	Books     catalog.BookRepository
	Genres    catalog.GenreRepository
	Instances catalog.BookInstanceRepository
	Users     accounts.UserRepository
}

// SetupTestDB initializes an in-memory sqlite database with the full
// schema and all repositories, with automatic cleanup.
func SetupTestDB(t *testing.T) *TestContext {
	t.Helper()

	settings := config.DatabaseSettings{
		Type: config.SqliteDbType,
		DSN:  ":memory:",
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
	})

	err = db.AutoMigrate(models.All()...)
	require.NoError(t, err, "Failed to migrate schema")

	log := logger.NewConsoleLogger(config.LogLevelError)

	authorRepo, err := NewGormAuthorRepository(db, log)
	require.NoError(t, err)
	bookRepo, err := NewGormBookRepository(db, log)
	require.NoError(t, err)
	genreRepo, err := NewGormGenreRepository(db, log)
	require.NoError(t, err)
	instanceRepo, err := NewGormBookInstanceRepository(db, log)
	require.NoError(t, err)
	userRepo, err := NewGormUserRepository(db, log)
	require.NoError(t, err)

	return &TestContext{
		DB:        db,
		Authors:   authorRepo,
		Books:     bookRepo,
		Genres:    genreRepo,
		Instances: instanceRepo,
		Users:     userRepo,
	}
}

// CreateTestAuthor persists an author with default values
func CreateTestAuthor(t *testing.T, tc *TestContext, lastName string) *catalog.Author {
	t.Helper()

	author := &catalog.Author{
		ID:        uuid.NewString(),
		FirstName: "Test",
		LastName:  lastName,
	}
	require.NoError(t, tc.Authors.Create(context.Background(), author))
	return author
}

// CreateTestGenre persists a genre with the given name
func CreateTestGenre(t *testing.T, tc *TestContext, name string) *catalog.Genre {
	t.Helper()

	genre := &catalog.Genre{
		ID:   uuid.NewString(),
		Name: name,
	}
	require.NoError(t, tc.Genres.Create(context.Background(), genre))
	return genre
}

// CreateTestBook persists a book by the given author with the given genres
func CreateTestBook(t *testing.T, tc *TestContext, title string, author *catalog.Author, genres ...catalog.Genre) *catalog.Book {
	t.Helper()

	book := &catalog.Book{
		ID:       uuid.NewString(),
		Title:    title,
		Summary:  "A test summary for " + title,
		Language: "English",
		AuthorID: author.ID,
		Genres:   genres,
	}
	require.NoError(t, tc.Books.Create(context.Background(), book))
	return book
}

// CreateTestInstance persists a copy of the given book
func CreateTestInstance(t *testing.T, tc *TestContext, book *catalog.Book, status catalog.LoanStatus) *catalog.BookInstance {
	t.Helper()

	instance := &catalog.BookInstance{
		ID:      uuid.NewString(),
		BookID:  book.ID,
		Imprint: "Test Imprint, 2020",
		Status:  status,
	}
	require.NoError(t, tc.Instances.Create(context.Background(), instance))
	return instance
}

// CreateTestLoan persists an on-loan copy of the given book borrowed by
// the given user and due back at dueBack.
func CreateTestLoan(t *testing.T, tc *TestContext, book *catalog.Book, borrowerID string, dueBack time.Time) *catalog.BookInstance {
	t.Helper()

	instance := &catalog.BookInstance{
		ID:         uuid.NewString(),
		BookID:     book.ID,
		Imprint:    "Test Imprint, 2020",
		Status:     catalog.StatusOnLoan,
		DueBack:    &dueBack,
		BorrowerID: &borrowerID,
	}
	require.NoError(t, tc.Instances.Create(context.Background(), instance))
	return instance
}

// CreateTestUser persists a user with the given permissions
func CreateTestUser(t *testing.T, tc *TestContext, username string, permissions ...string) *accounts.User {
	t.Helper()

	user := &accounts.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		Permissions:  permissions,
	}
	require.NoError(t, tc.Users.Create(context.Background(), user))
	return user
}
