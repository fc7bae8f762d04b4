package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mikescor/local-library/internal/domain/catalog"
	"github.com/mikescor/local-library/internal/pkg/logger"
)

// PoetryGenreNeedle is the substring counted on the summary page.
const PoetryGenreNeedle = "poem"

// summaryService implements the SummaryService interface
type summaryService struct {
	bookRepo     catalog.BookRepository
	authorRepo   catalog.AuthorRepository
	genreRepo    catalog.GenreRepository
	instanceRepo catalog.BookInstanceRepository
	logger       logger.Logger
}

// NewSummaryService creates a new summaryService instance
func NewSummaryService(
	bookRepo catalog.BookRepository,
	authorRepo catalog.AuthorRepository,
	genreRepo catalog.GenreRepository,
	instanceRepo catalog.BookInstanceRepository,
	logger logger.Logger,
) (catalog.SummaryService, error) {
	return &summaryService{
		bookRepo:     bookRepo,
		authorRepo:   authorRepo,
		genreRepo:    genreRepo,
		instanceRepo: instanceRepo,
		logger:       logger,
	}, nil
}

// Summarize returns the current catalog totals.
func (s *summaryService) Summarize(ctx context.Context) (*catalog.Summary, error) {
	summary := &catalog.Summary{}
	var err error

	if summary.Books, err = s.bookRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count books: %w", err)
	}
	if summary.Copies, err = s.instanceRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count copies: %w", err)
	}
	if summary.CopiesAvailable, err = s.instanceRepo.CountByStatus(ctx, catalog.StatusAvailable); err != nil {
		return nil, fmt.Errorf("failed to count available copies: %w", err)
	}
	if summary.Authors, err = s.authorRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count authors: %w", err)
	}
	if summary.Genres, err = s.genreRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count genres: %w", err)
	}
	if summary.PoetryBooks, err = s.bookRepo.CountByGenreNameContains(ctx, PoetryGenreNeedle); err != nil {
		return nil, fmt.Errorf("failed to count poetry books: %w", err)
	}

	return summary, nil
}

// bookService implements the BookService interface
type bookService struct {
	bookRepo  catalog.BookRepository
	genreRepo catalog.GenreRepository
	logger    logger.Logger
}

// NewBookService creates a new bookService instance
func NewBookService(bookRepo catalog.BookRepository, genreRepo catalog.GenreRepository, logger logger.Logger) (catalog.BookService, error) {
	return &bookService{
		bookRepo:  bookRepo,
		genreRepo: genreRepo,
		logger:    logger,
	}, nil
}

// List retrieves one page of books plus the total book count.
func (s *bookService) List(ctx context.Context, query *catalog.PageQuery) ([]*catalog.Book, int64, error) {
	books, err := s.bookRepo.List(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.bookRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return books, total, nil
}

// GetByID retrieves a single book with its author and genres.
func (s *bookService) GetByID(ctx context.Context, bookID string) (*catalog.Book, error) {
	return s.bookRepo.GetByID(ctx, bookID)
}

// Create persists a new book with the given genre associations.
func (s *bookService) Create(ctx context.Context, book *catalog.Book, genreIDs []string) (*catalog.Book, error) {
	if book.ID == "" {
		book.ID = uuid.New().String()
	}

	genres, err := s.genreRepo.GetByIDs(ctx, genreIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve genres: %w", err)
	}
	book.Genres = genres

	if err := s.bookRepo.Create(ctx, book); err != nil {
		return nil, err
	}
	return s.bookRepo.GetByID(ctx, book.ID)
}

// Update applies the mutable book fields: summary, language and genres.
func (s *bookService) Update(ctx context.Context, bookID string, changes catalog.BookChanges) (*catalog.Book, error) {
	book, err := s.bookRepo.GetByID(ctx, bookID)
	if err != nil {
		return nil, err
	}

	genres, err := s.genreRepo.GetByIDs(ctx, changes.GenreIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve genres: %w", err)
	}

	book.Summary = changes.Summary
	book.Language = changes.Language
	book.Genres = genres

	if err := s.bookRepo.UpdateByID(ctx, book); err != nil {
		return nil, err
	}
	return s.bookRepo.GetByID(ctx, bookID)
}

// DeleteByID removes a book.
func (s *bookService) DeleteByID(ctx context.Context, bookID string) error {
	return s.bookRepo.DeleteByID(ctx, bookID)
}

// ListByAuthor returns all books written by the given author.
func (s *bookService) ListByAuthor(ctx context.Context, authorID string) ([]*catalog.Book, error) {
	return s.bookRepo.ListByAuthor(ctx, authorID)
}

// ListGenres returns all genres for form choices.
func (s *bookService) ListGenres(ctx context.Context) ([]*catalog.Genre, error) {
	return s.genreRepo.List(ctx)
}

// authorService implements the AuthorService interface
type authorService struct {
	authorRepo catalog.AuthorRepository
	logger     logger.Logger
}

// NewAuthorService creates a new authorService instance
func NewAuthorService(authorRepo catalog.AuthorRepository, logger logger.Logger) (catalog.AuthorService, error) {
	return &authorService{
		authorRepo: authorRepo,
		logger:     logger,
	}, nil
}

func (s *authorService) List(ctx context.Context, query *catalog.PageQuery) ([]*catalog.Author, int64, error) {
	authors, err := s.authorRepo.List(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.authorRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return authors, total, nil
}

// ListAll returns every author, for form choices.
func (s *authorService) ListAll(ctx context.Context) ([]*catalog.Author, error) {
	return s.authorRepo.ListAll(ctx)
}

func (s *authorService) GetByID(ctx context.Context, authorID string) (*catalog.Author, error) {
	return s.authorRepo.GetByID(ctx, authorID)
}

func (s *authorService) Create(ctx context.Context, author *catalog.Author) (*catalog.Author, error) {
	if author.ID == "" {
		author.ID = uuid.New().String()
	}
	if err := s.authorRepo.Create(ctx, author); err != nil {
		return nil, err
	}
	return s.authorRepo.GetByID(ctx, author.ID)
}

func (s *authorService) Update(ctx context.Context, author *catalog.Author) (*catalog.Author, error) {
	if err := s.authorRepo.UpdateByID(ctx, author); err != nil {
		return nil, err
	}
	return s.authorRepo.GetByID(ctx, author.ID)
}

func (s *authorService) DeleteByID(ctx context.Context, authorID string) error {
	return s.authorRepo.DeleteByID(ctx, authorID)
}
