package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/mikescor/local-library/internal/domain/catalog"
	"github.com/mikescor/local-library/internal/infrastructure/persistence/models"
	"github.com/mikescor/local-library/internal/pkg/logger"
)

type gormBookRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormBookRepository creates a new GORM-based BookRepository implementation
func NewGormBookRepository(db *gorm.DB, logger logger.Logger) (catalog.BookRepository, error) {
	return &gormBookRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormBookRepository) Create(ctx context.Context, book *catalog.Book) error {
	if err := book.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.BookModel{}
	model.FromDomain(book)
	for i := range book.Genres {
		genreModel := models.GenreModel{}
		genreModel.FromDomain(&book.Genres[i])
		model.Genres = append(model.Genres, genreModel)
	}

	// Genres already exist; only the join rows are written for them.
	err := r.db.WithContext(ctx).
		Omit("Author").
		Omit("Genres.*").
		Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to create book: %w", err)
	}

	r.logger.Info("Created book with id ", book.ID)
	return nil
}

func (r *gormBookRepository) List(ctx context.Context, query *catalog.PageQuery) ([]*catalog.Book, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.BookModel
	err := r.db.WithContext(ctx).
		Preload("Author").
		Order("title asc").
		Limit(query.PageSize).
		Offset(query.Offset()).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch books: %w", err)
	}

	domainList := make([]*catalog.Book, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormBookRepository) ListByAuthor(ctx context.Context, authorID string) ([]*catalog.Book, error) {
	var modelList []*models.BookModel
	err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("title asc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch books by author: %w", err)
	}

	domainList := make([]*catalog.Book, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormBookRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.BookModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count books: %w", err)
	}
	return count, nil
}

func (r *gormBookRepository) CountByGenreNameContains(ctx context.Context, substr string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.BookModel{}).
		Joins("JOIN book_genres ON book_genres.book_id = books.id").
		Joins("JOIN genres ON genres.id = book_genres.genre_id").
		Where("LOWER(genres.name) LIKE ?", "%"+strings.ToLower(substr)+"%").
		Distinct("books.id").
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count books by genre name: %w", err)
	}
	return count, nil
}

func (r *gormBookRepository) GetByID(ctx context.Context, bookID string) (*catalog.Book, error) {
	var model models.BookModel
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Genres").
		Where("id = ?", bookID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("book %s: %w", bookID, catalog.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch book: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormBookRepository) UpdateByID(ctx context.Context, book *catalog.Book) error {
	if err := book.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.BookModel{}
	model.FromDomain(book)

	result := r.db.WithContext(ctx).Model(&models.BookModel{}).
		Where("id = ?", book.ID).
		Select("Summary", "Language").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update book: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("book %s: %w", book.ID, catalog.ErrNotFound)
	}

	genreModels := make([]models.GenreModel, len(book.Genres))
	for i := range book.Genres {
		genreModels[i].FromDomain(&book.Genres[i])
	}
	err := r.db.WithContext(ctx).
		Model(&models.BookModel{ID: book.ID}).
		Association("Genres").
		Replace(genreModels)
	if err != nil {
		return fmt.Errorf("failed to update book genres: %w", err)
	}

	r.logger.Info("Updated book with id ", book.ID)
	return nil
}

func (r *gormBookRepository) DeleteByID(ctx context.Context, bookID string) error {
	err := r.db.WithContext(ctx).
		Model(&models.BookModel{ID: bookID}).
		Association("Genres").
		Clear()
	if err != nil {
		return fmt.Errorf("failed to clear book genres: %w", err)
	}

	result := r.db.WithContext(ctx).Where("id = ?", bookID).Delete(&models.BookModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete book: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("book %s: %w", bookID, catalog.ErrNotFound)
	}

	r.logger.Info("Deleted book with id ", bookID)
	return nil
}
