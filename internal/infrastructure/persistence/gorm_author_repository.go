package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mikescor/local-library/internal/domain/catalog"
	"github.com/mikescor/local-library/internal/infrastructure/persistence/models"
	"github.com/mikescor/local-library/internal/pkg/logger"
)

type gormAuthorRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormAuthorRepository creates a new GORM-based AuthorRepository implementation
func NewGormAuthorRepository(db *gorm.DB, logger logger.Logger) (catalog.AuthorRepository, error) {
	return &gormAuthorRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormAuthorRepository) Create(ctx context.Context, author *catalog.Author) error {
	if err := author.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.AuthorModel{}
	model.FromDomain(author)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create author: %w", err)
	}

	r.logger.Info("Created author with id ", author.ID)
	return nil
}

func (r *gormAuthorRepository) List(ctx context.Context, query *catalog.PageQuery) ([]*catalog.Author, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.AuthorModel
	err := r.db.WithContext(ctx).
		Order("last_name asc").
		Order("first_name asc").
		Limit(query.PageSize).
		Offset(query.Offset()).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch authors: %w", err)
	}

	domainList := make([]*catalog.Author, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormAuthorRepository) ListAll(ctx context.Context) ([]*catalog.Author, error) {
	var modelList []*models.AuthorModel
	err := r.db.WithContext(ctx).
		Order("last_name asc").
		Order("first_name asc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch authors: %w", err)
	}

	domainList := make([]*catalog.Author, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormAuthorRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.AuthorModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count authors: %w", err)
	}
	return count, nil
}

func (r *gormAuthorRepository) GetByID(ctx context.Context, authorID string) (*catalog.Author, error) {
	var model models.AuthorModel
	if err := r.db.WithContext(ctx).Where("id = ?", authorID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("author %s: %w", authorID, catalog.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch author: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormAuthorRepository) UpdateByID(ctx context.Context, author *catalog.Author) error {
	if err := author.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.AuthorModel{}
	model.FromDomain(author)

	result := r.db.WithContext(ctx).Model(&models.AuthorModel{}).
		Where("id = ?", author.ID).
		Select("FirstName", "LastName", "DateOfBirth", "DateOfDeath").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update author: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("author %s: %w", author.ID, catalog.ErrNotFound)
	}

	r.logger.Info("Updated author with id ", author.ID)
	return nil
}

func (r *gormAuthorRepository) DeleteByID(ctx context.Context, authorID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", authorID).Delete(&models.AuthorModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete author: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("author %s: %w", authorID, catalog.ErrNotFound)
	}

	r.logger.Info("Deleted author with id ", authorID)
	return nil
}
