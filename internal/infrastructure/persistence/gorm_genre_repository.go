package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mikescor/local-library/internal/domain/catalog"
	"github.com/mikescor/local-library/internal/infrastructure/persistence/models"
	"github.com/mikescor/local-library/internal/pkg/logger"
)

type gormGenreRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormGenreRepository creates a new GORM-based GenreRepository implementation
func NewGormGenreRepository(db *gorm.DB, logger logger.Logger) (catalog.GenreRepository, error) {
	return &gormGenreRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormGenreRepository) Create(ctx context.Context, genre *catalog.Genre) error {
	if err := genre.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.GenreModel{}
	model.FromDomain(genre)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create genre: %w", err)
	}

	r.logger.Info("Created genre ", genre.Name)
	return nil
}

func (r *gormGenreRepository) List(ctx context.Context) ([]*catalog.Genre, error) {
	var modelList []*models.GenreModel
	if err := r.db.WithContext(ctx).Order("name asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch genres: %w", err)
	}

	domainList := make([]*catalog.Genre, len(modelList))
	for i, model := range modelList {
		genre := model.ToDomain()
		domainList[i] = &genre
	}
	return domainList, nil
}

func (r *gormGenreRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.GenreModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count genres: %w", err)
	}
	return count, nil
}

func (r *gormGenreRepository) GetByIDs(ctx context.Context, genreIDs []string) ([]catalog.Genre, error) {
	if len(genreIDs) == 0 {
		return nil, nil
	}

	var modelList []*models.GenreModel
	if err := r.db.WithContext(ctx).Where("id IN ?", genreIDs).Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch genres: %w", err)
	}

	domainList := make([]catalog.Genre, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}
