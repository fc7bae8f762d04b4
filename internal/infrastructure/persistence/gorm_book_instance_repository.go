package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/mikescor/local-library/internal/domain/catalog"
	"github.com/mikescor/local-library/internal/infrastructure/persistence/models"
	"github.com/mikescor/local-library/internal/pkg/logger"
)

type gormBookInstanceRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormBookInstanceRepository creates a new GORM-based BookInstanceRepository implementation
func NewGormBookInstanceRepository(db *gorm.DB, logger logger.Logger) (catalog.BookInstanceRepository, error) {
	return &gormBookInstanceRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormBookInstanceRepository) Create(ctx context.Context, instance *catalog.BookInstance) error {
	if err := instance.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.BookInstanceModel{}
	model.FromDomain(instance)

	if err := r.db.WithContext(ctx).Omit("Book", "Borrower").Create(model).Error; err != nil {
		return fmt.Errorf("failed to create book instance: %w", err)
	}

	r.logger.Info("Created book instance with id ", instance.ID)
	return nil
}

func (r *gormBookInstanceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.BookInstanceModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count book instances: %w", err)
	}
	return count, nil
}

func (r *gormBookInstanceRepository) CountByStatus(ctx context.Context, status catalog.LoanStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.BookInstanceModel{}).
		Where("status = ?", string(status)).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count book instances by status: %w", err)
	}
	return count, nil
}

func (r *gormBookInstanceRepository) CountByBorrower(ctx context.Context, userID string, status catalog.LoanStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.BookInstanceModel{}).
		Where("borrower_id = ? AND status = ?", userID, string(status)).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count book instances by borrower: %w", err)
	}
	return count, nil
}

func (r *gormBookInstanceRepository) ListByBook(ctx context.Context, bookID string) ([]*catalog.BookInstance, error) {
	var modelList []*models.BookInstanceModel
	err := r.db.WithContext(ctx).
		Where("book_id = ?", bookID).
		Order("imprint asc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch book instances by book: %w", err)
	}
	return toDomainInstances(modelList), nil
}

func (r *gormBookInstanceRepository) ListByBorrower(ctx context.Context, userID string, status catalog.LoanStatus, query *catalog.PageQuery) ([]*catalog.BookInstance, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.BookInstanceModel
	err := r.db.WithContext(ctx).
		Preload("Book").
		Where("borrower_id = ? AND status = ?", userID, string(status)).
		Order("due_back asc").
		Limit(query.PageSize).
		Offset(query.Offset()).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch book instances by borrower: %w", err)
	}

	return toDomainInstances(modelList), nil
}

func (r *gormBookInstanceRepository) ListByStatus(ctx context.Context, status catalog.LoanStatus, query *catalog.PageQuery) ([]*catalog.BookInstance, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.BookInstanceModel
	err := r.db.WithContext(ctx).
		Preload("Book").
		Preload("Borrower").
		Where("status = ?", string(status)).
		Order("due_back asc").
		Limit(query.PageSize).
		Offset(query.Offset()).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch book instances by status: %w", err)
	}

	return toDomainInstances(modelList), nil
}

func (r *gormBookInstanceRepository) GetByID(ctx context.Context, copyID string) (*catalog.BookInstance, error) {
	var model models.BookInstanceModel
	err := r.db.WithContext(ctx).
		Preload("Book").
		Preload("Borrower").
		Where("id = ?", copyID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("book instance %s: %w", copyID, catalog.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch book instance: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormBookInstanceRepository) UpdateDueBack(ctx context.Context, copyID string, dueBack time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&models.BookInstanceModel{}).
		Where("id = ?", copyID).
		Update("due_back", dueBack)
	if result.Error != nil {
		return fmt.Errorf("failed to update due date: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("book instance %s: %w", copyID, catalog.ErrNotFound)
	}

	r.logger.Info("Renewed book instance ", copyID, " until ", dueBack.Format("2006-01-02"))
	return nil
}

func (r *gormBookInstanceRepository) DeleteByID(ctx context.Context, copyID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", copyID).Delete(&models.BookInstanceModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete book instance: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("book instance %s: %w", copyID, catalog.ErrNotFound)
	}

	r.logger.Info("Deleted book instance with id ", copyID)
	return nil
}

func toDomainInstances(modelList []*models.BookInstanceModel) []*catalog.BookInstance {
	domainList := make([]*catalog.BookInstance, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList
}
