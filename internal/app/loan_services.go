package app

import (
	"context"
	"fmt"
	"time"

	"github.com/mikescor/local-library/internal/domain/catalog"
	"github.com/mikescor/local-library/internal/pkg/logger"
)

// loanService implements the LoanService interface
type loanService struct {
	instanceRepo catalog.BookInstanceRepository
	logger       logger.Logger
}

// NewLoanService creates a new loanService instance
func NewLoanService(instanceRepo catalog.BookInstanceRepository, logger logger.Logger) (catalog.LoanService, error) {
	return &loanService{
		instanceRepo: instanceRepo,
		logger:       logger,
	}, nil
}

// ListBorrowedBy retrieves one page of copies on loan to the given user,
// soonest due date first.
func (s *loanService) ListBorrowedBy(ctx context.Context, userID string, query *catalog.PageQuery) ([]*catalog.BookInstance, int64, error) {
	loans, err := s.instanceRepo.ListByBorrower(ctx, userID, catalog.StatusOnLoan, query)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.instanceRepo.CountByBorrower(ctx, userID, catalog.StatusOnLoan)
	if err != nil {
		return nil, 0, err
	}
	return loans, total, nil
}

// ListOnLoan retrieves one page of all on-loan copies across users.
func (s *loanService) ListOnLoan(ctx context.Context, query *catalog.PageQuery) ([]*catalog.BookInstance, int64, error) {
	loans, err := s.instanceRepo.ListByStatus(ctx, catalog.StatusOnLoan, query)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.instanceRepo.CountByStatus(ctx, catalog.StatusOnLoan)
	if err != nil {
		return nil, 0, err
	}
	return loans, total, nil
}

// GetCopyByID retrieves a single copy with its book.
func (s *loanService) GetCopyByID(ctx context.Context, copyID string) (*catalog.BookInstance, error) {
	return s.instanceRepo.GetByID(ctx, copyID)
}

// ListCopiesOf returns all copies of one book.
func (s *loanService) ListCopiesOf(ctx context.Context, bookID string) ([]*catalog.BookInstance, error) {
	return s.instanceRepo.ListByBook(ctx, bookID)
}

// Renew writes a new due date on a copy. The copy must exist and be on
// loan; borrower and status are never touched. The write is a single
// statement so concurrent renewals resolve in the store.
func (s *loanService) Renew(ctx context.Context, copyID string, dueBack time.Time) error {
	instance, err := s.instanceRepo.GetByID(ctx, copyID)
	if err != nil {
		return err
	}
	if instance.Status != catalog.StatusOnLoan {
		return fmt.Errorf("book instance %s is not on loan", copyID)
	}

	return s.instanceRepo.UpdateDueBack(ctx, copyID, dueBack)
}
