package customerservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/invodash/invodash/internal/domain"
	"github.com/invodash/invodash/pkg/currency"
)

type Repo interface {
	FindAllFields(ctx context.Context) ([]domain.CustomerField, error)
	FindFilteredWithTotals(ctx context.Context, query string) ([]domain.CustomerWithTotals, error)
	CountAll(ctx context.Context) (int64, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// FetchCustomers returns id/name pairs for selection inputs, ordered by name.
func (s *Service) FetchCustomers(ctx context.Context) ([]domain.CustomerField, error) {
	customers, err := s.repo.FindAllFields(ctx)
	if err != nil {
		zap.L().Error("failed to fetch customers", zap.Error(err))
		return nil, domain.NewStorageError("fetchCustomers", "failed to fetch all customers")
	}
	return customers, nil
}

func (s *Service) FetchFilteredCustomers(ctx context.Context, query string) ([]domain.CustomerSummary, error) {
	rows, err := s.repo.FindFilteredWithTotals(ctx, query)
	if err != nil {
		zap.L().Error("failed to fetch filtered customers", zap.Error(err))
		return nil, domain.NewStorageError("fetchFilteredCustomers", "failed to fetch customer table")
	}

	customers := make([]domain.CustomerSummary, 0, len(rows))
	for _, row := range rows {
		customers = append(customers, domain.CustomerSummary{
			ID:            row.ID,
			Name:          row.Name,
			Email:         row.Email,
			ImageURL:      row.ImageURL,
			TotalInvoices: row.TotalInvoices,
			TotalPending:  currency.Format(row.TotalPending),
			TotalPaid:     currency.Format(row.TotalPaid),
		})
	}
	return customers, nil
}
