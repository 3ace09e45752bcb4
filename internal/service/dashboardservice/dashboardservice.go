package dashboardservice

import (
	"context"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/invodash/invodash/internal/domain"
	"github.com/invodash/invodash/pkg/currency"
)

const latestInvoicesLimit = 5

type InvoiceRepo interface {
	FindLatest(ctx context.Context, limit int) ([]domain.InvoiceRow, error)
	CountAll(ctx context.Context) (int64, error)
	SumAmountByStatus(ctx context.Context) (*domain.StatusTotals, error)
}

type CustomerRepo interface {
	CountAll(ctx context.Context) (int64, error)
}

type RevenueRepo interface {
	FindAll(ctx context.Context) ([]domain.Revenue, error)
}

type Service struct {
	invoiceRepo  InvoiceRepo
	customerRepo CustomerRepo
	revenueRepo  RevenueRepo
}

func New(invoiceRepo InvoiceRepo, customerRepo CustomerRepo, revenueRepo RevenueRepo) *Service {
	return &Service{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		revenueRepo:  revenueRepo,
	}
}

func (s *Service) FetchRevenue(ctx context.Context) ([]domain.Revenue, error) {
	revenue, err := s.revenueRepo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to fetch revenue", zap.Error(err))
		return nil, domain.NewStorageError("fetchRevenue", "failed to fetch revenue data")
	}
	return revenue, nil
}

func (s *Service) FetchLatestInvoices(ctx context.Context) ([]domain.LatestInvoice, error) {
	rows, err := s.invoiceRepo.FindLatest(ctx, latestInvoicesLimit)
	if err != nil {
		zap.L().Error("failed to fetch latest invoices", zap.Error(err))
		return nil, domain.NewStorageError("fetchLatestInvoices", "failed to fetch the latest invoices")
	}

	invoices := make([]domain.LatestInvoice, 0, len(rows))
	for _, row := range rows {
		invoices = append(invoices, domain.LatestInvoice{
			ID:       strconv.Itoa(row.ID),
			Amount:   currency.Format(row.Amount),
			Name:     row.Name,
			Email:    row.Email,
			ImageURL: row.ImageURL,
		})
	}
	return invoices, nil
}

// FetchCardData issues its three aggregate queries concurrently and
// joins on all of them, so overall latency is the slowest query, not
// the sum.
func (s *Service) FetchCardData(ctx context.Context) (*domain.CardData, error) {
	var (
		invoiceCount  int64
		customerCount int64
		totals        *domain.StatusTotals
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		invoiceCount, err = s.invoiceRepo.CountAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		customerCount, err = s.customerRepo.CountAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		totals, err = s.invoiceRepo.SumAmountByStatus(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		zap.L().Error("failed to fetch card data", zap.Error(err))
		return nil, domain.NewStorageError("fetchCardData", "failed to fetch card data")
	}

	return &domain.CardData{
		NumberOfInvoices:  invoiceCount,
		NumberOfCustomers: customerCount,
		TotalPaid:         currency.Format(totals.Paid),
		TotalPending:      currency.Format(totals.Pending),
	}, nil
}
