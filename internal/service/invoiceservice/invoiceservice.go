package invoiceservice

import (
	"context"
	"math"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/invodash/invodash/internal/domain"
	"github.com/invodash/invodash/pkg/validate"
)

// ItemsPerPage is the fixed page size of the invoice table.
const ItemsPerPage = 6

// InvoicesPath is the listing view every successful mutation invalidates.
const InvoicesPath = "/dashboard/invoices"

type Repo interface {
	FindLatest(ctx context.Context, limit int) ([]domain.InvoiceRow, error)
	FindFiltered(ctx context.Context, query string, limit, offset int) ([]domain.InvoiceRow, error)
	CountFiltered(ctx context.Context, query string) (int64, error)
	FindByID(ctx context.Context, id int) (*domain.Invoice, error)
	Create(ctx context.Context, invoice *domain.Invoice) error
	Update(ctx context.Context, invoice *domain.Invoice) error
	Delete(ctx context.Context, id int) error
	CountAll(ctx context.Context) (int64, error)
	SumAmountByStatus(ctx context.Context) (*domain.StatusTotals, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) FetchFilteredInvoices(ctx context.Context, query string, page int) ([]domain.InvoiceRow, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * ItemsPerPage
	invoices, err := s.repo.FindFiltered(ctx, query, ItemsPerPage, offset)
	if err != nil {
		zap.L().Error("failed to fetch filtered invoices", zap.Error(err))
		return nil, domain.NewStorageError("fetchFilteredInvoices", "failed to fetch invoices")
	}
	return invoices, nil
}

// FetchInvoicesPages shares its filter predicate with FetchFilteredInvoices,
// so both always agree on what matches.
func (s *Service) FetchInvoicesPages(ctx context.Context, query string) (int, error) {
	count, err := s.repo.CountFiltered(ctx, query)
	if err != nil {
		zap.L().Error("failed to count filtered invoices", zap.Error(err))
		return 0, domain.NewStorageError("fetchInvoicesPages", "failed to fetch total number of invoices")
	}
	return int(math.Ceil(float64(count) / float64(ItemsPerPage))), nil
}

func (s *Service) FetchInvoiceByID(ctx context.Context, id int) (*domain.InvoiceForm, error) {
	invoice, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to fetch invoice", zap.Error(err))
		return nil, domain.NewStorageError("fetchInvoiceById", "failed to fetch invoice")
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	return &domain.InvoiceForm{
		ID:         strconv.Itoa(invoice.ID),
		CustomerID: strconv.Itoa(invoice.CustomerID),
		Amount:     float64(invoice.Amount) / 100,
		Status:     invoice.Status,
	}, nil
}

// CreateInvoice validates the raw form, stores the amount in cents and
// stamps the invoice with the current date. Validation failures
// propagate as-is and never reach the storage boundary.
func (s *Service) CreateInvoice(ctx context.Context, fields validate.InvoiceFormFields) (*domain.MutationResult, error) {
	input, err := validate.InvoiceInput(fields)
	if err != nil {
		return nil, err
	}

	invoice := &domain.Invoice{
		CustomerID: input.CustomerID,
		Amount:     toCents(input.Amount),
		Status:     input.Status,
		Date:       time.Now().UTC().Truncate(24 * time.Hour),
	}
	if err := s.repo.Create(ctx, invoice); err != nil {
		zap.L().Error("failed to create invoice", zap.Error(err))
		return nil, domain.NewStorageError("createInvoice", "failed to create invoice")
	}

	return &domain.MutationResult{
		Invalidated: []string{InvoicesPath},
		RedirectTo:  InvoicesPath,
	}, nil
}

// UpdateInvoiceByID applies the same validation as create but keeps the
// invoice's original date.
func (s *Service) UpdateInvoiceByID(ctx context.Context, id int, fields validate.InvoiceFormFields) (*domain.MutationResult, error) {
	input, err := validate.InvoiceInput(fields)
	if err != nil {
		return nil, err
	}

	invoice := &domain.Invoice{
		ID:         id,
		CustomerID: input.CustomerID,
		Amount:     toCents(input.Amount),
		Status:     input.Status,
	}
	if err := s.repo.Update(ctx, invoice); err != nil {
		zap.L().Error("failed to update invoice", zap.Error(err))
		return nil, domain.NewStorageError("updateInvoiceById", "failed to update invoice")
	}

	return &domain.MutationResult{
		Invalidated: []string{InvoicesPath},
		RedirectTo:  InvoicesPath,
	}, nil
}

// DeleteInvoiceByID invalidates the listing but issues no redirect: the
// caller is already on the list it just changed.
func (s *Service) DeleteInvoiceByID(ctx context.Context, id int) (*domain.MutationResult, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		zap.L().Error("failed to delete invoice", zap.Error(err))
		return nil, domain.NewStorageError("deleteInvoiceById", "failed to delete invoice")
	}

	return &domain.MutationResult{
		Invalidated: []string{InvoicesPath},
	}, nil
}

func toCents(major float64) int64 {
	return int64(math.Round(major * 100))
}
