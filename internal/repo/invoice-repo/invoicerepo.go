package invoicerepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/invodash/invodash/internal/domain"
	"github.com/invodash/invodash/internal/pg"
)

// invoiceFilter is the shared predicate of the filtered list and its
// count query. Amount and date are matched against their raw stored
// values, cast explicitly to text; matching is case-insensitive across
// the board.
const invoiceFilter = `
			customers.name ILIKE $1 OR
			customers.email ILIKE $1 OR
			invoices.amount::text ILIKE $1 OR
			invoices.date::text ILIKE $1 OR
			invoices.status::text ILIKE $1`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) FindLatest(ctx context.Context, limit int) ([]domain.InvoiceRow, error) {
	query := `
        SELECT invoices.id, invoices.amount, customers.name, customers.email, customers.image_url
        FROM invoices
        JOIN customers ON invoices.customer_id = customers.id
        ORDER BY invoices.date DESC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't get latest invoices", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var invoices []domain.InvoiceRow
	for rows.Next() {
		var inv domain.InvoiceRow
		if err := rows.Scan(&inv.ID, &inv.Amount, &inv.Name, &inv.Email, &inv.ImageURL); err != nil {
			zap.L().Error("can't scan latest invoice row", zap.Error(err))
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

func (r *Repository) FindFiltered(ctx context.Context, query string, limit, offset int) ([]domain.InvoiceRow, error) {
	sql := `
        SELECT invoices.id, invoices.amount, invoices.date, invoices.status,
               customers.name, customers.email, customers.image_url
        FROM invoices
        JOIN customers ON invoices.customer_id = customers.id
        WHERE` + invoiceFilter + `
        ORDER BY invoices.date DESC
        LIMIT $2 OFFSET $3
    `
	rows, err := r.db.Query(ctx, sql, pattern(query), limit, offset)
	if err != nil {
		zap.L().Error("can't get filtered invoices", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var invoices []domain.InvoiceRow
	for rows.Next() {
		var inv domain.InvoiceRow
		if err := rows.Scan(&inv.ID, &inv.Amount, &inv.Date, &inv.Status, &inv.Name, &inv.Email, &inv.ImageURL); err != nil {
			zap.L().Error("can't scan invoice row", zap.Error(err))
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

func (r *Repository) CountFiltered(ctx context.Context, query string) (int64, error) {
	sql := `
        SELECT COUNT(*)
        FROM invoices
        JOIN customers ON invoices.customer_id = customers.id
        WHERE` + invoiceFilter + `
    `
	var count int64
	if err := r.db.QueryRow(ctx, sql, pattern(query)).Scan(&count); err != nil {
		zap.L().Error("can't count filtered invoices", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Invoice, error) {
	query := `
        SELECT id, customer_id, amount, status
        FROM invoices
        WHERE id = $1
    `
	var inv domain.Invoice
	err := r.db.QueryRow(ctx, query, id).Scan(&inv.ID, &inv.CustomerID, &inv.Amount, &inv.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find invoice", zap.Error(err))
		return nil, err
	}
	return &inv, nil
}

func (r *Repository) Create(ctx context.Context, invoice *domain.Invoice) error {
	query := `
        INSERT INTO invoices (customer_id, amount, status, date)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, query, invoice.CustomerID, invoice.Amount, invoice.Status, invoice.Date).Scan(&invoice.ID)
		if err != nil {
			zap.L().Error("can't create invoice", zap.Error(err))
			return err
		}
		return nil
	})
}

func (r *Repository) Update(ctx context.Context, invoice *domain.Invoice) error {
	query := `
        UPDATE invoices
        SET customer_id = $1, amount = $2, status = $3
        WHERE id = $4
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, invoice.CustomerID, invoice.Amount, invoice.Status, invoice.ID)
		if err != nil {
			zap.L().Error("can't update invoice", zap.Error(err))
			return err
		}
		return nil
	})
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	query := `
        DELETE FROM invoices
        WHERE id = $1
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, id)
		if err != nil {
			zap.L().Error("can't delete invoice", zap.Error(err))
			return err
		}
		return nil
	})
}

func (r *Repository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM invoices").Scan(&count); err != nil {
		zap.L().Error("can't count invoices", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) SumAmountByStatus(ctx context.Context) (*domain.StatusTotals, error) {
	query := `
        SELECT
            COALESCE(SUM(CASE WHEN status = 'paid' THEN amount ELSE 0 END), 0) AS paid,
            COALESCE(SUM(CASE WHEN status = 'pending' THEN amount ELSE 0 END), 0) AS pending
        FROM invoices
    `
	var totals domain.StatusTotals
	if err := r.db.QueryRow(ctx, query).Scan(&totals.Paid, &totals.Pending); err != nil {
		zap.L().Error("can't sum invoice amounts by status", zap.Error(err))
		return nil, err
	}
	return &totals, nil
}

func pattern(query string) string {
	return "%" + query + "%"
}
