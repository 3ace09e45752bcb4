package customerrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/invodash/invodash/internal/domain"
	"github.com/invodash/invodash/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindAllFields(ctx context.Context) ([]domain.CustomerField, error) {
	query := `
        SELECT id, name
        FROM customers
        ORDER BY name ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get customers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var customers []domain.CustomerField
	for rows.Next() {
		var c domain.CustomerField
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			zap.L().Error("can't scan customer row", zap.Error(err))
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

// FindFilteredWithTotals keeps zero-invoice customers in the result:
// the join is LEFT, the aggregates coalesce to zero.
func (r *Repository) FindFilteredWithTotals(ctx context.Context, query string) ([]domain.CustomerWithTotals, error) {
	sql := `
        SELECT
            customers.id,
            customers.name,
            customers.email,
            customers.image_url,
            COUNT(invoices.id) AS total_invoices,
            COALESCE(SUM(CASE WHEN invoices.status = 'pending' THEN invoices.amount ELSE 0 END), 0) AS total_pending,
            COALESCE(SUM(CASE WHEN invoices.status = 'paid' THEN invoices.amount ELSE 0 END), 0) AS total_paid
        FROM customers
        LEFT JOIN invoices ON customers.id = invoices.customer_id
        WHERE
            customers.name ILIKE $1 OR
            customers.email ILIKE $1
        GROUP BY customers.id, customers.name, customers.email, customers.image_url
        ORDER BY customers.name ASC
    `
	rows, err := r.db.Query(ctx, sql, "%"+query+"%")
	if err != nil {
		zap.L().Error("can't get filtered customers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var customers []domain.CustomerWithTotals
	for rows.Next() {
		var c domain.CustomerWithTotals
		err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.ImageURL, &c.TotalInvoices, &c.TotalPending, &c.TotalPaid)
		if err != nil {
			zap.L().Error("can't scan customer totals row", zap.Error(err))
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *Repository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM customers").Scan(&count); err != nil {
		zap.L().Error("can't count customers", zap.Error(err))
		return 0, err
	}
	return count, nil
}
