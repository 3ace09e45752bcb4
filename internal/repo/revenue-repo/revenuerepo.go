package revenuerepo

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

func (r *Repository) FindAll(ctx context.Context) ([]domain.Revenue, error) {
	query := `
        SELECT month, revenue
        FROM revenue
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get revenue", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var revenue []domain.Revenue
	for rows.Next() {
		var rev domain.Revenue
		if err := rows.Scan(&rev.Month, &rev.Revenue); err != nil {
			zap.L().Error("can't scan revenue row", zap.Error(err))
			return nil, err
		}
		revenue = append(revenue, rev)
	}
	return revenue, rows.Err()
}
