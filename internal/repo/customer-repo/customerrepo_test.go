package customerrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/invodash/invodash/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindAllFields(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.CustomerField
	}{
		{
			name: "Returns customers ordered by name",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "name"}).
					AddRow(3, "Amy Burns").
					AddRow(1, "Lee Robinson")
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, name
        FROM customers
        ORDER BY name ASC`)).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: []domain.CustomerField{
				{ID: 3, Name: "Amy Burns"},
				{ID: 1, Name: "Lee Robinson"},
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, name
        FROM customers
        ORDER BY name ASC`)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindAllFields(context.Background())

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_FindFilteredWithTotals(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		query     string
		mockSetup func()
		expectErr bool
		result    []domain.CustomerWithTotals
	}{
		{
			name:  "Zero-invoice customer survives the left join",
			query: "",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "name", "email", "image_url", "total_invoices", "total_pending", "total_paid"}).
					AddRow(3, "Amy Burns", "amy@burns.com", "/customers/amy-burns.png", int64(4), int64(50), int64(100)).
					AddRow(5, "Zoe Newcomer", "zoe@newcomer.com", "/customers/zoe-newcomer.png", int64(0), int64(0), int64(0))
				mock.ExpectQuery(regexp.QuoteMeta(`LEFT JOIN invoices ON customers.id = invoices.customer_id`)).
					WithArgs("%%").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: []domain.CustomerWithTotals{
				{ID: 3, Name: "Amy Burns", Email: "amy@burns.com", ImageURL: "/customers/amy-burns.png", TotalInvoices: 4, TotalPending: 50, TotalPaid: 100},
				{ID: 5, Name: "Zoe Newcomer", Email: "zoe@newcomer.com", ImageURL: "/customers/zoe-newcomer.png", TotalInvoices: 0, TotalPending: 0, TotalPaid: 0},
			},
		},
		{
			name:  "Filters by name or email",
			query: "amy",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "name", "email", "image_url", "total_invoices", "total_pending", "total_paid"}).
					AddRow(3, "Amy Burns", "amy@burns.com", "/customers/amy-burns.png", int64(4), int64(50), int64(100))
				mock.ExpectQuery(regexp.QuoteMeta(`
            customers.name ILIKE $1 OR
            customers.email ILIKE $1`)).
					WithArgs("%amy%").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: []domain.CustomerWithTotals{
				{ID: 3, Name: "Amy Burns", Email: "amy@burns.com", ImageURL: "/customers/amy-burns.png", TotalInvoices: 4, TotalPending: 50, TotalPaid: 100},
			},
		},
		{
			name:  "Database error",
			query: "amy",
			mockSetup: func() {
				mock.ExpectQuery(`SELECT`).
					WithArgs("%amy%").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindFilteredWithTotals(context.Background(), tt.query)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_CountAll(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    int64
	}{
		{
			name: "Counts all customers",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM customers`)).
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(6)))
			},
			expectErr: false,
			result:    6,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM customers`)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.CountAll(context.Background())

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}
