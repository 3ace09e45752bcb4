package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/invodash/invodash/internal/pg"
	customerrepo "github.com/invodash/invodash/internal/repo/customer-repo"
	invoicerepo "github.com/invodash/invodash/internal/repo/invoice-repo"
	revenuerepo "github.com/invodash/invodash/internal/repo/revenue-repo"
	userrepo "github.com/invodash/invodash/internal/repo/user-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.InvoiceRepo)
	assert.NotNil(t, repo.CustomerRepo)
	assert.NotNil(t, repo.RevenueRepo)
	assert.NotNil(t, repo.UserRepo)

	assert.IsType(t, &invoicerepo.Repository{}, repo.InvoiceRepo)
	assert.IsType(t, &customerrepo.Repository{}, repo.CustomerRepo)
	assert.IsType(t, &revenuerepo.Repository{}, repo.RevenueRepo)
	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
