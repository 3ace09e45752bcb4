package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/invodash/invodash/internal/repo"
	"github.com/invodash/invodash/internal/service/authservice"
	"github.com/invodash/invodash/internal/service/customerservice"
	"github.com/invodash/invodash/internal/service/dashboardservice"
	"github.com/invodash/invodash/internal/service/invoiceservice"
	pkgauth "github.com/invodash/invodash/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInvoiceRepo := invoiceservice.NewMockRepo(ctrl)
	mockCustomerRepo := customerservice.NewMockRepo(ctrl)
	mockRevenueRepo := dashboardservice.NewMockRevenueRepo(ctrl)
	mockUserRepo := authservice.NewMockRepo(ctrl)
	mockJWTService := pkgauth.NewMockJWTServiceInterface(ctrl)

	repos := &repo.Repositories{
		InvoiceRepo:  mockInvoiceRepo,
		CustomerRepo: mockCustomerRepo,
		RevenueRepo:  mockRevenueRepo,
		UserRepo:     mockUserRepo,
	}

	services := New(repos, mockJWTService)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.InvoiceService)
	assert.NotNil(t, services.CustomerService)
	assert.NotNil(t, services.DashboardService)
}
