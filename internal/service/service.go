package service

import (
	"github.com/invodash/invodash/internal/handlers/auth"
	"github.com/invodash/invodash/internal/handlers/customers"
	"github.com/invodash/invodash/internal/handlers/dashboard"
	"github.com/invodash/invodash/internal/handlers/invoices"

	pkgauth "github.com/invodash/invodash/pkg/auth"

	"github.com/invodash/invodash/internal/repo"
	"github.com/invodash/invodash/internal/service/authservice"
	"github.com/invodash/invodash/internal/service/customerservice"
	"github.com/invodash/invodash/internal/service/dashboardservice"
	"github.com/invodash/invodash/internal/service/invoiceservice"
)

type Services struct {
	AuthService      auth.Service
	InvoiceService   invoices.Service
	CustomerService  customers.Service
	DashboardService dashboard.Service
}

func New(repo *repo.Repositories, jwtService pkgauth.JWTServiceInterface) *Services {
	invoiceService := invoiceservice.New(repo.InvoiceRepo)
	customerService := customerservice.New(repo.CustomerRepo)
	dashboardService := dashboardservice.New(repo.InvoiceRepo, repo.CustomerRepo, repo.RevenueRepo)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, jwtService)

	return &Services{
		AuthService:      authService,
		InvoiceService:   invoiceService,
		CustomerService:  customerService,
		DashboardService: dashboardService,
	}
}
