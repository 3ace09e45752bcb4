package repo

import (
	"github.com/invodash/invodash/internal/pg"
	customerrepo "github.com/invodash/invodash/internal/repo/customer-repo"
	invoicerepo "github.com/invodash/invodash/internal/repo/invoice-repo"
	revenuerepo "github.com/invodash/invodash/internal/repo/revenue-repo"
	userrepo "github.com/invodash/invodash/internal/repo/user-repo"
	"github.com/invodash/invodash/internal/service/authservice"
	"github.com/invodash/invodash/internal/service/customerservice"
	"github.com/invodash/invodash/internal/service/dashboardservice"
	"github.com/invodash/invodash/internal/service/invoiceservice"
)

type Repositories struct {
	InvoiceRepo  invoiceservice.Repo
	CustomerRepo customerservice.Repo
	RevenueRepo  dashboardservice.RevenueRepo
	UserRepo     authservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	invoiceRepo := invoicerepo.New(conn, txManager)
	customerRepo := customerrepo.New(conn)
	revenueRepo := revenuerepo.New(conn)
	userRepo := userrepo.New(conn)

	return &Repositories{
		InvoiceRepo:  invoiceRepo,
		CustomerRepo: customerRepo,
		RevenueRepo:  revenueRepo,
		UserRepo:     userRepo,
	}
}
