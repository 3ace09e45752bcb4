package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/invodash/invodash/docs"
	authhandlers "github.com/invodash/invodash/internal/handlers/auth"
	customerhandlers "github.com/invodash/invodash/internal/handlers/customers"
	dashboardhandlers "github.com/invodash/invodash/internal/handlers/dashboard"
	invoicehandlers "github.com/invodash/invodash/internal/handlers/invoices"
	"github.com/invodash/invodash/internal/service"
	"github.com/invodash/invodash/pkg/auth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type InvoiceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Pages(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type CustomerHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Filtered(w http.ResponseWriter, r *http.Request)
}

type DashboardHandler interface {
	Revenue(w http.ResponseWriter, r *http.Request)
	LatestInvoices(w http.ResponseWriter, r *http.Request)
	Cards(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler      AuthHandler
	InvoiceHandler   InvoiceHandler
	CustomerHandler  CustomerHandler
	DashboardHandler DashboardHandler

	jwtService auth.JWTServiceInterface
}

func New(s *service.Services, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AuthHandler:      authhandlers.New(s.AuthService),
		InvoiceHandler:   invoicehandlers.New(s.InvoiceService),
		CustomerHandler:  customerhandlers.New(s.CustomerService),
		DashboardHandler: dashboardhandlers.New(s.DashboardService),
		jwtService:       jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.jwtService))
			r.Route("/invoices", func(r chi.Router) {
				r.Get("/", h.InvoiceHandler.List)
				r.Post("/", h.InvoiceHandler.Create)
				r.Get("/pages", h.InvoiceHandler.Pages)
				r.Get("/{id}", h.InvoiceHandler.GetByID)
				r.Put("/{id}", h.InvoiceHandler.Update)
				r.Delete("/{id}", h.InvoiceHandler.Delete)
			})
			r.Route("/customers", func(r chi.Router) {
				r.Get("/", h.CustomerHandler.List)
				r.Get("/filtered", h.CustomerHandler.Filtered)
			})
			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/revenue", h.DashboardHandler.Revenue)
				r.Get("/latest-invoices", h.DashboardHandler.LatestInvoices)
				r.Get("/cards", h.DashboardHandler.Cards)
			})
		})
	})

	return r
}
