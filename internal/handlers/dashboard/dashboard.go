package dashboard

import (
	"context"
	"net/http"

	"github.com/invodash/invodash/internal/domain"
	"github.com/invodash/invodash/internal/dto"
	"github.com/invodash/invodash/pkg/utils"
)

type Service interface {
	FetchRevenue(ctx context.Context) ([]domain.Revenue, error)
	FetchLatestInvoices(ctx context.Context) ([]domain.LatestInvoice, error)
	FetchCardData(ctx context.Context) (*domain.CardData, error)
}

type DashboardHandler struct {
	dashboardService Service
}

func New(dashboardService Service) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Revenue godoc
//
//	@Summary		Monthly revenue
//	@Description	Precomputed monthly revenue rows for the chart
//	@Tags			Dashboard
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.RevenueDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/dashboard/revenue [get]
func (h *DashboardHandler) Revenue(w http.ResponseWriter, r *http.Request) {
	revenue, err := h.dashboardService.FetchRevenue(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	rows := make([]dto.RevenueDTO, 0, len(revenue))
	for _, rev := range revenue {
		rows = append(rows, dto.RevenueDTO{Month: rev.Month, Revenue: rev.Revenue})
	}
	utils.RespondWithJSON(w, http.StatusOK, rows)
}

// LatestInvoices godoc
//
//	@Summary		Latest invoices
//	@Description	The five most recent invoices with formatted amounts
//	@Tags			Dashboard
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.LatestInvoiceDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/dashboard/latest-invoices [get]
func (h *DashboardHandler) LatestInvoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.dashboardService.FetchLatestInvoices(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	rows := make([]dto.LatestInvoiceDTO, 0, len(invoices))
	for _, inv := range invoices {
		rows = append(rows, dto.LatestInvoiceDTO{
			ID:       inv.ID,
			Amount:   inv.Amount,
			Name:     inv.Name,
			Email:    inv.Email,
			ImageURL: inv.ImageURL,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, rows)
}

// Cards godoc
//
//	@Summary		Dashboard cards
//	@Description	Invoice count, customer count and per-status totals, computed concurrently
//	@Tags			Dashboard
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.CardDataResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/dashboard/cards [get]
func (h *DashboardHandler) Cards(w http.ResponseWriter, r *http.Request) {
	card, err := h.dashboardService.FetchCardData(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.CardDataResponseDTO{
		NumberOfInvoices:  card.NumberOfInvoices,
		NumberOfCustomers: card.NumberOfCustomers,
		TotalPaid:         card.TotalPaid,
		TotalPending:      card.TotalPending,
	})
}
