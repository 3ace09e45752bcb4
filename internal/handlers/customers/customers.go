package customers

import (
	"context"
	"net/http"

	"github.com/invodash/invodash/internal/domain"
	"github.com/invodash/invodash/internal/dto"
	"github.com/invodash/invodash/pkg/utils"
)

type Service interface {
	FetchCustomers(ctx context.Context) ([]domain.CustomerField, error)
	FetchFilteredCustomers(ctx context.Context, query string) ([]domain.CustomerSummary, error)
}

type CustomerHandler struct {
	customerService Service
}

func New(customerService Service) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
	}
}

// List godoc
//
//	@Summary		List customers
//	@Description	All customers as id/name pairs for selection inputs, ordered by name
//	@Tags			Customers
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.CustomerFieldDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/customers [get]
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customerService.FetchCustomers(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	fields := make([]dto.CustomerFieldDTO, 0, len(customers))
	for _, c := range customers {
		fields = append(fields, dto.CustomerFieldDTO{ID: c.ID, Name: c.Name})
	}
	utils.RespondWithJSON(w, http.StatusOK, fields)
}

// Filtered godoc
//
//	@Summary		Customer table
//	@Description	Customers matching the query, annotated with invoice counts and per-status totals
//	@Tags			Customers
//	@Security		BearerAuth
//	@Produce		json
//	@Param			query	query		string	false	"Filter substring"
//	@Success		200		{array}		dto.CustomerSummaryDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/customers/filtered [get]
func (h *CustomerHandler) Filtered(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customerService.FetchFilteredCustomers(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	summaries := make([]dto.CustomerSummaryDTO, 0, len(customers))
	for _, c := range customers {
		summaries = append(summaries, dto.CustomerSummaryDTO{
			ID:            c.ID,
			Name:          c.Name,
			Email:         c.Email,
			ImageURL:      c.ImageURL,
			TotalInvoices: c.TotalInvoices,
			TotalPending:  c.TotalPending,
			TotalPaid:     c.TotalPaid,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, summaries)
}
