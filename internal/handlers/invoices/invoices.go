package invoices

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/invodash/invodash/internal/domain"
	"github.com/invodash/invodash/internal/dto"
	"github.com/invodash/invodash/pkg/utils"
	"github.com/invodash/invodash/pkg/validate"
)

const dateLayout = "2006-01-02"

type Service interface {
	FetchFilteredInvoices(ctx context.Context, query string, page int) ([]domain.InvoiceRow, error)
	FetchInvoicesPages(ctx context.Context, query string) (int, error)
	FetchInvoiceByID(ctx context.Context, id int) (*domain.InvoiceForm, error)
	CreateInvoice(ctx context.Context, fields validate.InvoiceFormFields) (*domain.MutationResult, error)
	UpdateInvoiceByID(ctx context.Context, id int, fields validate.InvoiceFormFields) (*domain.MutationResult, error)
	DeleteInvoiceByID(ctx context.Context, id int) (*domain.MutationResult, error)
}

type InvoiceHandler struct {
	invoiceService Service
}

func New(invoiceService Service) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
	}
}

// List godoc
//
//	@Summary		List filtered invoices
//	@Description	One page of invoices joined with their customer, filtered by a free-text query
//	@Tags			Invoices
//	@Security		BearerAuth
//	@Produce		json
//	@Param			query	query		string	false	"Filter substring"
//	@Param			page	query		int		false	"Page number, 1-based"
//	@Success		200		{array}		dto.InvoiceRowDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/invoices [get]
func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		page = 1
	}

	invoices, err := h.invoiceService.FetchFilteredInvoices(r.Context(), query, page)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	rows := make([]dto.InvoiceRowDTO, 0, len(invoices))
	for _, inv := range invoices {
		rows = append(rows, dto.InvoiceRowDTO{
			ID:       inv.ID,
			Amount:   inv.Amount,
			Date:     inv.Date.Format(dateLayout),
			Status:   string(inv.Status),
			Name:     inv.Name,
			Email:    inv.Email,
			ImageURL: inv.ImageURL,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, rows)
}

// Pages godoc
//
//	@Summary		Total pages for a filter
//	@Description	Page count over the same predicate as the invoice list
//	@Tags			Invoices
//	@Security		BearerAuth
//	@Produce		json
//	@Param			query	query		string	false	"Filter substring"
//	@Success		200		{object}	dto.InvoicesPagesResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/invoices/pages [get]
func (h *InvoiceHandler) Pages(w http.ResponseWriter, r *http.Request) {
	pages, err := h.invoiceService.FetchInvoicesPages(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.InvoicesPagesResponseDTO{TotalPages: pages})
}

// GetByID godoc
//
//	@Summary		Get one invoice
//	@Description	Single invoice with the amount converted back to major units
//	@Tags			Invoices
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Invoice ID"
//	@Success		200	{object}	dto.InvoiceFormResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid invoice id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Invoice not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/invoices/{id} [get]
func (h *InvoiceHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid invoice id")
		return
	}

	form, err := h.invoiceService.FetchInvoiceByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Invoice not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.InvoiceFormResponseDTO{
		ID:         form.ID,
		CustomerID: form.CustomerID,
		Amount:     form.Amount,
		Status:     string(form.Status),
	})
}

// Create godoc
//
//	@Summary		Create invoice
//	@Description	Validate the submitted form and create a new invoice dated today
//	@Tags			Invoices
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.InvoiceFormDTO	true	"Invoice form"
//	@Success		201		{object}	dto.MutationResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		422		{object}	dto.ValidationErrorResponseDTO	"Validation failed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/invoices [post]
func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.InvoiceFormDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.invoiceService.CreateInvoice(r.Context(), formFields(req))
	if err != nil {
		respondMutationError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, mutationResponse(result))
}

// Update godoc
//
//	@Summary		Update invoice
//	@Description	Validate the submitted form and update an existing invoice; its date is kept
//	@Tags			Invoices
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"Invoice ID"
//	@Param			request	body		dto.InvoiceFormDTO	true	"Invoice form"
//	@Success		200		{object}	dto.MutationResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		422		{object}	dto.ValidationErrorResponseDTO	"Validation failed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/invoices/{id} [put]
func (h *InvoiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid invoice id")
		return
	}

	var req dto.InvoiceFormDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.invoiceService.UpdateInvoiceByID(r.Context(), id, formFields(req))
	if err != nil {
		respondMutationError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, mutationResponse(result))
}

// Delete godoc
//
//	@Summary		Delete invoice
//	@Description	Delete an invoice; the listing view is invalidated but no redirect is issued
//	@Tags			Invoices
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Invoice ID"
//	@Success		200	{object}	dto.MutationResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid invoice id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/invoices/{id} [delete]
func (h *InvoiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid invoice id")
		return
	}

	result, err := h.invoiceService.DeleteInvoiceByID(r.Context(), id)
	if err != nil {
		respondMutationError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, mutationResponse(result))
}

func formFields(req dto.InvoiceFormDTO) validate.InvoiceFormFields {
	return validate.InvoiceFormFields{
		CustomerID: req.CustomerID,
		Amount:     req.Amount,
		Status:     req.Status,
	}
}

func mutationResponse(result *domain.MutationResult) dto.MutationResponseDTO {
	return dto.MutationResponseDTO{
		Invalidated: result.Invalidated,
		RedirectTo:  result.RedirectTo,
	}
}

func respondMutationError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		utils.RespondWithJSON(w, http.StatusUnprocessableEntity, dto.ValidationErrorResponseDTO{
			Message: "Validation failed",
			Fields:  ve.Fields,
		})
		return
	}
	utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
}
