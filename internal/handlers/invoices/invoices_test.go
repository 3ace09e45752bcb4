package invoices

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/invodash/invodash/internal/domain"
	"github.com/invodash/invodash/internal/dto"
	"github.com/invodash/invodash/pkg/utils"
	"github.com/invodash/invodash/pkg/validate"
)

func NewMock(t *testing.T) (*InvoiceHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)

	date := time.Date(2024, 11, 5, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		url          string
		prepareMock  func()
		expectedCode int
		expectedBody []dto.InvoiceRowDTO
	}{
		{
			name: "Returns one page of invoices",
			url:  "/api/invoices?query=amy&page=2",
			prepareMock: func() {
				service.EXPECT().
					FetchFilteredInvoices(gomock.Any(), "amy", 2).
					Return([]domain.InvoiceRow{
						{ID: 7, Amount: 9950, Date: date, Status: domain.InvoiceStatusPaid, Name: "Amy Burns", Email: "amy@burns.com", ImageURL: "/customers/amy-burns.png"},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: []dto.InvoiceRowDTO{
				{ID: 7, Amount: 9950, Date: "2024-11-05", Status: "paid", Name: "Amy Burns", Email: "amy@burns.com", ImageURL: "/customers/amy-burns.png"},
			},
		},
		{
			name: "Missing page defaults to first",
			url:  "/api/invoices",
			prepareMock: func() {
				service.EXPECT().
					FetchFilteredInvoices(gomock.Any(), "", 1).
					Return(nil, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: []dto.InvoiceRowDTO{},
		},
		{
			name: "Service error",
			url:  "/api/invoices",
			prepareMock: func() {
				service.EXPECT().
					FetchFilteredInvoices(gomock.Any(), "", 1).
					Return(nil, errors.New("failed to fetch invoices"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("GET", tt.url, nil)
			rr := httptest.NewRecorder()

			handler.List(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != nil {
				var rows []dto.InvoiceRowDTO
				err := json.NewDecoder(rr.Body).Decode(&rows)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBody, rows)
			}
		})
	}
}

func TestPagesHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		url           string
		prepareMock   func()
		expectedCode  int
		expectedPages int
	}{
		{
			name: "Returns page count",
			url:  "/api/invoices/pages?query=pending",
			prepareMock: func() {
				service.EXPECT().
					FetchInvoicesPages(gomock.Any(), "pending").
					Return(3, nil)
			},
			expectedCode:  http.StatusOK,
			expectedPages: 3,
		},
		{
			name: "Service error",
			url:  "/api/invoices/pages",
			prepareMock: func() {
				service.EXPECT().
					FetchInvoicesPages(gomock.Any(), "").
					Return(0, errors.New("failed to fetch total number of invoices"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("GET", tt.url, nil)
			rr := httptest.NewRecorder()

			handler.Pages(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				var resp dto.InvoicesPagesResponseDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedPages, resp.TotalPages)
			}
		})
	}
}

func TestGetByIDHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		id            string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Existing invoice",
			id:   "7",
			prepareMock: func() {
				service.EXPECT().
					FetchInvoiceByID(gomock.Any(), 7).
					Return(&domain.InvoiceForm{
						ID:         "7",
						CustomerID: "3",
						Amount:     99.5,
						Status:     domain.InvoiceStatusPaid,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invoice not found",
			id:   "99",
			prepareMock: func() {
				service.EXPECT().
					FetchInvoiceByID(gomock.Any(), 99).
					Return(nil, domain.ErrNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Invoice not found",
		},
		{
			name: "Invalid id",
			id:   "abc",
			prepareMock: func() {
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid invoice id",
		},
		{
			name: "Service error",
			id:   "7",
			prepareMock: func() {
				service.EXPECT().
					FetchInvoiceByID(gomock.Any(), 7).
					Return(nil, errors.New("failed to fetch invoice"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "failed to fetch invoice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("GET", "/api/invoices/"+tt.id, nil)
			req = withURLParam(req, "id", tt.id)
			rr := httptest.NewRecorder()

			handler.GetByID(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestCreateHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful creation",
			body: `{"customer_id":"3","amount":"99.50","status":"paid"}`,
			prepareMock: func() {
				service.EXPECT().
					CreateInvoice(gomock.Any(), validate.InvoiceFormFields{CustomerID: "3", Amount: "99.50", Status: "paid"}).
					Return(&domain.MutationResult{
						Invalidated: []string{"/dashboard/invoices"},
						RedirectTo:  "/dashboard/invoices",
					}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Validation failure",
			body: `{"customer_id":"3","amount":"99.50","status":"archived"}`,
			prepareMock: func() {
				service.EXPECT().
					CreateInvoice(gomock.Any(), validate.InvoiceFormFields{CustomerID: "3", Amount: "99.50", Status: "archived"}).
					Return(nil, domain.NewValidationError(map[string]string{"status": "status must be pending or paid"}))
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Invalid request body",
			body: `{invalid json`,
			prepareMock: func() {
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Service error",
			body: `{"customer_id":"3","amount":"99.50","status":"paid"}`,
			prepareMock: func() {
				service.EXPECT().
					CreateInvoice(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("failed to create invoice"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/invoices", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Create(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestCreateHandlerValidationFields(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().
		CreateInvoice(gomock.Any(), gomock.Any()).
		Return(nil, domain.NewValidationError(map[string]string{
			"amount": "amount must be greater than zero",
			"status": "status must be pending or paid",
		}))

	body := `{"customer_id":"3","amount":"0","status":"archived"}`
	req := httptest.NewRequest("POST", "/api/invoices", bytes.NewReader([]byte(body)))
	rr := httptest.NewRecorder()

	handler.Create(rr, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	var resp dto.ValidationErrorResponseDTO
	err := json.NewDecoder(rr.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.Equal(t, "Validation failed", resp.Message)
	assert.Equal(t, map[string]string{
		"amount": "amount must be greater than zero",
		"status": "status must be pending or paid",
	}, resp.Fields)
}

func TestUpdateHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		id           string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful update",
			id:   "7",
			body: `{"customer_id":"3","amount":"120.00","status":"pending"}`,
			prepareMock: func() {
				service.EXPECT().
					UpdateInvoiceByID(gomock.Any(), 7, validate.InvoiceFormFields{CustomerID: "3", Amount: "120.00", Status: "pending"}).
					Return(&domain.MutationResult{
						Invalidated: []string{"/dashboard/invoices"},
						RedirectTo:  "/dashboard/invoices",
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid id",
			id:   "abc",
			body: `{"customer_id":"3","amount":"120.00","status":"pending"}`,
			prepareMock: func() {
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Validation failure",
			id:   "7",
			body: `{"customer_id":"","amount":"120.00","status":"pending"}`,
			prepareMock: func() {
				service.EXPECT().
					UpdateInvoiceByID(gomock.Any(), 7, gomock.Any()).
					Return(nil, domain.NewValidationError(map[string]string{"customer_id": "customer is required"}))
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Service error",
			id:   "7",
			body: `{"customer_id":"3","amount":"120.00","status":"pending"}`,
			prepareMock: func() {
				service.EXPECT().
					UpdateInvoiceByID(gomock.Any(), 7, gomock.Any()).
					Return(nil, errors.New("failed to update invoice"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("PUT", "/api/invoices/"+tt.id, bytes.NewReader([]byte(tt.body)))
			req = withURLParam(req, "id", tt.id)
			rr := httptest.NewRecorder()

			handler.Update(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestDeleteHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		id           string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful deletion invalidates without redirect",
			id:   "7",
			prepareMock: func() {
				service.EXPECT().
					DeleteInvoiceByID(gomock.Any(), 7).
					Return(&domain.MutationResult{
						Invalidated: []string{"/dashboard/invoices"},
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid id",
			id:   "abc",
			prepareMock: func() {
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Service error",
			id:   "7",
			prepareMock: func() {
				service.EXPECT().
					DeleteInvoiceByID(gomock.Any(), 7).
					Return(nil, errors.New("failed to delete invoice"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("DELETE", "/api/invoices/"+tt.id, nil)
			req = withURLParam(req, "id", tt.id)
			rr := httptest.NewRecorder()

			handler.Delete(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestDeleteHandlerResponseBody(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().
		DeleteInvoiceByID(gomock.Any(), 7).
		Return(&domain.MutationResult{Invalidated: []string{"/dashboard/invoices"}}, nil)

	req := httptest.NewRequest("DELETE", "/api/invoices/7", nil)
	req = withURLParam(req, "id", "7")
	rr := httptest.NewRecorder()

	handler.Delete(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp dto.MutationResponseDTO
	err := json.NewDecoder(rr.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.Equal(t, []string{"/dashboard/invoices"}, resp.Invalidated)
	assert.Empty(t, resp.RedirectTo)
}
