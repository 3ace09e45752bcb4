package dashboard

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/invodash/invodash/internal/domain"
	"github.com/invodash/invodash/internal/dto"
)

func NewMock(t *testing.T) (*DashboardHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRevenueHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody []dto.RevenueDTO
	}{
		{
			name: "Returns revenue rows",
			prepareMock: func() {
				service.EXPECT().
					FetchRevenue(gomock.Any()).
					Return([]domain.Revenue{
						{Month: "Jan", Revenue: 200000},
						{Month: "Feb", Revenue: 180000},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: []dto.RevenueDTO{
				{Month: "Jan", Revenue: 200000},
				{Month: "Feb", Revenue: 180000},
			},
		},
		{
			name: "Service error",
			prepareMock: func() {
				service.EXPECT().
					FetchRevenue(gomock.Any()).
					Return(nil, errors.New("failed to fetch revenue"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("GET", "/api/dashboard/revenue", nil)
			rr := httptest.NewRecorder()

			handler.Revenue(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != nil {
				var rows []dto.RevenueDTO
				err := json.NewDecoder(rr.Body).Decode(&rows)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBody, rows)
			}
		})
	}
}

func TestLatestInvoicesHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody []dto.LatestInvoiceDTO
	}{
		{
			name: "Returns formatted latest invoices",
			prepareMock: func() {
				service.EXPECT().
					FetchLatestInvoices(gomock.Any()).
					Return([]domain.LatestInvoice{
						{ID: "12", Amount: "$1,500.00", Name: "Amy Burns", Email: "amy@burns.com", ImageURL: "/customers/amy-burns.png"},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: []dto.LatestInvoiceDTO{
				{ID: "12", Amount: "$1,500.00", Name: "Amy Burns", Email: "amy@burns.com", ImageURL: "/customers/amy-burns.png"},
			},
		},
		{
			name: "Service error",
			prepareMock: func() {
				service.EXPECT().
					FetchLatestInvoices(gomock.Any()).
					Return(nil, errors.New("failed to fetch the latest invoices"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("GET", "/api/dashboard/latest-invoices", nil)
			rr := httptest.NewRecorder()

			handler.LatestInvoices(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != nil {
				var rows []dto.LatestInvoiceDTO
				err := json.NewDecoder(rr.Body).Decode(&rows)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBody, rows)
			}
		})
	}
}

func TestCardsHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody *dto.CardDataResponseDTO
	}{
		{
			name: "Returns card data",
			prepareMock: func() {
				service.EXPECT().
					FetchCardData(gomock.Any()).
					Return(&domain.CardData{
						NumberOfInvoices:  13,
						NumberOfCustomers: 6,
						TotalPaid:         "$1.00",
						TotalPending:      "$0.50",
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.CardDataResponseDTO{
				NumberOfInvoices:  13,
				NumberOfCustomers: 6,
				TotalPaid:         "$1.00",
				TotalPending:      "$0.50",
			},
		},
		{
			name: "Service error",
			prepareMock: func() {
				service.EXPECT().
					FetchCardData(gomock.Any()).
					Return(nil, errors.New("failed to fetch card data"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("GET", "/api/dashboard/cards", nil)
			rr := httptest.NewRecorder()

			handler.Cards(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != nil {
				var resp dto.CardDataResponseDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, *tt.expectedBody, resp)
			}
		})
	}
}
