package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/invodash/invodash/internal/domain"
	"github.com/invodash/invodash/pkg/utils"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"email":"admin@invodash.dev","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(context.Background(), "admin@invodash.dev", "password123").
					Return(&domain.User{
						ID:           1,
						Email:        "admin@invodash.dev",
						PasswordHash: "$2a$10$hash",
					}, nil)

				service.EXPECT().
					GenerateToken(1).
					Return("some-jwt-token", nil)
			},
			expectedCode:  http.StatusOK,
			expectedError: "",
		},
		{
			name: "Invalid credentials",
			body: `{"email":"admin@invodash.dev","password":"wrongpassword"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(context.Background(), "admin@invodash.dev", "wrongpassword").
					Return(nil, domain.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials.",
		},
		{
			name: "Unknown email is indistinguishable from wrong password",
			body: `{"email":"nobody@invodash.dev","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(context.Background(), "nobody@invodash.dev", "password123").
					Return(nil, domain.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials.",
		},
		{
			name: "Lookup failure is not an auth failure",
			body: `{"email":"admin@invodash.dev","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(context.Background(), "admin@invodash.dev", "password123").
					Return(nil, errors.New("user lookup: database error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Something went wrong.",
		},
		{
			name: "Invalid request body",
			body: `{invalid json`,
			prepareMock: func() {
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Error generating token",
			body: `{"email":"admin@invodash.dev","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(context.Background(), "admin@invodash.dev", "password123").
					Return(&domain.User{
						ID:           1,
						Email:        "admin@invodash.dev",
						PasswordHash: "$2a$10$hash",
					}, nil)

				service.EXPECT().
					GenerateToken(1).
					Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/login", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

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

func TestLoginHandlerTokenHeader(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().
		Authenticate(context.Background(), "admin@invodash.dev", "password123").
		Return(&domain.User{ID: 1, Email: "admin@invodash.dev"}, nil)
	service.EXPECT().GenerateToken(1).Return("some-jwt-token", nil)

	body := `{"email":"admin@invodash.dev","password":"password123"}`
	req := httptest.NewRequest("POST", "/api/login", bytes.NewReader([]byte(body)))
	rr := httptest.NewRecorder()

	handler.Login(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Bearer some-jwt-token", rr.Header().Get("Authorization"))
}
