package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/invodash/invodash/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindByEmail(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		email     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "Existing email returns user with hash",
			email: "admin@invodash.dev",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "name", "email", "password"}).
					AddRow(1, "Admin", "admin@invodash.dev", "$2a$10$hash")
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, email, password FROM users WHERE email = $1`)).
					WithArgs("admin@invodash.dev").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.User{
				ID:           1,
				Name:         "Admin",
				Email:        "admin@invodash.dev",
				PasswordHash: "$2a$10$hash",
			},
		},
		{
			name:  "Unknown email returns nil without error",
			email: "nobody@invodash.dev",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, email, password FROM users WHERE email = $1`)).
					WithArgs("nobody@invodash.dev").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:  "Database error",
			email: "admin@invodash.dev",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, email, password FROM users WHERE email = $1`)).
					WithArgs("admin@invodash.dev").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByEmail(context.Background(), tt.email)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}
