package revenuerepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

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

func TestRepository_FindAll(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.Revenue
	}{
		{
			name: "Returns all revenue rows",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"month", "revenue"}).
					AddRow("Jan", int64(200000)).
					AddRow("Feb", int64(180000))
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT month, revenue
        FROM revenue`)).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: []domain.Revenue{
				{Month: "Jan", Revenue: 200000},
				{Month: "Feb", Revenue: 180000},
			},
		},
		{
			name: "Empty table returns no rows",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"month", "revenue"})
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT month, revenue
        FROM revenue`)).
					WillReturnRows(rows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT month, revenue
        FROM revenue`)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindAll(context.Background())

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}
