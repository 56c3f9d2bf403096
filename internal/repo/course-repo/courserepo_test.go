package courserepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/learndesk/billing/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestRepository_GetCourseByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	tests := []struct {
		name      string
		courseID  int
		mockSetup func()
		expectErr bool
		result    *domain.Course
	}{
		{
			name:     "Course exists",
			courseID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "instructor_id", "title", "price", "discount_price", "created_at"}).
					AddRow(1, 5, "Go Basics", dec("100"), decimal.NullDecimal{Decimal: dec("80"), Valid: true}, now)
				mock.ExpectQuery(regexp.QuoteMeta("FROM courses")).
					WithArgs(1).
					WillReturnRows(rows)
			},
			result: &domain.Course{
				ID: 1, InstructorID: 5, Title: "Go Basics",
				Price:         dec("100"),
				DiscountPrice: decimal.NullDecimal{Decimal: dec("80"), Valid: true},
				CreatedAt:     now,
			},
		},
		{
			name:     "Course does not exist",
			courseID: 9,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM courses")).
					WithArgs(9).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:     "Database error",
			courseID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM courses")).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetCourseByID(context.Background(), tt.courseID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetCoursesByIDs(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	rows := pgxmock.NewRows([]string{"id", "instructor_id", "title", "price", "discount_price", "created_at"}).
		AddRow(1, 5, "Go Basics", dec("100"), decimal.NullDecimal{Decimal: dec("80"), Valid: true}, now).
		AddRow(2, 5, "Advanced Go", dec("150"), decimal.NullDecimal{}, now)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = ANY($1)")).
		WithArgs([]int{1, 2}).
		WillReturnRows(rows)

	courses, err := repo.GetCoursesByIDs(context.Background(), []int{1, 2})
	assert.NoError(t, err)
	assert.Len(t, courses, 2)
	assert.False(t, courses[1].DiscountPrice.Valid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetTaxRules(t *testing.T) {
	repo, mock := NewMock(t)
	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Rules found",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "name", "percent"}).
					AddRow(1, "VAT", dec("7.5")).
					AddRow(2, "Service levy", dec("2.5"))
				mock.ExpectQuery(regexp.QuoteMeta("FROM tax_rules")).
					WithArgs(1).
					WillReturnRows(rows)
			},
			count: 2,
		},
		{
			name: "No rules",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "name", "percent"})
				mock.ExpectQuery(regexp.QuoteMeta("FROM tax_rules")).
					WithArgs(1).
					WillReturnRows(rows)
			},
			count: 0,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM tax_rules")).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			rules, err := repo.GetTaxRules(context.Background(), 1)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, rules, tt.count)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
