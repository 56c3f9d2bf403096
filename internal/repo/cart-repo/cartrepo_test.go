package cartrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/learndesk/billing/internal/domain"
	"github.com/learndesk/billing/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func TestRepository_GetCartItems(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()
	promoID := 5

	t.Run("Items found", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "user_id", "course_id", "promo_code_id", "added_at"}).
			AddRow(10, 1, 1, &promoID, now).
			AddRow(11, 1, 2, (*int)(nil), now)
		mock.ExpectQuery(regexp.QuoteMeta("FROM cart_items")).
			WithArgs(1).
			WillReturnRows(rows)

		items, err := repo.GetCartItems(context.Background(), 1)
		assert.NoError(t, err)
		assert.Len(t, items, 2)
		assert.Equal(t, 5, *items[0].PromoCodeID)
		assert.Nil(t, items[1].PromoCodeID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM cart_items")).
			WithArgs(1).
			WillReturnError(errors.New("database error"))

		_, err := repo.GetCartItems(context.Background(), 1)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_AddItem(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	t.Run("Inserts item", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "user_id", "course_id", "promo_code_id", "added_at"}).
			AddRow(10, 1, 2, (*int)(nil), now)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO cart_items")).
			WithArgs(1, 2, pgxmock.AnyArg()).
			WillReturnRows(rows)

		item, err := repo.AddItem(context.Background(), 1, 2)
		assert.NoError(t, err)
		assert.Equal(t, &domain.CartItem{ID: 10, UserID: 1, CourseID: 2, AddedAt: now}, item)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Re-adding returns the existing line", func(t *testing.T) {
		promoID := 5
		rows := pgxmock.NewRows([]string{"id", "user_id", "course_id", "promo_code_id", "added_at"}).
			AddRow(10, 1, 2, &promoID, now)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO cart_items")).
			WithArgs(1, 2, pgxmock.AnyArg()).
			WillReturnRows(rows)

		item, err := repo.AddItem(context.Background(), 1, 2)
		assert.NoError(t, err)
		assert.Equal(t, 10, item.ID)
		assert.Equal(t, 5, *item.PromoCodeID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO cart_items")).
			WithArgs(1, 2, pgxmock.AnyArg()).
			WillReturnError(errors.New("database error"))

		_, err := repo.AddItem(context.Background(), 1, 2)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_RemoveItem(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM cart_items")).
		WithArgs(1, 2).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	assert.NoError(t, repo.RemoveItem(context.Background(), 1, 2))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SetPromoAll(t *testing.T) {
	repo, mock, _ := NewMock(t)

	t.Run("Updates every line", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("SET promo_code_id = $1")).
			WithArgs(5, 1).
			WillReturnResult(pgxmock.NewResult("UPDATE", 3))

		assert.NoError(t, repo.SetPromoAll(context.Background(), 1, 5))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("SET promo_code_id = $1")).
			WithArgs(5, 1).
			WillReturnError(errors.New("database error"))

		assert.Error(t, repo.SetPromoAll(context.Background(), 1, 5))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_SetPromoForCourses(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("course_id = ANY($3)")).
		WithArgs(5, 1, []int{1, 3}).
		WillReturnResult(pgxmock.NewResult("UPDATE", 2))

	assert.NoError(t, repo.SetPromoForCourses(context.Background(), 1, 5, []int{1, 3}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ClearAdminPromos(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("owner_role = 'admin'")).
		WithArgs(1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.ClearAdminPromos(context.Background(), 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}
