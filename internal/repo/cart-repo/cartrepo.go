package cartrepo

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/learndesk/billing/internal/domain"
	"github.com/learndesk/billing/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) GetCartItems(ctx context.Context, userID int) ([]domain.CartItem, error) {
	query := `
        SELECT id, user_id, course_id, promo_code_id, added_at
        FROM cart_items
        WHERE user_id = $1
        ORDER BY added_at
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch cart items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		var item domain.CartItem
		err := rows.Scan(&item.ID, &item.UserID, &item.CourseID, &item.PromoCodeID, &item.AddedAt)
		if err != nil {
			zap.L().Error("failed to scan cart item row", zap.Error(err))
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

func (r *Repository) AddItem(ctx context.Context, userID, courseID int) (*domain.CartItem, error) {
	query := `
        INSERT INTO cart_items (user_id, course_id, added_at)
        VALUES ($1, $2, $3)
        ON CONFLICT (user_id, course_id) DO UPDATE SET course_id = EXCLUDED.course_id
        RETURNING id, user_id, course_id, promo_code_id, added_at
    `
	var item domain.CartItem
	err := r.db.QueryRow(ctx, query, userID, courseID, time.Now()).
		Scan(&item.ID, &item.UserID, &item.CourseID, &item.PromoCodeID, &item.AddedAt)
	if err != nil {
		zap.L().Error("failed to add cart item", zap.Error(err))
		return nil, err
	}
	return &item, nil
}

func (r *Repository) RemoveItem(ctx context.Context, userID, courseID int) error {
	query := `
        DELETE FROM cart_items
        WHERE user_id = $1 AND course_id = $2
    `
	if _, err := r.db.Exec(ctx, query, userID, courseID); err != nil {
		zap.L().Error("failed to remove cart item", zap.Error(err))
		return err
	}
	return nil
}

// SetPromoAll assigns the promo to every cart line, replacing whatever was
// applied before. Used for admin-wide codes.
func (r *Repository) SetPromoAll(ctx context.Context, userID int, promoID int) error {
	query := `
        UPDATE cart_items
        SET promo_code_id = $1
        WHERE user_id = $2
    `
	if _, err := r.db.Exec(ctx, query, promoID, userID); err != nil {
		zap.L().Error("failed to set promo on cart", zap.Error(err))
		return err
	}
	return nil
}

// SetPromoForCourses assigns the promo only to the lines for the given
// courses, leaving the rest of the cart untouched.
func (r *Repository) SetPromoForCourses(ctx context.Context, userID int, promoID int, courseIDs []int) error {
	query := `
        UPDATE cart_items
        SET promo_code_id = $1
        WHERE user_id = $2 AND course_id = ANY($3)
    `
	if _, err := r.db.Exec(ctx, query, promoID, userID, courseIDs); err != nil {
		zap.L().Error("failed to set promo on cart lines", zap.Error(err))
		return err
	}
	return nil
}

// ClearAdminPromos strips any admin-owned promo from the whole cart. Admin
// and instructor codes are mutually exclusive at the cart level.
func (r *Repository) ClearAdminPromos(ctx context.Context, userID int) error {
	query := `
        UPDATE cart_items
        SET promo_code_id = NULL
        WHERE user_id = $1
          AND promo_code_id IN (SELECT id FROM promo_codes WHERE owner_role = 'admin')
    `
	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		zap.L().Error("failed to clear admin promos from cart", zap.Error(err))
		return err
	}
	return nil
}
