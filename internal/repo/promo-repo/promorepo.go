package promorepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/learndesk/billing/internal/domain"
	"github.com/learndesk/billing/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const promoColumns = `id, code, discount_type, discount_amount, active, starts_at, ends_at, remaining_uses, owner_role, created_at`

func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.PromoCode, error) {
	query := `
        SELECT ` + promoColumns + `
        FROM promo_codes
        WHERE code = $1
    `
	promo, err := r.scanPromo(r.db.QueryRow(ctx, query, code))
	if err != nil || promo == nil {
		return nil, err
	}
	if err := r.loadCourseIDs(ctx, promo); err != nil {
		return nil, err
	}
	return promo, nil
}

func (r *Repository) GetByID(ctx context.Context, promoID int) (*domain.PromoCode, error) {
	query := `
        SELECT ` + promoColumns + `
        FROM promo_codes
        WHERE id = $1
    `
	promo, err := r.scanPromo(r.db.QueryRow(ctx, query, promoID))
	if err != nil || promo == nil {
		return nil, err
	}
	if err := r.loadCourseIDs(ctx, promo); err != nil {
		return nil, err
	}
	return promo, nil
}

func (r *Repository) scanPromo(row pgx.Row) (*domain.PromoCode, error) {
	var promo domain.PromoCode
	err := row.Scan(
		&promo.ID, &promo.Code, &promo.DiscountType, &promo.DiscountAmount, &promo.Active,
		&promo.StartsAt, &promo.EndsAt, &promo.RemainingUses, &promo.OwnerRole, &promo.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get promo code", zap.Error(err))
		return nil, err
	}
	return &promo, nil
}

// loadCourseIDs fills the instructor scope; admin codes have no mappings.
func (r *Repository) loadCourseIDs(ctx context.Context, promo *domain.PromoCode) error {
	if promo.OwnerRole != domain.PromoOwnerInstructor {
		return nil
	}
	query := `
        SELECT course_id
        FROM promo_code_courses
        WHERE promo_code_id = $1
        ORDER BY course_id
    `
	rows, err := r.db.Query(ctx, query, promo.ID)
	if err != nil {
		zap.L().Error("failed to fetch promo course mappings", zap.Error(err))
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var courseID int
		if err := rows.Scan(&courseID); err != nil {
			zap.L().Error("failed to scan promo course mapping", zap.Error(err))
			return err
		}
		promo.CourseIDs = append(promo.CourseIDs, courseID)
	}
	return nil
}
