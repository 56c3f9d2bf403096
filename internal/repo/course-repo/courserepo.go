package courserepo

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

func (r *Repository) GetCourseByID(ctx context.Context, courseID int) (*domain.Course, error) {
	query := `
        SELECT id, instructor_id, title, price, discount_price, created_at
        FROM courses
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, courseID)
	var course domain.Course
	err := row.Scan(&course.ID, &course.InstructorID, &course.Title, &course.Price, &course.DiscountPrice, &course.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get course", zap.Error(err))
		return nil, err
	}
	return &course, nil
}

func (r *Repository) GetCoursesByIDs(ctx context.Context, courseIDs []int) ([]domain.Course, error) {
	query := `
        SELECT id, instructor_id, title, price, discount_price, created_at
        FROM courses
        WHERE id = ANY($1)
    `
	rows, err := r.db.Query(ctx, query, courseIDs)
	if err != nil {
		zap.L().Error("failed to fetch courses", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var courses []domain.Course
	for rows.Next() {
		var course domain.Course
		err := rows.Scan(&course.ID, &course.InstructorID, &course.Title, &course.Price, &course.DiscountPrice, &course.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan course row", zap.Error(err))
			return nil, err
		}
		courses = append(courses, course)
	}

	return courses, nil
}

func (r *Repository) GetTaxRules(ctx context.Context, courseID int) ([]domain.TaxRule, error) {
	query := `
        SELECT t.id, t.name, t.percent
        FROM tax_rules t
        JOIN course_taxes ct ON ct.tax_rule_id = t.id
        WHERE ct.course_id = $1
        ORDER BY t.id
    `
	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		zap.L().Error("failed to fetch tax rules", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var rules []domain.TaxRule
	for rows.Next() {
		var rule domain.TaxRule
		err := rows.Scan(&rule.ID, &rule.Name, &rule.Percent)
		if err != nil {
			zap.L().Error("failed to scan tax rule row", zap.Error(err))
			return nil, err
		}
		rules = append(rules, rule)
	}

	return rules, nil
}
