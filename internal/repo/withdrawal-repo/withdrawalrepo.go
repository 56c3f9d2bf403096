package withdrawalrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/learndesk/billing/internal/domain"
	"github.com/learndesk/billing/internal/pg"
)

// ErrOutstandingExists is returned when the partial unique index on
// outstanding requests rejects an insert.
var ErrOutstandingExists = errors.New("outstanding withdrawal request exists")

const uniqueViolation = "23505"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const withdrawalColumns = `id, user_id, amount, status, method, account_name, account_number, bank_name, paypal_email, admin_notes, requested_at, processed_at`

func (r *Repository) Create(ctx context.Context, req *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error) {
	query := `
        INSERT INTO withdrawal_requests
            (user_id, amount, status, method, account_name, account_number, bank_name, paypal_email, requested_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		req.UserID, req.Amount, req.Status, req.Method,
		req.Details.AccountName, req.Details.AccountNumber, req.Details.BankName, req.Details.PayPalEmail,
		req.RequestedAt,
	).Scan(&req.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrOutstandingExists
		}
		zap.L().Error("can't save withdrawal request", zap.Error(err))
		return nil, err
	}
	return req, nil
}

func (r *Repository) GetByID(ctx context.Context, requestID int) (*domain.WithdrawalRequest, error) {
	query := `
        SELECT ` + withdrawalColumns + `
        FROM withdrawal_requests
        WHERE id = $1
    `
	return r.scanRequest(r.db.QueryRow(ctx, query, requestID))
}

// GetByIDForUpdate locks the request row for the enclosing transaction so
// that two resolutions of one request are serialized.
func (r *Repository) GetByIDForUpdate(ctx context.Context, requestID int) (*domain.WithdrawalRequest, error) {
	query := `
        SELECT ` + withdrawalColumns + `
        FROM withdrawal_requests
        WHERE id = $1
        FOR UPDATE
    `
	return r.scanRequest(r.db.QueryRow(ctx, query, requestID))
}

func (r *Repository) GetOutstandingByUserID(ctx context.Context, userID int) (*domain.WithdrawalRequest, error) {
	query := `
        SELECT ` + withdrawalColumns + `
        FROM withdrawal_requests
        WHERE user_id = $1 AND status IN ('pending', 'processing')
    `
	return r.scanRequest(r.db.QueryRow(ctx, query, userID))
}

func (r *Repository) scanRequest(row pgx.Row) (*domain.WithdrawalRequest, error) {
	var req domain.WithdrawalRequest
	err := row.Scan(
		&req.ID, &req.UserID, &req.Amount, &req.Status, &req.Method,
		&req.Details.AccountName, &req.Details.AccountNumber, &req.Details.BankName, &req.Details.PayPalEmail,
		&req.AdminNotes, &req.RequestedAt, &req.ProcessedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get withdrawal request", zap.Error(err))
		return nil, err
	}
	return &req, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, requestID int, status domain.WithdrawalStatus, adminNotes string, processedAt time.Time) (*domain.WithdrawalRequest, error) {
	query := `
        UPDATE withdrawal_requests
        SET status = $1, admin_notes = $2, processed_at = $3
        WHERE id = $4
        RETURNING ` + withdrawalColumns + `
    `
	req, err := r.scanRequest(r.db.QueryRow(ctx, query, status, adminNotes, processedAt, requestID))
	if err != nil {
		zap.L().Error("failed to update withdrawal request", zap.Error(err))
		return nil, err
	}
	return req, nil
}

func (r *Repository) GetByUserID(ctx context.Context, userID int) ([]domain.WithdrawalRequest, error) {
	query := `
        SELECT ` + withdrawalColumns + `
        FROM withdrawal_requests
        WHERE user_id = $1
        ORDER BY requested_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawal requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var requests []domain.WithdrawalRequest
	for rows.Next() {
		var req domain.WithdrawalRequest
		err := rows.Scan(
			&req.ID, &req.UserID, &req.Amount, &req.Status, &req.Method,
			&req.Details.AccountName, &req.Details.AccountNumber, &req.Details.BankName, &req.Details.PayPalEmail,
			&req.AdminNotes, &req.RequestedAt, &req.ProcessedAt,
		)
		if err != nil {
			zap.L().Error("failed to scan withdrawal request row", zap.Error(err))
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, nil
}

// SumOutstandingByUserID sums the holds still counted against the user.
func (r *Repository) SumOutstandingByUserID(ctx context.Context, userID int) (decimal.Decimal, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM withdrawal_requests
        WHERE user_id = $1 AND status IN ('pending', 'processing')
    `
	var sum decimal.Decimal
	if err := r.db.QueryRow(ctx, query, userID).Scan(&sum); err != nil {
		zap.L().Error("failed to sum outstanding withdrawals", zap.Error(err))
		return decimal.Zero, err
	}
	return sum, nil
}
