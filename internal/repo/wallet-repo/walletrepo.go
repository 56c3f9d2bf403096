package walletrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
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

func (r *Repository) GetWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        SELECT id, user_id, balance, created_at
        FROM wallets
        WHERE user_id = $1
    `
	return r.scanWallet(r.db.QueryRow(ctx, query, userID))
}

// GetWalletForUpdate locks the wallet row for the rest of the enclosing
// transaction. Every balance mutation must go through this lock so that
// concurrent mutations on one wallet are serialized.
func (r *Repository) GetWalletForUpdate(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        SELECT id, user_id, balance, created_at
        FROM wallets
        WHERE user_id = $1
        FOR UPDATE
    `
	return r.scanWallet(r.db.QueryRow(ctx, query, userID))
}

func (r *Repository) scanWallet(row pgx.Row) (*domain.Wallet, error) {
	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.UserID, &wallet.Balance, &wallet.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

// CreateWallet inserts the wallet if it does not exist yet and returns the
// row locked for the enclosing transaction. Two concurrent first credits may
// both attempt the insert; the loser's conflict is absorbed and it locks the
// winner's row instead.
func (r *Repository) CreateWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        INSERT INTO wallets (user_id, balance)
        VALUES ($1, 0)
        ON CONFLICT (user_id) DO NOTHING
    `
	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		zap.L().Error("failed to create wallet", zap.Error(err))
		return nil, err
	}
	return r.GetWalletForUpdate(ctx, userID)
}

func (r *Repository) UpdateBalance(ctx context.Context, walletID int, balance decimal.Decimal) error {
	query := `
        UPDATE wallets
        SET balance = $1
        WHERE id = $2
    `
	if _, err := r.db.Exec(ctx, query, balance, walletID); err != nil {
		zap.L().Error("failed to update wallet balance", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CreateTransaction(ctx context.Context, transaction *domain.WalletTransaction) (*domain.WalletTransaction, error) {
	query := `
        INSERT INTO wallet_transactions
            (wallet_id, user_id, direction, category, amount, balance_before, balance_after, description, reference_kind, reference_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id, created_at
    `
	var refKind, refID *string
	if transaction.Reference != nil {
		kind := string(transaction.Reference.Kind)
		refKind = &kind
		refID = &transaction.Reference.ID
	}
	err := r.db.QueryRow(ctx, query,
		transaction.WalletID, transaction.UserID, transaction.Direction, transaction.Category,
		transaction.Amount, transaction.BalanceBefore, transaction.BalanceAfter,
		transaction.Description, refKind, refID,
	).Scan(&transaction.ID, &transaction.CreatedAt)
	if err != nil {
		zap.L().Error("can't save wallet transaction", zap.Error(err))
		return nil, err
	}
	return transaction, nil
}

func (r *Repository) GetTransactionsByUserID(ctx context.Context, userID int) ([]domain.WalletTransaction, error) {
	query := `
        SELECT id, wallet_id, user_id, direction, category, amount, balance_before, balance_after,
               description, reference_kind, reference_id, created_at
        FROM wallet_transactions
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch wallet transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.WalletTransaction
	for rows.Next() {
		var tx domain.WalletTransaction
		var refKind, refID *string
		err := rows.Scan(
			&tx.ID, &tx.WalletID, &tx.UserID, &tx.Direction, &tx.Category,
			&tx.Amount, &tx.BalanceBefore, &tx.BalanceAfter,
			&tx.Description, &refKind, &refID, &tx.CreatedAt,
		)
		if err != nil {
			zap.L().Error("failed to scan wallet transaction row", zap.Error(err))
			return nil, err
		}
		if refKind != nil && refID != nil {
			tx.Reference = &domain.Reference{Kind: domain.ReferenceKind(*refKind), ID: *refID}
		}
		transactions = append(transactions, tx)
	}

	return transactions, nil
}

// SumByDirection returns total credited and debited amounts over the whole
// transaction log of one user.
func (r *Repository) SumByDirection(ctx context.Context, userID int) (credits, debits decimal.Decimal, err error) {
	query := `
        SELECT
            COALESCE(SUM(CASE WHEN direction = 'credit' THEN amount ELSE 0 END), 0),
            COALESCE(SUM(CASE WHEN direction = 'debit' THEN amount ELSE 0 END), 0)
        FROM wallet_transactions
        WHERE user_id = $1
    `
	err = r.db.QueryRow(ctx, query, userID).Scan(&credits, &debits)
	if err != nil {
		zap.L().Error("failed to sum wallet transactions", zap.Error(err))
		return decimal.Zero, decimal.Zero, err
	}
	return credits, debits, nil
}
