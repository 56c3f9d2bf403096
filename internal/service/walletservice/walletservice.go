package walletservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/learndesk/billing/internal/domain"
	"github.com/learndesk/billing/internal/notify"
	"github.com/learndesk/billing/internal/pg"
	withdrawalrepo "github.com/learndesk/billing/internal/repo/withdrawal-repo"
	"github.com/learndesk/billing/pkg/validate"
)

type WalletRepo interface {
	GetWallet(ctx context.Context, userID int) (*domain.Wallet, error)
	GetWalletForUpdate(ctx context.Context, userID int) (*domain.Wallet, error)
	CreateWallet(ctx context.Context, userID int) (*domain.Wallet, error)
	UpdateBalance(ctx context.Context, walletID int, balance decimal.Decimal) error
	CreateTransaction(ctx context.Context, transaction *domain.WalletTransaction) (*domain.WalletTransaction, error)
	GetTransactionsByUserID(ctx context.Context, userID int) ([]domain.WalletTransaction, error)
	SumByDirection(ctx context.Context, userID int) (credits, debits decimal.Decimal, err error)
}

type WithdrawalRepo interface {
	Create(ctx context.Context, req *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error)
	GetByID(ctx context.Context, requestID int) (*domain.WithdrawalRequest, error)
	GetByIDForUpdate(ctx context.Context, requestID int) (*domain.WithdrawalRequest, error)
	GetOutstandingByUserID(ctx context.Context, userID int) (*domain.WithdrawalRequest, error)
	GetByUserID(ctx context.Context, userID int) ([]domain.WithdrawalRequest, error)
	SumOutstandingByUserID(ctx context.Context, userID int) (decimal.Decimal, error)
	UpdateStatus(ctx context.Context, requestID int, status domain.WithdrawalStatus, adminNotes string, processedAt time.Time) (*domain.WithdrawalRequest, error)
}

type Notifier interface {
	Publish(event notify.Event)
}

var (
	ErrInvalidAmount        = errors.New("amount must be positive")
	ErrInvalidPayoutDetails = errors.New("invalid payout details")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrDuplicatePending     = errors.New("a withdrawal request is already outstanding")
	ErrRequestNotFound      = errors.New("withdrawal request not found")
	ErrAlreadyProcessed     = errors.New("withdrawal request already processed")
)

type Service struct {
	walletRepo     WalletRepo
	withdrawalRepo WithdrawalRepo
	txManager      pg.TXManager
	notifier       Notifier
}

func New(walletRepo WalletRepo, withdrawalRepo WithdrawalRepo, txManager pg.TXManager, notifier Notifier) *Service {
	return &Service{
		walletRepo:     walletRepo,
		withdrawalRepo: withdrawalRepo,
		txManager:      txManager,
		notifier:       notifier,
	}
}

// Credit adds funds to the user's wallet and appends the ledger entry in one
// transaction. A wallet is created on first credit.
func (s *Service) Credit(ctx context.Context, userID int, amount decimal.Decimal, category domain.TransactionCategory, description string, ref *domain.Reference) (*domain.WalletTransaction, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	var transaction *domain.WalletTransaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		wallet, err := s.lockWallet(ctx, userID, true)
		if err != nil {
			return err
		}
		transaction, err = s.applyMutation(ctx, wallet, amount, domain.DirectionCredit, category, description, ref)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Publish(notify.NewEvent(notify.EventCredited, userID, category, amount, transaction.BalanceAfter))
	return transaction, nil
}

// Debit removes funds from the user's wallet. It fails with
// ErrInsufficientFunds when the balance does not cover the amount.
func (s *Service) Debit(ctx context.Context, userID int, amount decimal.Decimal, category domain.TransactionCategory, description string, ref *domain.Reference) (*domain.WalletTransaction, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	var transaction *domain.WalletTransaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		wallet, err := s.lockWallet(ctx, userID, false)
		if err != nil {
			return err
		}
		if wallet == nil || wallet.Balance.LessThan(amount) {
			return ErrInsufficientFunds
		}
		transaction, err = s.applyMutation(ctx, wallet, amount, domain.DirectionDebit, category, description, ref)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Publish(notify.NewEvent(notify.EventDebited, userID, category, amount, transaction.BalanceAfter))
	return transaction, nil
}

// lockWallet loads the wallet row under FOR UPDATE; with create set, a
// missing wallet is created first so the insert itself serializes access.
func (s *Service) lockWallet(ctx context.Context, userID int, create bool) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetWalletForUpdate(ctx, userID)
	if err != nil {
		zap.L().Error("failed to lock wallet", zap.Error(err))
		return nil, err
	}
	if wallet == nil && create {
		wallet, err = s.walletRepo.CreateWallet(ctx, userID)
		if err != nil {
			zap.L().Error("failed to create wallet", zap.Error(err))
			return nil, err
		}
	}
	return wallet, nil
}

// applyMutation performs the balance write and the ledger append. Callers
// must hold the wallet row lock.
func (s *Service) applyMutation(ctx context.Context, wallet *domain.Wallet, amount decimal.Decimal, direction domain.TransactionDirection, category domain.TransactionCategory, description string, ref *domain.Reference) (*domain.WalletTransaction, error) {
	before := wallet.Balance
	var after decimal.Decimal
	if direction == domain.DirectionCredit {
		after = before.Add(amount)
	} else {
		after = before.Sub(amount)
	}

	if err := s.walletRepo.UpdateBalance(ctx, wallet.ID, after); err != nil {
		zap.L().Error("failed to update wallet balance", zap.Error(err))
		return nil, err
	}

	transaction := &domain.WalletTransaction{
		WalletID:      wallet.ID,
		UserID:        wallet.UserID,
		Direction:     direction,
		Category:      category,
		Amount:        amount,
		BalanceBefore: before,
		BalanceAfter:  after,
		Description:   description,
		Reference:     ref,
	}
	transaction, err := s.walletRepo.CreateTransaction(ctx, transaction)
	if err != nil {
		zap.L().Error("failed to record wallet transaction", zap.Error(err))
		return nil, err
	}
	wallet.Balance = after
	return transaction, nil
}

// RequestWithdrawal creates a pending request and immediately lowers the
// balance by the requested amount. The hold is the lowered balance itself;
// a ledger entry appears only if the request is later rejected.
func (s *Service) RequestWithdrawal(ctx context.Context, userID int, amount decimal.Decimal, method domain.PayoutMethod, details domain.PayoutDetails) (*domain.WithdrawalRequest, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if err := validatePayoutDetails(method, details); err != nil {
		return nil, err
	}

	var request *domain.WithdrawalRequest
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		wallet, err := s.lockWallet(ctx, userID, false)
		if err != nil {
			return err
		}
		if wallet == nil || wallet.Balance.LessThan(amount) {
			return ErrInsufficientFunds
		}

		outstanding, err := s.withdrawalRepo.GetOutstandingByUserID(ctx, userID)
		if err != nil {
			return err
		}
		if outstanding != nil {
			return ErrDuplicatePending
		}

		request, err = s.withdrawalRepo.Create(ctx, &domain.WithdrawalRequest{
			UserID:      userID,
			Amount:      amount,
			Status:      domain.WithdrawalPending,
			Method:      method,
			Details:     details,
			RequestedAt: time.Now(),
		})
		if err != nil {
			if errors.Is(err, withdrawalrepo.ErrOutstandingExists) {
				return ErrDuplicatePending
			}
			return err
		}

		return s.walletRepo.UpdateBalance(ctx, wallet.ID, wallet.Balance.Sub(amount))
	})
	if err != nil {
		return nil, err
	}

	return request, nil
}

func validatePayoutDetails(method domain.PayoutMethod, details domain.PayoutDetails) error {
	switch method {
	case domain.PayoutBankTransfer:
		if details.AccountName == "" || details.AccountNumber == "" || details.BankName == "" {
			return ErrInvalidPayoutDetails
		}
	case domain.PayoutCard:
		if !validate.IsLuhn(details.AccountNumber) {
			return ErrInvalidPayoutDetails
		}
	case domain.PayoutPayPal:
		if !strings.Contains(details.PayPalEmail, "@") {
			return ErrInvalidPayoutDetails
		}
	default:
		return ErrInvalidPayoutDetails
	}
	return nil
}

// ResolveWithdrawal approves or rejects a pending request. Rejection credits
// the held amount back through the ledger; approval only moves the status,
// the hold already removed the funds.
func (s *Service) ResolveWithdrawal(ctx context.Context, requestID int, approve bool, adminNotes string) (*domain.WithdrawalRequest, error) {
	var (
		request    *domain.WithdrawalRequest
		newBalance decimal.Decimal
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		req, err := s.withdrawalRepo.GetByIDForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if req == nil {
			return ErrRequestNotFound
		}
		if req.Status != domain.WithdrawalPending {
			return ErrAlreadyProcessed
		}

		status := domain.WithdrawalRejected
		if approve {
			status = domain.WithdrawalApproved
		}
		request, err = s.withdrawalRepo.UpdateStatus(ctx, requestID, status, adminNotes, time.Now())
		if err != nil {
			return err
		}
		if approve {
			wallet, err := s.walletRepo.GetWallet(ctx, req.UserID)
			if err != nil {
				return err
			}
			if wallet != nil {
				newBalance = wallet.Balance
			}
		} else {
			wallet, err := s.lockWallet(ctx, req.UserID, true)
			if err != nil {
				return err
			}
			transaction, err := s.applyMutation(ctx, wallet, req.Amount, domain.DirectionCredit, domain.CategoryWithdrawal,
				fmt.Sprintf("refund for rejected withdrawal request #%d", req.ID),
				&domain.Reference{Kind: domain.ReferenceWithdrawal, ID: strconv.Itoa(req.ID)},
			)
			if err != nil {
				return err
			}
			newBalance = transaction.BalanceAfter
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Publish(notify.NewEvent(notify.EventWithdrawalResolved, request.UserID, domain.CategoryWithdrawal, request.Amount, newBalance))
	return request, nil
}

// MarkWithdrawalProcessing records that an external payout has started.
func (s *Service) MarkWithdrawalProcessing(ctx context.Context, requestID int) (*domain.WithdrawalRequest, error) {
	return s.advanceWithdrawal(ctx, requestID, domain.WithdrawalProcessing,
		domain.WithdrawalPending, domain.WithdrawalApproved)
}

// MarkWithdrawalCompleted records that the external payout finished.
func (s *Service) MarkWithdrawalCompleted(ctx context.Context, requestID int) (*domain.WithdrawalRequest, error) {
	return s.advanceWithdrawal(ctx, requestID, domain.WithdrawalCompleted, domain.WithdrawalProcessing)
}

func (s *Service) advanceWithdrawal(ctx context.Context, requestID int, to domain.WithdrawalStatus, from ...domain.WithdrawalStatus) (*domain.WithdrawalRequest, error) {
	var request *domain.WithdrawalRequest
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		req, err := s.withdrawalRepo.GetByIDForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if req == nil {
			return ErrRequestNotFound
		}
		allowed := false
		for _, st := range from {
			if req.Status == st {
				allowed = true
			}
		}
		if !allowed {
			return ErrAlreadyProcessed
		}
		request, err = s.withdrawalRepo.UpdateStatus(ctx, requestID, to, req.AdminNotes, time.Now())
		return err
	})
	if err != nil {
		return nil, err
	}
	return request, nil
}

// BalanceSummary aggregates the ledger and outstanding holds into the
// read-side view. A user without a wallet gets all zeros.
func (s *Service) BalanceSummary(ctx context.Context, userID int) (*domain.BalanceSummary, error) {
	wallet, err := s.walletRepo.GetWallet(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}

	balance := decimal.Zero
	if wallet != nil {
		balance = wallet.Balance
	}

	credits, debits, err := s.walletRepo.SumByDirection(ctx, userID)
	if err != nil {
		return nil, err
	}

	pending, err := s.withdrawalRepo.SumOutstandingByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	available := balance.Sub(pending)
	if available.IsNegative() {
		available = decimal.Zero
	}

	return &domain.BalanceSummary{
		Balance:                balance,
		TotalCredits:           credits,
		TotalDebits:            debits,
		PendingWithdrawals:     pending,
		AvailableForWithdrawal: available,
	}, nil
}

func (s *Service) GetTransactions(ctx context.Context, userID int) ([]domain.WalletTransaction, error) {
	transactions, err := s.walletRepo.GetTransactionsByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch wallet transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

func (s *Service) GetWithdrawals(ctx context.Context, userID int) ([]domain.WithdrawalRequest, error) {
	withdrawals, err := s.withdrawalRepo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}
