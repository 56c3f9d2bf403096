package dto

import (
	"time"

	"github.com/learndesk/billing/internal/domain"
)

type BalanceSummaryDTO struct {
	Balance                string `json:"balance" example:"120.00"`
	TotalCredits           string `json:"total_credits" example:"500.00"`
	TotalDebits            string `json:"total_debits" example:"380.00"`
	PendingWithdrawals     string `json:"pending_withdrawals" example:"0.00"`
	AvailableForWithdrawal string `json:"available_for_withdrawal" example:"120.00"`
}

func NewBalanceSummaryDTO(s domain.BalanceSummary) BalanceSummaryDTO {
	return BalanceSummaryDTO{
		Balance:                s.Balance.StringFixed(2),
		TotalCredits:           s.TotalCredits.StringFixed(2),
		TotalDebits:            s.TotalDebits.StringFixed(2),
		PendingWithdrawals:     s.PendingWithdrawals.StringFixed(2),
		AvailableForWithdrawal: s.AvailableForWithdrawal.StringFixed(2),
	}
}

type ReferenceDTO struct {
	Kind string `json:"kind" example:"withdrawal_request"`
	ID   string `json:"id" example:"15"`
}

type TransactionDTO struct {
	ID            int           `json:"id" example:"101"`
	Direction     string        `json:"direction" example:"credit"`
	Category      string        `json:"category" example:"commission"`
	Amount        string        `json:"amount" example:"25.00"`
	BalanceBefore string        `json:"balance_before" example:"95.00"`
	BalanceAfter  string        `json:"balance_after" example:"120.00"`
	Description   string        `json:"description" example:"commission for course sale"`
	Reference     *ReferenceDTO `json:"reference,omitempty"`
	CreatedAt     time.Time     `json:"created_at" example:"2025-12-09T16:09:57+03:00"`
}

func NewTransactionDTO(tx domain.WalletTransaction) TransactionDTO {
	out := TransactionDTO{
		ID:            tx.ID,
		Direction:     string(tx.Direction),
		Category:      string(tx.Category),
		Amount:        tx.Amount.StringFixed(2),
		BalanceBefore: tx.BalanceBefore.StringFixed(2),
		BalanceAfter:  tx.BalanceAfter.StringFixed(2),
		Description:   tx.Description,
		CreatedAt:     tx.CreatedAt,
	}
	if tx.Reference != nil {
		out.Reference = &ReferenceDTO{Kind: string(tx.Reference.Kind), ID: tx.Reference.ID}
	}
	return out
}

type WithdrawRequestDTO struct {
	Amount        string `json:"amount" example:"100.00"`
	Method        string `json:"method" example:"card"`
	AccountName   string `json:"account_name,omitempty" example:"J. Doe"`
	AccountNumber string `json:"account_number,omitempty" example:"4561261212345467"`
	BankName      string `json:"bank_name,omitempty" example:"First National"`
	PayPalEmail   string `json:"paypal_email,omitempty" example:"j.doe@example.com"`
}

type WithdrawalResponseDTO struct {
	ID          int        `json:"id" example:"15"`
	Amount      string     `json:"amount" example:"100.00"`
	Status      string     `json:"status" example:"pending"`
	Method      string     `json:"method" example:"card"`
	AdminNotes  string     `json:"admin_notes,omitempty"`
	RequestedAt time.Time  `json:"requested_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
}

func NewWithdrawalResponseDTO(req domain.WithdrawalRequest) WithdrawalResponseDTO {
	return WithdrawalResponseDTO{
		ID:          req.ID,
		Amount:      req.Amount.StringFixed(2),
		Status:      string(req.Status),
		Method:      string(req.Method),
		AdminNotes:  req.AdminNotes,
		RequestedAt: req.RequestedAt,
		ProcessedAt: req.ProcessedAt,
	}
}

type ResolveWithdrawalRequestDTO struct {
	Outcome    string `json:"outcome" example:"approve"`
	AdminNotes string `json:"admin_notes,omitempty" example:"verified payout details"`
}
