package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/learndesk/billing/internal/domain"
	"github.com/learndesk/billing/internal/dto"
	"github.com/learndesk/billing/internal/service/walletservice"
	"github.com/learndesk/billing/pkg/auth"
	"github.com/learndesk/billing/pkg/utils"
)

type Service interface {
	BalanceSummary(ctx context.Context, userID int) (*domain.BalanceSummary, error)
	GetTransactions(ctx context.Context, userID int) ([]domain.WalletTransaction, error)
	GetWithdrawals(ctx context.Context, userID int) ([]domain.WithdrawalRequest, error)
	RequestWithdrawal(ctx context.Context, userID int, amount decimal.Decimal, method domain.PayoutMethod, details domain.PayoutDetails) (*domain.WithdrawalRequest, error)
	ResolveWithdrawal(ctx context.Context, requestID int, approve bool, adminNotes string) (*domain.WithdrawalRequest, error)
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// GetSummary godoc
//
//	@Summary		Get the wallet balance summary
//	@Description	Current balance, lifetime credit/debit totals, outstanding withdrawal holds and the amount still available for withdrawal.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceSummaryDTO	"Balance summary"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/wallet [get]
func (h *WalletHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	summary, err := h.walletService.BalanceSummary(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBalanceSummaryDTO(*summary))
}

// GetTransactions godoc
//
//	@Summary		Get the wallet transaction history
//	@Description	Ledger entries for the authenticated user, newest first.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionDTO	"Transaction history"
//	@Success		204	{object}	utils.Response		"No transactions"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/user/wallet/transactions [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	transactions, err := h.walletService.GetTransactions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}

	if len(transactions) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Transactions not found")
		return
	}

	response := make([]dto.TransactionDTO, len(transactions))
	for i, tx := range transactions {
		response[i] = dto.NewTransactionDTO(tx)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Withdraw godoc
//
//	@Summary		Request a withdrawal
//	@Description	Create a withdrawal request; the amount is held against the balance until the request is resolved.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawRequestDTO		true	"Withdrawal request payload"
//	@Success		200		{object}	dto.WithdrawalResponseDTO	"Created request"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		402		{object}	utils.Response				"Insufficient funds"
//	@Failure		409		{object}	utils.Response				"A request is already outstanding"
//	@Failure		422		{object}	utils.Response				"Invalid amount or payout details"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/user/wallet/withdraw [post]
func (h *WalletHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.WithdrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "invalid amount")
		return
	}

	request, err := h.walletService.RequestWithdrawal(r.Context(), userID, amount,
		domain.PayoutMethod(req.Method), domain.PayoutDetails{
			AccountName:   req.AccountName,
			AccountNumber: req.AccountNumber,
			BankName:      req.BankName,
			PayPalEmail:   req.PayPalEmail,
		})
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, walletservice.ErrDuplicatePending):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, walletservice.ErrInvalidAmount),
			errors.Is(err, walletservice.ErrInvalidPayoutDetails):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWithdrawalResponseDTO(*request))
}

// GetWithdrawals godoc
//
//	@Summary		Get withdrawal history
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WithdrawalResponseDTO	"Withdrawal requests"
//	@Success		204	{object}	utils.Response				"No withdrawal requests"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/user/wallet/withdrawals [get]
func (h *WalletHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	withdrawals, err := h.walletService.GetWithdrawals(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch withdrawals")
		return
	}

	if len(withdrawals) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Withdrawals not found")
		return
	}

	response := make([]dto.WithdrawalResponseDTO, len(withdrawals))
	for i, wd := range withdrawals {
		response[i] = dto.NewWithdrawalResponseDTO(wd)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ResolveWithdrawal godoc
//
//	@Summary		Resolve a withdrawal request
//	@Description	Approve or reject a pending withdrawal. Rejection credits the held amount back to the wallet.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Request ID"
//	@Param			request	body		dto.ResolveWithdrawalRequestDTO	true	"Outcome and admin notes"
//	@Success		200		{object}	dto.WithdrawalResponseDTO		"Resolved request"
//	@Failure		400		{object}	utils.Response					"Invalid request"
//	@Failure		404		{object}	utils.Response					"Request not found"
//	@Failure		409		{object}	utils.Response					"Request already processed"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/admin/withdrawals/{id}/resolve [post]
func (h *WalletHandler) ResolveWithdrawal(w http.ResponseWriter, r *http.Request) {
	requestID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request id")
		return
	}

	var req dto.ResolveWithdrawalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Outcome != "approve" && req.Outcome != "reject" {
		utils.RespondWithError(w, http.StatusBadRequest, "outcome must be approve or reject")
		return
	}

	request, err := h.walletService.ResolveWithdrawal(r.Context(), requestID, req.Outcome == "approve", req.AdminNotes)
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrRequestNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, walletservice.ErrAlreadyProcessed):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWithdrawalResponseDTO(*request))
}
