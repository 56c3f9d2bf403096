package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/learndesk/billing/internal/domain"
	"github.com/learndesk/billing/internal/dto"
	"github.com/learndesk/billing/internal/service/walletservice"
	"github.com/learndesk/billing/pkg/auth"
	"github.com/learndesk/billing/pkg/utils"
)

func NewMock(t *testing.T) (*WalletHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func withUser(req *http.Request, userID int) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, userID))
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGetSummaryHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Summary returned", func(t *testing.T) {
		service.EXPECT().BalanceSummary(gomock.Any(), 1).Return(&domain.BalanceSummary{
			Balance:                dec("120"),
			TotalCredits:           dec("500"),
			TotalDebits:            dec("380"),
			PendingWithdrawals:     dec("40"),
			AvailableForWithdrawal: dec("80"),
		}, nil)

		req := withUser(httptest.NewRequest("GET", "/api/user/wallet", nil), 1)
		rr := httptest.NewRecorder()

		handler.GetSummary(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp dto.BalanceSummaryDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "120.00", resp.Balance)
		assert.Equal(t, "80.00", resp.AvailableForWithdrawal)
	})

	t.Run("Internal error", func(t *testing.T) {
		service.EXPECT().BalanceSummary(gomock.Any(), 1).Return(nil, errors.New("db down"))

		req := withUser(httptest.NewRequest("GET", "/api/user/wallet", nil), 1)
		rr := httptest.NewRecorder()

		handler.GetSummary(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestGetTransactionsHandler(t *testing.T) {
	handler, service := NewMock(t)
	now := time.Now()

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "Transactions returned",
			prepareMock: func() {
				service.EXPECT().GetTransactions(gomock.Any(), 1).Return([]domain.WalletTransaction{
					{
						ID: 2, Direction: domain.DirectionCredit, Category: domain.CategoryWithdrawal,
						Amount: dec("100"), BalanceBefore: dec("0"), BalanceAfter: dec("100"),
						Reference: &domain.Reference{Kind: domain.ReferenceWithdrawal, ID: "3"},
						CreatedAt: now,
					},
					{
						ID: 1, Direction: domain.DirectionDebit, Category: domain.CategoryPurchase,
						Amount: dec("30"), BalanceBefore: dec("130"), BalanceAfter: dec("100"),
						CreatedAt: now.Add(-time.Hour),
					},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name: "No transactions",
			prepareMock: func() {
				service.EXPECT().GetTransactions(gomock.Any(), 1).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Internal error",
			prepareMock: func() {
				service.EXPECT().GetTransactions(gomock.Any(), 1).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withUser(httptest.NewRequest("GET", "/api/user/wallet/transactions", nil), 1)
			rr := httptest.NewRecorder()

			handler.GetTransactions(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				var resp []dto.TransactionDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Len(t, resp, tt.expectedLen)
				assert.Equal(t, "withdrawal_request", resp[0].Reference.Kind)
				assert.Nil(t, resp[1].Reference)
			}
		})
	}
}

func TestWithdrawHandler(t *testing.T) {
	handler, service := NewMock(t)
	now := time.Now()

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Request created",
			body: `{"amount":"100.00","method":"paypal","paypal_email":"user@example.com"}`,
			prepareMock: func() {
				service.EXPECT().RequestWithdrawal(gomock.Any(), 1, dec("100.00"), domain.PayoutPayPal,
					domain.PayoutDetails{PayPalEmail: "user@example.com"}).
					Return(&domain.WithdrawalRequest{
						ID: 3, UserID: 1, Amount: dec("100"), Status: domain.WithdrawalPending,
						Method: domain.PayoutPayPal, RequestedAt: now,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Insufficient funds",
			body: `{"amount":"500","method":"paypal","paypal_email":"user@example.com"}`,
			prepareMock: func() {
				service.EXPECT().RequestWithdrawal(gomock.Any(), 1, dec("500"), domain.PayoutPayPal, gomock.Any()).
					Return(nil, walletservice.ErrInsufficientFunds)
			},
			expectedCode:  http.StatusPaymentRequired,
			expectedError: "insufficient funds",
		},
		{
			name: "Duplicate outstanding request",
			body: `{"amount":"50","method":"paypal","paypal_email":"user@example.com"}`,
			prepareMock: func() {
				service.EXPECT().RequestWithdrawal(gomock.Any(), 1, dec("50"), domain.PayoutPayPal, gomock.Any()).
					Return(nil, walletservice.ErrDuplicatePending)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "a withdrawal request is already outstanding",
		},
		{
			name: "Invalid payout details",
			body: `{"amount":"50","method":"card","account_number":"not-a-card"}`,
			prepareMock: func() {
				service.EXPECT().RequestWithdrawal(gomock.Any(), 1, dec("50"), domain.PayoutCard, gomock.Any()).
					Return(nil, walletservice.ErrInvalidPayoutDetails)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "invalid payout details",
		},
		{
			name: "Non-positive amount",
			body: `{"amount":"-5","method":"paypal","paypal_email":"user@example.com"}`,
			prepareMock: func() {
				service.EXPECT().RequestWithdrawal(gomock.Any(), 1, dec("-5"), domain.PayoutPayPal, gomock.Any()).
					Return(nil, walletservice.ErrInvalidAmount)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "amount must be positive",
		},
		{
			name:          "Unparseable amount",
			body:          `{"amount":"abc","method":"paypal"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "invalid amount",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withUser(httptest.NewRequest("POST", "/api/user/wallet/withdraw", bytes.NewReader([]byte(tt.body))), 1)
			rr := httptest.NewRecorder()

			handler.Withdraw(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp dto.WithdrawalResponseDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, "pending", resp.Status)
				assert.Equal(t, "100.00", resp.Amount)
			}
		})
	}
}

func TestGetWithdrawalsHandler(t *testing.T) {
	handler, service := NewMock(t)
	now := time.Now()

	t.Run("Withdrawals returned", func(t *testing.T) {
		service.EXPECT().GetWithdrawals(gomock.Any(), 1).Return([]domain.WithdrawalRequest{
			{ID: 4, UserID: 1, Amount: dec("50"), Status: domain.WithdrawalPending, Method: domain.PayoutPayPal, RequestedAt: now},
			{ID: 3, UserID: 1, Amount: dec("100"), Status: domain.WithdrawalCompleted, Method: domain.PayoutPayPal, RequestedAt: now.Add(-24 * time.Hour), ProcessedAt: &now},
		}, nil)

		req := withUser(httptest.NewRequest("GET", "/api/user/wallet/withdrawals", nil), 1)
		rr := httptest.NewRecorder()

		handler.GetWithdrawals(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp []dto.WithdrawalResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Len(t, resp, 2)
		assert.Equal(t, "completed", resp[1].Status)
	})

	t.Run("No withdrawals", func(t *testing.T) {
		service.EXPECT().GetWithdrawals(gomock.Any(), 1).Return(nil, nil)

		req := withUser(httptest.NewRequest("GET", "/api/user/wallet/withdrawals", nil), 1)
		rr := httptest.NewRecorder()

		handler.GetWithdrawals(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}

func TestResolveWithdrawalHandler(t *testing.T) {
	handler, service := NewMock(t)
	now := time.Now()

	tests := []struct {
		name          string
		requestID     string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:      "Approved",
			requestID: "3",
			body:      `{"outcome":"approve","admin_notes":"ok"}`,
			prepareMock: func() {
				service.EXPECT().ResolveWithdrawal(gomock.Any(), 3, true, "ok").Return(&domain.WithdrawalRequest{
					ID: 3, UserID: 1, Amount: dec("100"), Status: domain.WithdrawalApproved,
					Method: domain.PayoutPayPal, AdminNotes: "ok", RequestedAt: now, ProcessedAt: &now,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:      "Rejected",
			requestID: "3",
			body:      `{"outcome":"reject","admin_notes":"no"}`,
			prepareMock: func() {
				service.EXPECT().ResolveWithdrawal(gomock.Any(), 3, false, "no").Return(&domain.WithdrawalRequest{
					ID: 3, UserID: 1, Amount: dec("100"), Status: domain.WithdrawalRejected,
					Method: domain.PayoutPayPal, AdminNotes: "no", RequestedAt: now, ProcessedAt: &now,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:      "Request not found",
			requestID: "9",
			body:      `{"outcome":"approve"}`,
			prepareMock: func() {
				service.EXPECT().ResolveWithdrawal(gomock.Any(), 9, true, "").Return(nil, walletservice.ErrRequestNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "withdrawal request not found",
		},
		{
			name:      "Already processed",
			requestID: "3",
			body:      `{"outcome":"reject"}`,
			prepareMock: func() {
				service.EXPECT().ResolveWithdrawal(gomock.Any(), 3, false, "").Return(nil, walletservice.ErrAlreadyProcessed)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "withdrawal request already processed",
		},
		{
			name:          "Unknown outcome",
			requestID:     "3",
			body:          `{"outcome":"maybe"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "outcome must be approve or reject",
		},
		{
			name:          "Invalid request id",
			requestID:     "abc",
			body:          `{"outcome":"approve"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/admin/withdrawals/"+tt.requestID+"/resolve", bytes.NewReader([]byte(tt.body)))
			req = withURLParam(req, "id", tt.requestID)
			rr := httptest.NewRecorder()

			handler.ResolveWithdrawal(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}
