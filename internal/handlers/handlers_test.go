package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/learndesk/billing/docs"
	"github.com/learndesk/billing/internal/handlers/pricing"
	"github.com/learndesk/billing/internal/handlers/wallet"
	"github.com/learndesk/billing/internal/service"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		PricingService: pricing.NewMockService(ctrl),
		WalletService:  wallet.NewMockService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPricingHandler := NewMockPricingHandler(ctrl)
	mockWalletHandler := NewMockWalletHandler(ctrl)

	mockPricingHandler.EXPECT().GetCoursePrice(gomock.Any(), gomock.Any()).AnyTimes()
	mockPricingHandler.EXPECT().GetCart(gomock.Any(), gomock.Any()).AnyTimes()
	mockPricingHandler.EXPECT().AddToCart(gomock.Any(), gomock.Any()).AnyTimes()
	mockPricingHandler.EXPECT().RemoveFromCart(gomock.Any(), gomock.Any()).AnyTimes()
	mockPricingHandler.EXPECT().ApplyPromo(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetSummary(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetTransactions(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().Withdraw(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetWithdrawals(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().ResolveWithdrawal(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		PricingHandler: mockPricingHandler,
		WalletHandler:  mockWalletHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"GET", "/api/courses/1/price", http.StatusOK},
		{"GET", "/api/user/cart", http.StatusUnauthorized},
		{"POST", "/api/user/cart", http.StatusUnauthorized},
		{"DELETE", "/api/user/cart/1", http.StatusUnauthorized},
		{"POST", "/api/user/cart/promo", http.StatusUnauthorized},
		{"GET", "/api/user/wallet", http.StatusUnauthorized},
		{"GET", "/api/user/wallet/transactions", http.StatusUnauthorized},
		{"POST", "/api/user/wallet/withdraw", http.StatusUnauthorized},
		{"GET", "/api/user/wallet/withdrawals", http.StatusUnauthorized},
		{"POST", "/api/admin/withdrawals/1/resolve", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
