package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/learndesk/billing/docs"
	pricinghandlers "github.com/learndesk/billing/internal/handlers/pricing"
	wallethandlers "github.com/learndesk/billing/internal/handlers/wallet"
	"github.com/learndesk/billing/internal/service"
	"github.com/learndesk/billing/pkg/auth"
)

type PricingHandler interface {
	GetCoursePrice(w http.ResponseWriter, r *http.Request)
	GetCart(w http.ResponseWriter, r *http.Request)
	AddToCart(w http.ResponseWriter, r *http.Request)
	RemoveFromCart(w http.ResponseWriter, r *http.Request)
	ApplyPromo(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetSummary(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
	ResolveWithdrawal(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	PricingHandler PricingHandler
	WalletHandler  WalletHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		PricingHandler: pricinghandlers.New(s.PricingService),
		WalletHandler:  wallethandlers.New(s.WalletService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Get("/api/courses/{id}/price", h.PricingHandler.GetCoursePrice)

	r.Route("/api/user", func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.PricingHandler.GetCart)
			r.Post("/", h.PricingHandler.AddToCart)
			r.Delete("/{courseID}", h.PricingHandler.RemoveFromCart)
			r.Post("/promo", h.PricingHandler.ApplyPromo)
		})
		r.Route("/wallet", func(r chi.Router) {
			r.Get("/", h.WalletHandler.GetSummary)
			r.Get("/transactions", h.WalletHandler.GetTransactions)
			r.Post("/withdraw", h.WalletHandler.Withdraw)
			r.Get("/withdrawals", h.WalletHandler.GetWithdrawals)
		})
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(auth.AuthMiddleware, auth.AdminMiddleware)
		r.Post("/withdrawals/{id}/resolve", h.WalletHandler.ResolveWithdrawal)
	})

	return r
}
