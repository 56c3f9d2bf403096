package service

import (
	"github.com/learndesk/billing/internal/handlers/pricing"
	"github.com/learndesk/billing/internal/handlers/wallet"

	"github.com/learndesk/billing/internal/pg"
	"github.com/learndesk/billing/internal/repo"
	"github.com/learndesk/billing/internal/service/pricingservice"
	"github.com/learndesk/billing/internal/service/walletservice"
)

type Services struct {
	PricingService pricing.Service
	WalletService  wallet.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, notifier walletservice.Notifier) *Services {
	pricingService := pricingservice.New(repo.CourseRepo, repo.PromoRepo, repo.CartRepo, txManager)
	walletService := walletservice.New(repo.WalletRepo, repo.WithdrawalRepo, txManager, notifier)

	return &Services{
		PricingService: pricingService,
		WalletService:  walletService,
	}
}
