package repo

import (
	"github.com/learndesk/billing/internal/pg"
	cartrepo "github.com/learndesk/billing/internal/repo/cart-repo"
	courserepo "github.com/learndesk/billing/internal/repo/course-repo"
	promorepo "github.com/learndesk/billing/internal/repo/promo-repo"
	walletrepo "github.com/learndesk/billing/internal/repo/wallet-repo"
	withdrawalrepo "github.com/learndesk/billing/internal/repo/withdrawal-repo"
	"github.com/learndesk/billing/internal/service/pricingservice"
	"github.com/learndesk/billing/internal/service/walletservice"
)

type Repositories struct {
	CourseRepo     pricingservice.CourseRepo
	PromoRepo      pricingservice.PromoRepo
	CartRepo       pricingservice.CartRepo
	WalletRepo     walletservice.WalletRepo
	WithdrawalRepo walletservice.WithdrawalRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	courseRepo := courserepo.New(conn)
	promoRepo := promorepo.New(conn)
	cartRepo := cartrepo.New(conn, txManager)
	walletRepo := walletrepo.New(conn)
	withdrawalRepo := withdrawalrepo.New(conn)

	return &Repositories{
		CourseRepo:     courseRepo,
		PromoRepo:      promoRepo,
		CartRepo:       cartRepo,
		WalletRepo:     walletRepo,
		WithdrawalRepo: withdrawalRepo,
	}
}
