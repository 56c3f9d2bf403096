package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/learndesk/billing/internal/pg"
	"github.com/learndesk/billing/internal/repo"
	"github.com/learndesk/billing/internal/service/pricingservice"
	"github.com/learndesk/billing/internal/service/walletservice"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repos := &repo.Repositories{
		CourseRepo:     pricingservice.NewMockCourseRepo(ctrl),
		PromoRepo:      pricingservice.NewMockPromoRepo(ctrl),
		CartRepo:       pricingservice.NewMockCartRepo(ctrl),
		WalletRepo:     walletservice.NewMockWalletRepo(ctrl),
		WithdrawalRepo: walletservice.NewMockWithdrawalRepo(ctrl),
	}
	txManager := pg.NewMockTXManager(ctrl)
	notifier := walletservice.NewMockNotifier(ctrl)

	services := New(repos, txManager, notifier)

	assert.NotNil(t, services.PricingService)
	assert.NotNil(t, services.WalletService)
}
