package pricingservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/learndesk/billing/internal/domain"
	"github.com/learndesk/billing/internal/pg"
)

type CourseRepo interface {
	GetCourseByID(ctx context.Context, courseID int) (*domain.Course, error)
	GetCoursesByIDs(ctx context.Context, courseIDs []int) ([]domain.Course, error)
	GetTaxRules(ctx context.Context, courseID int) ([]domain.TaxRule, error)
}

type PromoRepo interface {
	GetByCode(ctx context.Context, code string) (*domain.PromoCode, error)
	GetByID(ctx context.Context, promoID int) (*domain.PromoCode, error)
}

type CartRepo interface {
	GetCartItems(ctx context.Context, userID int) ([]domain.CartItem, error)
	AddItem(ctx context.Context, userID, courseID int) (*domain.CartItem, error)
	RemoveItem(ctx context.Context, userID, courseID int) error
	SetPromoAll(ctx context.Context, userID int, promoID int) error
	SetPromoForCourses(ctx context.Context, userID int, promoID int, courseIDs []int) error
	ClearAdminPromos(ctx context.Context, userID int) error
}

var (
	ErrCourseNotFound     = errors.New("course not found")
	ErrPromoNotFound      = errors.New("promo code not found")
	ErrPromoInactive      = errors.New("promo code is inactive")
	ErrPromoExpired       = errors.New("promo code is expired")
	ErrPromoExhausted     = errors.New("promo code has no uses left")
	ErrPromoNotApplicable = errors.New("promo code is not applicable to the cart")
)

type Service struct {
	courseRepo CourseRepo
	promoRepo  PromoRepo
	cartRepo   CartRepo
	txManager  pg.TXManager
}

func New(courseRepo CourseRepo, promoRepo PromoRepo, cartRepo CartRepo, txManager pg.TXManager) *Service {
	return &Service{
		courseRepo: courseRepo,
		promoRepo:  promoRepo,
		cartRepo:   cartRepo,
		txManager:  txManager,
	}
}

// PricedCartItem pairs a cart line with its computed breakdown.
type PricedCartItem struct {
	CartItemID int
	CourseID   int
	Title      string
	PromoCode  string
	Breakdown  domain.PriceBreakdown
}

// PromoScope classifies how a promo code landed on a cart.
type PromoScope string

const (
	ScopeAdminWide        PromoScope = "admin-wide"
	ScopeInstructorScoped PromoScope = "instructor-scoped"
)

type ApplyPromoResult struct {
	Code             string
	Scope            PromoScope
	AppliedCourseIDs []int
}

// CoursePrice computes one course's breakdown. The promo code is optional;
// a missing or invalid code degrades to zero discount instead of failing.
func (s *Service) CoursePrice(ctx context.Context, courseID int, promoCode string, asOf time.Time) (*domain.PriceBreakdown, error) {
	course, err := s.courseRepo.GetCourseByID(ctx, courseID)
	if err != nil {
		zap.L().Error("failed to load course", zap.Error(err))
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}

	rules, err := s.courseRepo.GetTaxRules(ctx, courseID)
	if err != nil {
		zap.L().Error("failed to load tax rules", zap.Error(err))
		return nil, err
	}

	var promo *domain.PromoCode
	if promoCode != "" {
		promo, err = s.promoRepo.GetByCode(ctx, promoCode)
		if err != nil {
			zap.L().Error("failed to load promo code", zap.Error(err))
			return nil, err
		}
	}

	breakdown := ComputeCourseBreakdown(course, promo, domain.SumTaxPercent(rules), asOf)
	return &breakdown, nil
}

// PriceCart loads the user's cart and prices every line with the promo
// currently attached to it.
func (s *Service) PriceCart(ctx context.Context, userID int, asOf time.Time) ([]PricedCartItem, domain.CartTotal, error) {
	items, err := s.cartRepo.GetCartItems(ctx, userID)
	if err != nil {
		zap.L().Error("failed to load cart", zap.Error(err))
		return nil, domain.CartTotal{}, err
	}

	priced := make([]PricedCartItem, 0, len(items))
	breakdowns := make([]domain.PriceBreakdown, 0, len(items))
	for _, item := range items {
		course, err := s.courseRepo.GetCourseByID(ctx, item.CourseID)
		if err != nil {
			return nil, domain.CartTotal{}, err
		}
		if course == nil {
			zap.L().Warn("cart references missing course", zap.Int("courseID", item.CourseID))
			continue
		}

		rules, err := s.courseRepo.GetTaxRules(ctx, item.CourseID)
		if err != nil {
			return nil, domain.CartTotal{}, err
		}

		var promo *domain.PromoCode
		if item.PromoCodeID != nil {
			promo, err = s.promoRepo.GetByID(ctx, *item.PromoCodeID)
			if err != nil {
				return nil, domain.CartTotal{}, err
			}
		}

		breakdown := ComputeCourseBreakdown(course, promo, domain.SumTaxPercent(rules), asOf)
		breakdowns = append(breakdowns, breakdown)
		line := PricedCartItem{
			CartItemID: item.ID,
			CourseID:   course.ID,
			Title:      course.Title,
			Breakdown:  breakdown,
		}
		if promo != nil {
			line.PromoCode = promo.Code
		}
		priced = append(priced, line)
	}

	return priced, AggregateCart(breakdowns), nil
}

// ApplyPromoToCart attaches the code to the user's cart. Admin-owned codes
// replace any promo on every line. Instructor-owned codes first strip an
// admin-wide promo from the cart, then land only on their mapped courses;
// other lines keep whatever they had.
func (s *Service) ApplyPromoToCart(ctx context.Context, userID int, code string, asOf time.Time) (*ApplyPromoResult, error) {
	promo, err := s.promoRepo.GetByCode(ctx, code)
	if err != nil {
		zap.L().Error("failed to load promo code", zap.Error(err))
		return nil, err
	}
	if promo == nil {
		return nil, ErrPromoNotFound
	}
	if err := ValidatePromo(promo, asOf); err != nil {
		return nil, err
	}

	items, err := s.cartRepo.GetCartItems(ctx, userID)
	if err != nil {
		zap.L().Error("failed to load cart", zap.Error(err))
		return nil, err
	}

	if promo.OwnerRole == domain.PromoOwnerAdmin {
		if len(items) == 0 {
			return nil, ErrPromoNotApplicable
		}
		if err := s.cartRepo.SetPromoAll(ctx, userID, promo.ID); err != nil {
			return nil, err
		}
		applied := make([]int, 0, len(items))
		for _, item := range items {
			applied = append(applied, item.CourseID)
		}
		return &ApplyPromoResult{Code: promo.Code, Scope: ScopeAdminWide, AppliedCourseIDs: applied}, nil
	}

	var matched []int
	for _, item := range items {
		if promo.AppliesTo(item.CourseID) {
			matched = append(matched, item.CourseID)
		}
	}
	if len(matched) == 0 {
		return nil, ErrPromoNotApplicable
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.cartRepo.ClearAdminPromos(ctx, userID); err != nil {
			return err
		}
		return s.cartRepo.SetPromoForCourses(ctx, userID, promo.ID, matched)
	})
	if err != nil {
		return nil, err
	}

	return &ApplyPromoResult{Code: promo.Code, Scope: ScopeInstructorScoped, AppliedCourseIDs: matched}, nil
}

// AddToCart puts a course into the user's cart; re-adding is a no-op.
func (s *Service) AddToCart(ctx context.Context, userID, courseID int) (*domain.CartItem, error) {
	course, err := s.courseRepo.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}
	return s.cartRepo.AddItem(ctx, userID, courseID)
}

func (s *Service) RemoveFromCart(ctx context.Context, userID, courseID int) error {
	return s.cartRepo.RemoveItem(ctx, userID, courseID)
}
