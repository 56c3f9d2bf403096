package pricingservice

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/learndesk/billing/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// ValidatePromo checks the code against its validity window as of the given
// time. Reasons are reported as distinct errors so callers can surface an
// actionable message.
func ValidatePromo(promo *domain.PromoCode, asOf time.Time) error {
	if !promo.Active {
		return ErrPromoInactive
	}
	if !promo.InWindow(asOf) {
		return ErrPromoExpired
	}
	if !promo.HasUsesLeft() {
		return ErrPromoExhausted
	}
	return nil
}

// ComputeCourseBreakdown prices a single course. It never fails: a promo
// that is invalid or does not apply to the course contributes zero discount,
// so a "get total" request cannot break on stale client state. Rounding to
// two decimals happens only at tax_amount and total.
func ComputeCourseBreakdown(course *domain.Course, promo *domain.PromoCode, taxPercent decimal.Decimal, asOf time.Time) domain.PriceBreakdown {
	original := course.Price
	effective := course.EffectivePrice()
	if effective.IsNegative() {
		effective = decimal.Zero
	}
	subtotal := effective

	promoDiscount := decimal.Zero
	if promo != nil && ValidatePromo(promo, asOf) == nil && promo.AppliesTo(course.ID) {
		switch promo.DiscountType {
		case domain.DiscountTypePercentage:
			pct := decimal.Min(promo.DiscountAmount, hundred)
			promoDiscount = subtotal.Mul(pct).Div(hundred)
		default:
			promoDiscount = decimal.Min(promo.DiscountAmount, subtotal)
		}
	}

	taxable := subtotal.Sub(promoDiscount)
	taxAmount := taxable.Mul(taxPercent).Div(hundred).Round(2)
	total := taxable.Add(taxAmount).Round(2)

	return domain.PriceBreakdown{
		CourseID:       course.ID,
		OriginalPrice:  original,
		CourseDiscount: original.Sub(effective),
		Subtotal:       subtotal,
		PromoDiscount:  promoDiscount,
		TaxableAmount:  taxable,
		TaxPercent:     taxPercent,
		TaxAmount:      taxAmount,
		Total:          total,
	}
}

// AggregateCart sums breakdowns field by field. An empty cart yields a
// zero-valued total rather than an error so the client can render "0.00".
func AggregateCart(breakdowns []domain.PriceBreakdown) domain.CartTotal {
	total := domain.CartTotal{
		OriginalPrice:  decimal.Zero,
		CourseDiscount: decimal.Zero,
		Subtotal:       decimal.Zero,
		PromoDiscount:  decimal.Zero,
		TaxableAmount:  decimal.Zero,
		TaxAmount:      decimal.Zero,
		Total:          decimal.Zero,
	}
	for _, b := range breakdowns {
		total.ItemCount++
		total.OriginalPrice = total.OriginalPrice.Add(b.OriginalPrice)
		total.CourseDiscount = total.CourseDiscount.Add(b.CourseDiscount)
		total.Subtotal = total.Subtotal.Add(b.Subtotal)
		total.PromoDiscount = total.PromoDiscount.Add(b.PromoDiscount)
		total.TaxableAmount = total.TaxableAmount.Add(b.TaxableAmount)
		total.TaxAmount = total.TaxAmount.Add(b.TaxAmount)
		total.Total = total.Total.Add(b.Total)
	}
	return total
}
