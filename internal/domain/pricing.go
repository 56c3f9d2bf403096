package domain

import "github.com/shopspring/decimal"

// PriceBreakdown is the itemized computation of one course's final price.
// It is never persisted; handlers serialize it straight to the client.
type PriceBreakdown struct {
	CourseID       int             `json:"course_id"`
	OriginalPrice  decimal.Decimal `json:"original_price"`
	CourseDiscount decimal.Decimal `json:"course_discount"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	PromoDiscount  decimal.Decimal `json:"promo_discount"`
	TaxableAmount  decimal.Decimal `json:"taxable_amount"`
	TaxPercent     decimal.Decimal `json:"tax_percent"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	Total          decimal.Decimal `json:"total"`
}

// CartTotal is the field-wise sum of the breakdowns in a cart.
type CartTotal struct {
	ItemCount      int             `json:"item_count"`
	OriginalPrice  decimal.Decimal `json:"original_price"`
	CourseDiscount decimal.Decimal `json:"course_discount"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	PromoDiscount  decimal.Decimal `json:"promo_discount"`
	TaxableAmount  decimal.Decimal `json:"taxable_amount"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	Total          decimal.Decimal `json:"total"`
}

// BalanceSummary is the read-side view over a wallet and its pending holds.
type BalanceSummary struct {
	Balance                decimal.Decimal `json:"balance"`
	TotalCredits           decimal.Decimal `json:"total_credits"`
	TotalDebits            decimal.Decimal `json:"total_debits"`
	PendingWithdrawals     decimal.Decimal `json:"pending_withdrawals"`
	AvailableForWithdrawal decimal.Decimal `json:"available_for_withdrawal"`
}
