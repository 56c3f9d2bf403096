package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Course struct {
	ID            int                 `db:"id"`
	InstructorID  int                 `db:"instructor_id"`
	Title         string              `db:"title"`
	Price         decimal.Decimal     `db:"price"`
	DiscountPrice decimal.NullDecimal `db:"discount_price"`
	CreatedAt     time.Time           `db:"created_at"`
}

// EffectivePrice is the displayed price: the discount price when one is set
// and actually lower than the base price, otherwise the base price.
func (c *Course) EffectivePrice() decimal.Decimal {
	if c.DiscountPrice.Valid && c.DiscountPrice.Decimal.LessThan(c.Price) {
		return c.DiscountPrice.Decimal
	}
	return c.Price
}

type TaxRule struct {
	ID      int             `db:"id"`
	Name    string          `db:"name"`
	Percent decimal.Decimal `db:"percent"`
}

// SumTaxPercent sums rule percentages into the single tax percentage applied
// to a course's taxable amount.
func SumTaxPercent(rules []TaxRule) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rules {
		total = total.Add(r.Percent)
	}
	return total
}

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

type PromoOwnerRole string

const (
	PromoOwnerAdmin      PromoOwnerRole = "admin"
	PromoOwnerInstructor PromoOwnerRole = "instructor"
)

type PromoCode struct {
	ID             int             `db:"id"`
	Code           string          `db:"code"`
	DiscountType   DiscountType    `db:"discount_type"`
	DiscountAmount decimal.Decimal `db:"discount_amount"`
	Active         bool            `db:"active"`
	StartsAt       time.Time       `db:"starts_at"`
	EndsAt         time.Time       `db:"ends_at"`
	RemainingUses  *int            `db:"remaining_uses"`
	OwnerRole      PromoOwnerRole  `db:"owner_role"`
	CourseIDs      []int           `db:"-"`
	CreatedAt      time.Time       `db:"created_at"`
}

func (p *PromoCode) InWindow(asOf time.Time) bool {
	return !asOf.Before(p.StartsAt) && !asOf.After(p.EndsAt)
}

func (p *PromoCode) HasUsesLeft() bool {
	return p.RemainingUses == nil || *p.RemainingUses > 0
}

// AppliesTo reports whether the code may discount the given course.
// Admin-owned codes apply anywhere; instructor-owned codes only to their
// mapped courses.
func (p *PromoCode) AppliesTo(courseID int) bool {
	if p.OwnerRole == PromoOwnerAdmin {
		return true
	}
	for _, id := range p.CourseIDs {
		if id == courseID {
			return true
		}
	}
	return false
}

type CartItem struct {
	ID          int       `db:"id"`
	UserID      int       `db:"user_id"`
	CourseID    int       `db:"course_id"`
	PromoCodeID *int      `db:"promo_code_id"`
	AddedAt     time.Time `db:"added_at"`
}

type Wallet struct {
	ID        int             `db:"id"`
	UserID    int             `db:"user_id"`
	Balance   decimal.Decimal `db:"balance"`
	CreatedAt time.Time       `db:"created_at"`
}

type TransactionDirection string

const (
	DirectionCredit TransactionDirection = "credit"
	DirectionDebit  TransactionDirection = "debit"
)

type TransactionCategory string

const (
	CategoryPurchase   TransactionCategory = "purchase"
	CategoryRefund     TransactionCategory = "refund"
	CategoryCommission TransactionCategory = "commission"
	CategoryWithdrawal TransactionCategory = "withdrawal"
	CategoryAdjustment TransactionCategory = "adjustment"
	CategoryReward     TransactionCategory = "reward"
)

type ReferenceKind string

const (
	ReferenceOrder      ReferenceKind = "order"
	ReferenceRefund     ReferenceKind = "refund_request"
	ReferenceWithdrawal ReferenceKind = "withdrawal_request"
	ReferenceCommission ReferenceKind = "commission"
)

// Reference ties a ledger entry to the entity that caused it. The kind tags
// which table the id points into; resolution happens outside this core.
type Reference struct {
	Kind ReferenceKind `db:"reference_kind" json:"kind"`
	ID   string        `db:"reference_id"   json:"id"`
}

type WalletTransaction struct {
	ID            int                  `db:"id"`
	WalletID      int                  `db:"wallet_id"`
	UserID        int                  `db:"user_id"`
	Direction     TransactionDirection `db:"direction"`
	Category      TransactionCategory  `db:"category"`
	Amount        decimal.Decimal      `db:"amount"`
	BalanceBefore decimal.Decimal      `db:"balance_before"`
	BalanceAfter  decimal.Decimal      `db:"balance_after"`
	Description   string               `db:"description"`
	Reference     *Reference           `db:"-"`
	CreatedAt     time.Time            `db:"created_at"`
}

type WithdrawalStatus string

const (
	WithdrawalPending    WithdrawalStatus = "pending"
	WithdrawalApproved   WithdrawalStatus = "approved"
	WithdrawalRejected   WithdrawalStatus = "rejected"
	WithdrawalProcessing WithdrawalStatus = "processing"
	WithdrawalCompleted  WithdrawalStatus = "completed"
)

// Outstanding reports whether the request still holds funds against the
// wallet balance.
func (s WithdrawalStatus) Outstanding() bool {
	return s == WithdrawalPending || s == WithdrawalProcessing
}

type PayoutMethod string

const (
	PayoutBankTransfer PayoutMethod = "bank_transfer"
	PayoutCard         PayoutMethod = "card"
	PayoutPayPal       PayoutMethod = "paypal"
)

type PayoutDetails struct {
	AccountName   string `db:"account_name"   json:"account_name,omitempty"`
	AccountNumber string `db:"account_number" json:"account_number,omitempty"`
	BankName      string `db:"bank_name"      json:"bank_name,omitempty"`
	PayPalEmail   string `db:"paypal_email"   json:"paypal_email,omitempty"`
}

type WithdrawalRequest struct {
	ID          int              `db:"id"`
	UserID      int              `db:"user_id"`
	Amount      decimal.Decimal  `db:"amount"`
	Status      WithdrawalStatus `db:"status"`
	Method      PayoutMethod     `db:"method"`
	Details     PayoutDetails    `db:"-"`
	AdminNotes  string           `db:"admin_notes"`
	RequestedAt time.Time        `db:"requested_at"`
	ProcessedAt *time.Time       `db:"processed_at"`
}
