package dto

import (
	"github.com/learndesk/billing/internal/domain"
)

type PriceBreakdownDTO struct {
	CourseID       int    `json:"course_id" example:"42"`
	OriginalPrice  string `json:"original_price" example:"100.00"`
	CourseDiscount string `json:"course_discount" example:"20.00"`
	Subtotal       string `json:"subtotal" example:"80.00"`
	PromoDiscount  string `json:"promo_discount" example:"0.00"`
	TaxableAmount  string `json:"taxable_amount" example:"80.00"`
	TaxPercent     string `json:"tax_percent" example:"10"`
	TaxAmount      string `json:"tax_amount" example:"8.00"`
	Total          string `json:"total" example:"88.00"`
}

func NewPriceBreakdownDTO(b domain.PriceBreakdown) PriceBreakdownDTO {
	return PriceBreakdownDTO{
		CourseID:       b.CourseID,
		OriginalPrice:  b.OriginalPrice.StringFixed(2),
		CourseDiscount: b.CourseDiscount.StringFixed(2),
		Subtotal:       b.Subtotal.StringFixed(2),
		PromoDiscount:  b.PromoDiscount.StringFixed(2),
		TaxableAmount:  b.TaxableAmount.StringFixed(2),
		TaxPercent:     b.TaxPercent.String(),
		TaxAmount:      b.TaxAmount.StringFixed(2),
		Total:          b.Total.StringFixed(2),
	}
}

type CartTotalDTO struct {
	ItemCount      int    `json:"item_count" example:"2"`
	OriginalPrice  string `json:"original_price" example:"200.00"`
	CourseDiscount string `json:"course_discount" example:"40.00"`
	Subtotal       string `json:"subtotal" example:"160.00"`
	PromoDiscount  string `json:"promo_discount" example:"16.00"`
	TaxableAmount  string `json:"taxable_amount" example:"144.00"`
	TaxAmount      string `json:"tax_amount" example:"14.40"`
	Total          string `json:"total" example:"158.40"`
}

func NewCartTotalDTO(t domain.CartTotal) CartTotalDTO {
	return CartTotalDTO{
		ItemCount:      t.ItemCount,
		OriginalPrice:  t.OriginalPrice.StringFixed(2),
		CourseDiscount: t.CourseDiscount.StringFixed(2),
		Subtotal:       t.Subtotal.StringFixed(2),
		PromoDiscount:  t.PromoDiscount.StringFixed(2),
		TaxableAmount:  t.TaxableAmount.StringFixed(2),
		TaxAmount:      t.TaxAmount.StringFixed(2),
		Total:          t.Total.StringFixed(2),
	}
}

type CartItemDTO struct {
	CartItemID int               `json:"cart_item_id" example:"7"`
	CourseID   int               `json:"course_id" example:"42"`
	Title      string            `json:"title" example:"Practical SQL"`
	PromoCode  string            `json:"promo_code,omitempty" example:"SPRING25"`
	Breakdown  PriceBreakdownDTO `json:"breakdown"`
}

type CartResponseDTO struct {
	Items []CartItemDTO `json:"items"`
	Total CartTotalDTO  `json:"total"`
}

type AddCartItemRequestDTO struct {
	CourseID int `json:"course_id" example:"42"`
}

type ApplyPromoRequestDTO struct {
	Code string `json:"code" example:"SPRING25"`
}

type ApplyPromoResponseDTO struct {
	Code             string `json:"code" example:"SPRING25"`
	Scope            string `json:"scope" example:"admin-wide"`
	AppliedCourseIDs []int  `json:"applied_course_ids"`
}
