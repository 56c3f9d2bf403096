package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/learndesk/billing/internal/domain"
	"github.com/learndesk/billing/internal/dto"
	"github.com/learndesk/billing/internal/service/pricingservice"
	"github.com/learndesk/billing/pkg/auth"
	"github.com/learndesk/billing/pkg/utils"
)

type Service interface {
	CoursePrice(ctx context.Context, courseID int, promoCode string, asOf time.Time) (*domain.PriceBreakdown, error)
	PriceCart(ctx context.Context, userID int, asOf time.Time) ([]pricingservice.PricedCartItem, domain.CartTotal, error)
	ApplyPromoToCart(ctx context.Context, userID int, code string, asOf time.Time) (*pricingservice.ApplyPromoResult, error)
	AddToCart(ctx context.Context, userID, courseID int) (*domain.CartItem, error)
	RemoveFromCart(ctx context.Context, userID, courseID int) error
}

type PricingHandler struct {
	pricingService Service
}

func New(pricingService Service) *PricingHandler {
	return &PricingHandler{
		pricingService: pricingService,
	}
}

// GetCoursePrice godoc
//
//	@Summary		Get a course price breakdown
//	@Description	Compute the itemized price of a single course. An invalid or inapplicable promo code contributes zero discount instead of failing.
//	@Tags			Pricing
//	@Produce		json
//	@Param			id		path		int		true	"Course ID"
//	@Param			promo	query		string	false	"Promo code"
//	@Success		200		{object}	dto.PriceBreakdownDTO	"Price breakdown"
//	@Failure		404		{object}	utils.Response			"Course not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/courses/{id}/price [get]
func (h *PricingHandler) GetCoursePrice(w http.ResponseWriter, r *http.Request) {
	courseID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid course id")
		return
	}

	breakdown, err := h.pricingService.CoursePrice(r.Context(), courseID, r.URL.Query().Get("promo"), time.Now())
	if err != nil {
		switch {
		case errors.Is(err, pricingservice.ErrCourseNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPriceBreakdownDTO(*breakdown))
}

// GetCart godoc
//
//	@Summary		Get the priced cart
//	@Description	Price every line in the authenticated user's cart and aggregate the totals. An empty cart yields zero totals.
//	@Tags			Cart
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.CartResponseDTO	"Priced cart"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/user/cart [get]
func (h *PricingHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	items, total, err := h.pricingService.PriceCart(r.Context(), userID, time.Now())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.CartResponseDTO{
		Items: make([]dto.CartItemDTO, len(items)),
		Total: dto.NewCartTotalDTO(total),
	}
	for i, item := range items {
		response.Items[i] = dto.CartItemDTO{
			CartItemID: item.CartItemID,
			CourseID:   item.CourseID,
			Title:      item.Title,
			PromoCode:  item.PromoCode,
			Breakdown:  dto.NewPriceBreakdownDTO(item.Breakdown),
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// AddToCart godoc
//
//	@Summary		Add a course to the cart
//	@Tags			Cart
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AddCartItemRequestDTO	true	"Course to add"
//	@Success		200		{string}	string						"Course added"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		404		{object}	utils.Response				"Course not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/user/cart [post]
func (h *PricingHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.AddCartItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, err := h.pricingService.AddToCart(r.Context(), userID, req.CourseID); err != nil {
		switch {
		case errors.Is(err, pricingservice.ErrCourseNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "course added to cart")
}

// RemoveFromCart godoc
//
//	@Summary		Remove a course from the cart
//	@Tags			Cart
//	@Security		BearerAuth
//	@Produce		json
//	@Param			courseID	path		int		true	"Course ID"
//	@Success		200			{string}	string	"Course removed"
//	@Failure		400			{object}	utils.Response	"Invalid course id"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/user/cart/{courseID} [delete]
func (h *PricingHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	courseID, err := strconv.Atoi(chi.URLParam(r, "courseID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid course id")
		return
	}

	if err := h.pricingService.RemoveFromCart(r.Context(), userID, courseID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "course removed from cart")
}

// ApplyPromo godoc
//
//	@Summary		Apply a promo code to the cart
//	@Description	Admin-owned codes replace the promo on every cart line. Instructor-owned codes strip an admin-wide promo first and land only on their mapped courses.
//	@Tags			Cart
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ApplyPromoRequestDTO	true	"Promo code"
//	@Success		200		{object}	dto.ApplyPromoResponseDTO	"Applied scope and courses"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		404		{object}	utils.Response				"Promo code not found"
//	@Failure		422		{object}	utils.Response				"Promo code invalid or not applicable"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/user/cart/promo [post]
func (h *PricingHandler) ApplyPromo(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.ApplyPromoRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.pricingService.ApplyPromoToCart(r.Context(), userID, req.Code, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, pricingservice.ErrPromoNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, pricingservice.ErrPromoInactive),
			errors.Is(err, pricingservice.ErrPromoExpired),
			errors.Is(err, pricingservice.ErrPromoExhausted),
			errors.Is(err, pricingservice.ErrPromoNotApplicable):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ApplyPromoResponseDTO{
		Code:             result.Code,
		Scope:            string(result.Scope),
		AppliedCourseIDs: result.AppliedCourseIDs,
	})
}
