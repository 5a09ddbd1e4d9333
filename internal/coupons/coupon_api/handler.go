package coupon_api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	coupons "studio-backoffice/internal/coupons/service"
	"studio-backoffice/internal/utils"
)

type Handler struct {
	CouponService *coupons.CouponService
}

func NewHandler(service *coupons.CouponService) *Handler {
	return &Handler{CouponService: service}
}

func writeJSON(w http.ResponseWriter, status int, body utils.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (h *Handler) GetCoupon(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	view, err := h.CouponService.GetCoupon(r.Context(), code)
	if err != nil {
		writeJSON(w, http.StatusNotFound, utils.ErrorResponse("Coupon not found", code))
		return
	}
	writeJSON(w, http.StatusOK, utils.SuccessResponse("Coupon found", view))
}

func (h *Handler) RedeemCoupon(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	view, err := h.CouponService.Redeem(r.Context(), code)
	if err != nil {
		var notRedeemable *coupons.NotRedeemableError
		if errors.As(err, &notRedeemable) {
			writeJSON(w, http.StatusConflict, utils.ErrorResponse(err.Error(), string(notRedeemable.Status)))
			return
		}
		writeJSON(w, http.StatusNotFound, utils.ErrorResponse("Coupon not found", code))
		return
	}
	writeJSON(w, http.StatusOK, utils.SuccessResponse("Coupon redeemed", view))
}
