package coupons

import (
	"context"
	"fmt"
	"time"

	"studio-backoffice/internal/logger"
	"studio-backoffice/internal/models"
)

type CouponDBLayer interface {
	GetCouponByCode(ctx context.Context, code string) (*models.Coupon, error)
	IncrementUsage(ctx context.Context, code string) error
}

// NotRedeemableError reports why a redemption was refused, carrying the
// derived status so the caller can explain it.
type NotRedeemableError struct {
	Code   string
	Status Status
}

func (e *NotRedeemableError) Error() string {
	return fmt.Sprintf("coupon %s is not redeemable: %s", e.Code, e.Status)
}

// CouponView pairs the stored coupon with its derived status block.
type CouponView struct {
	models.Coupon
	Usage UsageInfo `json:"usage"`
}

type CouponService struct {
	DB     CouponDBLayer
	Logger *logger.Logger
	now    func() time.Time
}

func NewCouponService(db CouponDBLayer, log *logger.Logger) *CouponService {
	return &CouponService{DB: db, Logger: log, now: time.Now}
}

// NewCouponServiceWithClock pins the time source for tests.
func NewCouponServiceWithClock(db CouponDBLayer, log *logger.Logger, now func() time.Time) *CouponService {
	return &CouponService{DB: db, Logger: log, now: now}
}

func (s *CouponService) GetCoupon(ctx context.Context, code string) (*CouponView, error) {
	coupon, err := s.DB.GetCouponByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("coupon %s not found: %w", code, err)
	}
	return &CouponView{Coupon: *coupon, Usage: DeriveStatus(*coupon, s.now())}, nil
}

// Redeem increments the usage counter, but only while the derived status is
// active.
func (s *CouponService) Redeem(ctx context.Context, code string) (*CouponView, error) {
	coupon, err := s.DB.GetCouponByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("coupon %s not found: %w", code, err)
	}

	usage := DeriveStatus(*coupon, s.now())
	if usage.Status != StatusActive {
		return nil, &NotRedeemableError{Code: code, Status: usage.Status}
	}

	if err := s.DB.IncrementUsage(ctx, code); err != nil {
		s.Logger.Error("COUPON", fmt.Sprintf("Failed to increment usage for %s: %v", code, err))
		return nil, fmt.Errorf("failed to redeem coupon %s: %w", code, err)
	}

	coupon.UsedCount++
	s.Logger.Info("COUPON", fmt.Sprintf("Redeemed %s (used %d)", code, coupon.UsedCount))
	return &CouponView{Coupon: *coupon, Usage: DeriveStatus(*coupon, s.now())}, nil
}
