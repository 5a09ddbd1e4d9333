package coupons_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	coupons "studio-backoffice/internal/coupons/service"
	"studio-backoffice/internal/logger"
	"studio-backoffice/internal/models"
)

type MockCouponDBLayer struct {
	mock.Mock
}

func (m *MockCouponDBLayer) GetCouponByCode(ctx context.Context, code string) (*models.Coupon, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Coupon), args.Error(1)
}

func (m *MockCouponDBLayer) IncrementUsage(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func fixedNow() time.Time {
	return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
}

func activeCoupon() *models.Coupon {
	maxUses := 10
	until := fixedNow().AddDate(0, 1, 0)
	return &models.Coupon{
		Code:       "SPRING15",
		IsActive:   true,
		ValidFrom:  fixedNow().AddDate(0, -1, 0),
		ValidUntil: &until,
		UsedCount:  3,
		MaxUses:    &maxUses,
	}
}

func TestGetCouponDerivesStatus(t *testing.T) {
	mockDB := new(MockCouponDBLayer)
	svc := coupons.NewCouponServiceWithClock(mockDB, logger.NewNop(), fixedNow)

	mockDB.On("GetCouponByCode", mock.Anything, "SPRING15").Return(activeCoupon(), nil)

	view, err := svc.GetCoupon(context.Background(), "SPRING15")

	assert.NoError(t, err)
	assert.Equal(t, coupons.StatusActive, view.Usage.Status)
	assert.Equal(t, 7, *view.Usage.RemainingUses)
}

func TestRedeemActiveCoupon(t *testing.T) {
	mockDB := new(MockCouponDBLayer)
	svc := coupons.NewCouponServiceWithClock(mockDB, logger.NewNop(), fixedNow)

	mockDB.On("GetCouponByCode", mock.Anything, "SPRING15").Return(activeCoupon(), nil)
	mockDB.On("IncrementUsage", mock.Anything, "SPRING15").Return(nil)

	view, err := svc.Redeem(context.Background(), "SPRING15")

	assert.NoError(t, err)
	assert.Equal(t, 4, view.UsedCount)
	assert.Equal(t, 6, *view.Usage.RemainingUses)
	mockDB.AssertExpectations(t)
}

func TestRedeemRefusedWhenNotActive(t *testing.T) {
	mockDB := new(MockCouponDBLayer)
	svc := coupons.NewCouponServiceWithClock(mockDB, logger.NewNop(), fixedNow)

	c := activeCoupon()
	c.UsedCount = 10
	mockDB.On("GetCouponByCode", mock.Anything, "SPRING15").Return(c, nil)

	_, err := svc.Redeem(context.Background(), "SPRING15")

	var notRedeemable *coupons.NotRedeemableError
	assert.True(t, errors.As(err, &notRedeemable))
	assert.Equal(t, coupons.StatusUsageLimitReached, notRedeemable.Status)
	mockDB.AssertNotCalled(t, "IncrementUsage", mock.Anything, mock.Anything)
}

func TestRedeemUnknownCoupon(t *testing.T) {
	mockDB := new(MockCouponDBLayer)
	svc := coupons.NewCouponServiceWithClock(mockDB, logger.NewNop(), fixedNow)

	mockDB.On("GetCouponByCode", mock.Anything, "NOPE").Return(nil, errors.New("sql: no rows in result set"))

	_, err := svc.Redeem(context.Background(), "NOPE")

	assert.Error(t, err)
}
