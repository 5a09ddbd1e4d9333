package db

import (
	"context"

	"github.com/uptrace/bun"

	"studio-backoffice/internal/models"
)

type DB struct {
	Bun *bun.DB
}

func (d *DB) GetCouponByCode(ctx context.Context, code string) (*models.Coupon, error) {
	var coupon models.Coupon
	err := d.Bun.NewSelect().
		Model(&coupon).
		Where("code = ?", code).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (d *DB) IncrementUsage(ctx context.Context, code string) error {
	_, err := d.Bun.NewUpdate().
		Model((*models.Coupon)(nil)).
		Set("used_count = used_count + 1").
		Where("code = ?", code).
		Exec(ctx)
	return err
}

func (d *DB) CreateCoupon(ctx context.Context, coupon models.Coupon) error {
	_, err := d.Bun.NewInsert().Model(&coupon).Exec(ctx)
	return err
}
