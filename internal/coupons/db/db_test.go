package db_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "github.com/uptrace/bun/driver/sqliteshim"

	"studio-backoffice/internal/coupons/db"
	"studio-backoffice/internal/models"
)

func setupTestDB(t *testing.T) (*db.DB, *bun.DB) {
	sqldb, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to connect to in-memory database: %v", err)
	}

	bunDB := bun.NewDB(sqldb, sqlitedialect.New())

	_, err = bunDB.NewCreateTable().Model((*models.Coupon)(nil)).Exec(context.Background())
	if err != nil {
		t.Fatalf("Failed to create coupons table: %v", err)
	}

	return &db.DB{Bun: bunDB}, bunDB
}

func TestCreateAndGetCoupon(t *testing.T) {
	couponDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	maxUses := 10
	coupon := models.Coupon{
		ID:        uuid.New().String(),
		Code:      "SPRING15",
		IsActive:  true,
		ValidFrom: time.Now().AddDate(0, -1, 0),
		UsedCount: 3,
		MaxUses:   &maxUses,
		CreatedAt: time.Now(),
	}
	assert.NoError(t, couponDB.CreateCoupon(context.Background(), coupon))

	got, err := couponDB.GetCouponByCode(context.Background(), "SPRING15")
	assert.NoError(t, err)
	assert.Equal(t, 3, got.UsedCount)
	assert.NotNil(t, got.MaxUses)
	assert.Equal(t, 10, *got.MaxUses)
}

func TestIncrementUsage(t *testing.T) {
	couponDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	coupon := models.Coupon{
		ID:        uuid.New().String(),
		Code:      "SPRING15",
		IsActive:  true,
		ValidFrom: time.Now(),
		UsedCount: 0,
		CreatedAt: time.Now(),
	}
	assert.NoError(t, couponDB.CreateCoupon(context.Background(), coupon))

	assert.NoError(t, couponDB.IncrementUsage(context.Background(), "SPRING15"))
	assert.NoError(t, couponDB.IncrementUsage(context.Background(), "SPRING15"))

	got, err := couponDB.GetCouponByCode(context.Background(), "SPRING15")
	assert.NoError(t, err)
	assert.Equal(t, 2, got.UsedCount)
}
