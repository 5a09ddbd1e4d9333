package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Coupon struct {
	bun.BaseModel `bun:"table:coupons"`

	ID            string     `bun:"id,pk" json:"id"`
	Code          string     `bun:"code,unique,notnull" json:"code"`
	Description   string     `bun:"description" json:"description"`
	DiscountType  string     `bun:"discount_type" json:"discount_type"`
	DiscountValue float64    `bun:"discount_value" json:"discount_value"`
	IsActive      bool       `bun:"is_active" json:"is_active"`
	ValidFrom     time.Time  `bun:"valid_from,notnull" json:"valid_from"`
	ValidUntil    *time.Time `bun:"valid_until" json:"valid_until,omitempty"`
	UsedCount     int        `bun:"used_count" json:"used_count"`
	MaxUses       *int       `bun:"max_uses" json:"max_uses,omitempty"`
	CreatedAt     time.Time  `bun:"created_at,notnull" json:"created_at"`
}
