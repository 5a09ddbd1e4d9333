package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Shoot statuses.
const (
	ShootStatusScheduled = "scheduled"
	ShootStatusCompleted = "completed"
	ShootStatusCancelled = "cancelled"
)

type Shoot struct {
	bun.BaseModel `bun:"table:shoots"`

	ID              string     `bun:"id,pk" json:"id"`
	Code            string     `bun:"code,unique,notnull" json:"code"`
	ShootType       string     `bun:"shoot_type,notnull" json:"shoot_type"`
	ClientName      string     `bun:"client_name" json:"client_name"`
	City            string     `bun:"city" json:"city"`
	Status          string     `bun:"status,notnull" json:"status"`
	ScheduledAt     time.Time  `bun:"scheduled_at" json:"scheduled_at"`
	PhotographyCost *float64   `bun:"photography_cost" json:"photography_cost,omitempty"`
	TravelCost      *float64   `bun:"travel_cost" json:"travel_cost,omitempty"`
	EditingCost     *float64   `bun:"editing_cost" json:"editing_cost,omitempty"`
	CreatedAt       time.Time  `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt       *time.Time `bun:"updated_at" json:"updated_at,omitempty"`
}

// ShootRequest is the creation payload. Code, when set, is a manually typed
// identifier that must pass the availability check; otherwise one is
// generated from the shoot type prefix.
type ShootRequest struct {
	Code            string    `json:"code,omitempty"`
	ShootType       string    `json:"shoot_type"`
	ClientName      string    `json:"client_name"`
	City            string    `json:"city"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	PhotographyCost *float64  `json:"photography_cost,omitempty"`
	TravelCost      *float64  `json:"travel_cost,omitempty"`
	EditingCost     *float64  `json:"editing_cost,omitempty"`
}

// ShootResponse decorates a shoot with its derived total for detail views.
type ShootResponse struct {
	Shoot
	TotalCost float64 `json:"total_cost"`
}
