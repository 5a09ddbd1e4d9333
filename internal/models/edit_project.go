package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Edit project statuses.
const (
	EditStatusPending    = "pending"
	EditStatusInProgress = "in_progress"
	EditStatusDelivered  = "delivered"
)

// EditCodePrefix is the fixed category prefix for edit project codes.
const EditCodePrefix = "EDIT"

type EditProject struct {
	bun.BaseModel `bun:"table:edit_projects"`

	ID               string     `bun:"id,pk" json:"id"`
	Code             string     `bun:"code,unique,notnull" json:"code"`
	ShootCode        string     `bun:"shoot_code,notnull" json:"shoot_code"`
	EditorName       string     `bun:"editor_name" json:"editor_name"`
	Status           string     `bun:"status,notnull" json:"status"`
	DeliverableCount int        `bun:"deliverable_count" json:"deliverable_count"`
	EditingCost      *float64   `bun:"editing_cost" json:"editing_cost,omitempty"`
	RetouchingCost   *float64   `bun:"retouching_cost" json:"retouching_cost,omitempty"`
	CreatedAt        time.Time  `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt        *time.Time `bun:"updated_at" json:"updated_at,omitempty"`
}

type EditProjectRequest struct {
	Code             string   `json:"code,omitempty"`
	ShootCode        string   `json:"shoot_code"`
	EditorName       string   `json:"editor_name"`
	DeliverableCount int      `json:"deliverable_count"`
	EditingCost      *float64 `json:"editing_cost,omitempty"`
	RetouchingCost   *float64 `json:"retouching_cost,omitempty"`
}

type EditProjectResponse struct {
	EditProject
	TotalCost float64 `json:"total_cost"`
}
