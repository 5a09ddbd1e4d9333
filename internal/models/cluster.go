package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Cluster groups shooting locations under one site. Its total cost may be
// overridden explicitly; when the override is null the total is derived from
// the component fields.
type Cluster struct {
	bun.BaseModel `bun:"table:clusters"`

	ID            string    `bun:"id,pk" json:"id"`
	Name          string    `bun:"name,notnull" json:"name"`
	City          string    `bun:"city" json:"city"`
	TotalCost     *float64  `bun:"total_cost" json:"total_cost,omitempty"`
	LogisticsCost *float64  `bun:"logistics_cost" json:"logistics_cost,omitempty"`
	PermitCost    *float64  `bun:"permit_cost" json:"permit_cost,omitempty"`
	CrewCost      *float64  `bun:"crew_cost" json:"crew_cost,omitempty"`
	CreatedAt     time.Time `bun:"created_at,notnull" json:"created_at"`
}
