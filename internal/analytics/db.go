package analytics

import (
	"context"

	"github.com/uptrace/bun"

	"studio-backoffice/internal/models"
)

// DB fetches already-materialized records for the aggregator; all filtering
// beyond the entity type happens in the reducers.
type DB struct {
	Bun *bun.DB
}

func (d *DB) FetchShoots(ctx context.Context) ([]models.Shoot, error) {
	var shoots []models.Shoot
	err := d.Bun.NewSelect().
		Model(&shoots).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return shoots, nil
}

func (d *DB) FetchEditProjects(ctx context.Context) ([]models.EditProject, error) {
	var projects []models.EditProject
	err := d.Bun.NewSelect().
		Model(&projects).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return projects, nil
}
