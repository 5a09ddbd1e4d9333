package db

import (
	"context"

	"github.com/uptrace/bun"

	"studio-backoffice/internal/models"
)

type DB struct {
	Bun *bun.DB
}

func (d *DB) GetClusterByID(ctx context.Context, id string) (*models.Cluster, error) {
	var cluster models.Cluster
	err := d.Bun.NewSelect().
		Model(&cluster).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &cluster, nil
}

func (d *DB) CreateCluster(ctx context.Context, cluster models.Cluster) error {
	_, err := d.Bun.NewInsert().Model(&cluster).Exec(ctx)
	return err
}
