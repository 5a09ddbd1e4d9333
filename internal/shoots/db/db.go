package db

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"studio-backoffice/internal/database"
	"studio-backoffice/internal/identifier"
	"studio-backoffice/internal/models"
)

type DB struct {
	Bun *bun.DB
}

// CreateShoot inserts a shoot. The codes column carries a unique constraint;
// a violation there means a concurrent request claimed the same code between
// the availability check and this insert, so it is reported as
// identifier.ErrDuplicateCode for the caller to retry with a fresh candidate.
func (d *DB) CreateShoot(ctx context.Context, shoot models.Shoot) error {
	_, err := d.Bun.NewInsert().Model(&shoot).Exec(ctx)
	if err != nil && database.IsUniqueViolation(err) {
		return fmt.Errorf("shoot code %s: %w", shoot.Code, identifier.ErrDuplicateCode)
	}
	return err
}

func (d *DB) GetShootByCode(ctx context.Context, code string) (*models.Shoot, error) {
	var shoot models.Shoot
	err := d.Bun.NewSelect().
		Model(&shoot).
		Where("code = ?", code).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &shoot, nil
}

// ShootCodeExists is the exact-match existence check the uniqueness resolver
// loops against.
func (d *DB) ShootCodeExists(ctx context.Context, code string) (bool, error) {
	return d.Bun.NewSelect().
		Model((*models.Shoot)(nil)).
		Where("code = ?", code).
		Exists(ctx)
}

func (d *DB) ListShoots(ctx context.Context) ([]models.Shoot, error) {
	var shoots []models.Shoot
	err := d.Bun.NewSelect().
		Model(&shoots).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return shoots, nil
}

func (d *DB) UpdateShootStatus(ctx context.Context, code, status string) error {
	_, err := d.Bun.NewUpdate().
		Model((*models.Shoot)(nil)).
		Set("status = ?", status).
		Set("updated_at = ?", time.Now()).
		Where("code = ?", code).
		Exec(ctx)
	return err
}
