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

func (d *DB) CreateEditProject(ctx context.Context, project models.EditProject) error {
	_, err := d.Bun.NewInsert().Model(&project).Exec(ctx)
	if err != nil && database.IsUniqueViolation(err) {
		return fmt.Errorf("edit project code %s: %w", project.Code, identifier.ErrDuplicateCode)
	}
	return err
}

func (d *DB) GetEditProjectByCode(ctx context.Context, code string) (*models.EditProject, error) {
	var project models.EditProject
	err := d.Bun.NewSelect().
		Model(&project).
		Where("code = ?", code).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (d *DB) EditCodeExists(ctx context.Context, code string) (bool, error) {
	return d.Bun.NewSelect().
		Model((*models.EditProject)(nil)).
		Where("code = ?", code).
		Exists(ctx)
}

func (d *DB) ListEditProjects(ctx context.Context) ([]models.EditProject, error) {
	var projects []models.EditProject
	err := d.Bun.NewSelect().
		Model(&projects).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (d *DB) UpdateEditProjectStatus(ctx context.Context, code, status string) error {
	_, err := d.Bun.NewUpdate().
		Model((*models.EditProject)(nil)).
		Set("status = ?", status).
		Set("updated_at = ?", time.Now()).
		Where("code = ?", code).
		Exec(ctx)
	return err
}
