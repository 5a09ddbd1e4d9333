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

	"studio-backoffice/internal/identifier"
	"studio-backoffice/internal/models"
	"studio-backoffice/internal/shoots/db"
)

func setupTestDB(t *testing.T) (*db.DB, *bun.DB) {
	sqldb, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to connect to in-memory database: %v", err)
	}

	bunDB := bun.NewDB(sqldb, sqlitedialect.New())

	_, err = bunDB.NewCreateTable().Model((*models.Shoot)(nil)).Exec(context.Background())
	if err != nil {
		t.Fatalf("Failed to create shoots table: %v", err)
	}

	return &db.DB{Bun: bunDB}, bunDB
}

func testShoot(code string) models.Shoot {
	photography := 500.0
	return models.Shoot{
		ID:              uuid.New().String(),
		Code:            code,
		ShootType:       "RE",
		ClientName:      "Harborview Realty",
		City:            "Lisbon",
		Status:          models.ShootStatusScheduled,
		ScheduledAt:     time.Now().AddDate(0, 0, 7),
		PhotographyCost: &photography,
		CreatedAt:       time.Now(),
	}
}

func TestCreateAndGetShoot(t *testing.T) {
	shootDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	shoot := testShoot("RE-123456-007")
	assert.NoError(t, shootDB.CreateShoot(context.Background(), shoot))

	got, err := shootDB.GetShootByCode(context.Background(), "RE-123456-007")
	assert.NoError(t, err)
	assert.Equal(t, shoot.ID, got.ID)
	assert.Equal(t, "Harborview Realty", got.ClientName)
	assert.NotNil(t, got.PhotographyCost)
	assert.Equal(t, 500.0, *got.PhotographyCost)
}

func TestShootCodeExists(t *testing.T) {
	shootDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	exists, err := shootDB.ShootCodeExists(context.Background(), "RE-123456-007")
	assert.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, shootDB.CreateShoot(context.Background(), testShoot("RE-123456-007")))

	exists, err = shootDB.ShootCodeExists(context.Background(), "RE-123456-007")
	assert.NoError(t, err)
	assert.True(t, exists)
}

func TestCreateShootDuplicateCode(t *testing.T) {
	// The unique constraint on code is the final authority; the violation
	// must surface as ErrDuplicateCode so the caller can retry.
	shootDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	assert.NoError(t, shootDB.CreateShoot(context.Background(), testShoot("RE-123456-007")))

	err := shootDB.CreateShoot(context.Background(), testShoot("RE-123456-007"))
	assert.ErrorIs(t, err, identifier.ErrDuplicateCode)
}

func TestListShoots(t *testing.T) {
	shootDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	assert.NoError(t, shootDB.CreateShoot(context.Background(), testShoot("RE-123456-001")))
	assert.NoError(t, shootDB.CreateShoot(context.Background(), testShoot("RE-123456-002")))

	list, err := shootDB.ListShoots(context.Background())
	assert.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestUpdateShootStatus(t *testing.T) {
	shootDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	assert.NoError(t, shootDB.CreateShoot(context.Background(), testShoot("RE-123456-007")))
	assert.NoError(t, shootDB.UpdateShootStatus(context.Background(), "RE-123456-007", models.ShootStatusCompleted))

	got, err := shootDB.GetShootByCode(context.Background(), "RE-123456-007")
	assert.NoError(t, err)
	assert.Equal(t, models.ShootStatusCompleted, got.Status)
}
