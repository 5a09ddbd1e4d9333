package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"studio-backoffice/internal/config"
	"studio-backoffice/internal/models"
)

// Development bootstrap: drops, recreates, and optionally seeds the schema
// straight from the bun models. Production schema changes go through the SQL
// migrations in migrations/ instead.
func main() {
	seed := flag.Bool("seed", false, "insert sample data after creating tables")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	connector := pgdriver.NewConnector(pgdriver.WithDSN(cfg.Database.DSN))
	sqldb := sql.OpenDB(connector)
	defer sqldb.Close()

	if err := sqldb.PingContext(ctx); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	db := bun.NewDB(sqldb, pgdialect.New())

	log.Println("Dropping tables...")
	dropTables(ctx, db)

	log.Println("Creating tables...")
	createTables(ctx, db)

	if *seed {
		log.Println("Seeding sample data...")
		seedData(ctx, db)
	}

	log.Println("Done.")
}

func dropTables(ctx context.Context, db *bun.DB) {
	tables := []interface{}{(*models.EditProject)(nil), (*models.Coupon)(nil), (*models.Cluster)(nil), (*models.Shoot)(nil)}
	for _, m := range tables {
		_, _ = db.NewDropTable().Model(m).IfExists().Cascade().Exec(ctx)
	}
}

func createTables(ctx context.Context, db *bun.DB) {
	tables := []interface{}{(*models.Shoot)(nil), (*models.EditProject)(nil), (*models.Coupon)(nil), (*models.Cluster)(nil)}
	for _, m := range tables {
		if _, err := db.NewCreateTable().Model(m).IfNotExists().Exec(ctx); err != nil {
			log.Fatalf("Failed to create table for %T: %v", m, err)
		}
	}
}

func seedData(ctx context.Context, db *bun.DB) {
	photography := 500.0
	travel := 50.0
	editing := 200.0

	shoots := []models.Shoot{
		{
			ID:              uuid.New().String(),
			Code:            "RE-123456-007",
			ShootType:       "RE",
			ClientName:      "Harborview Realty",
			City:            "Lisbon",
			Status:          models.ShootStatusScheduled,
			ScheduledAt:     time.Now().AddDate(0, 0, 14),
			PhotographyCost: &photography,
			TravelCost:      &travel,
			EditingCost:     &editing,
			CreatedAt:       time.Now(),
		},
		{
			ID:          uuid.New().String(),
			Code:        "WD-654321-042",
			ShootType:   "WD",
			ClientName:  "Sofia & Marco",
			City:        "Porto",
			Status:      models.ShootStatusCompleted,
			ScheduledAt: time.Now().AddDate(0, -1, 0),
			CreatedAt:   time.Now().AddDate(0, -1, -3),
		},
	}
	_, _ = db.NewInsert().Model(&shoots).Exec(ctx)

	project := models.EditProject{
		ID:               uuid.New().String(),
		Code:             "EDIT-654399-101",
		ShootCode:        "WD-654321-042",
		EditorName:       "Rita",
		Status:           models.EditStatusInProgress,
		DeliverableCount: 120,
		EditingCost:      &editing,
		CreatedAt:        time.Now(),
	}
	_, _ = db.NewInsert().Model(&project).Exec(ctx)

	maxUses := 10
	until := time.Now().AddDate(0, 2, 0)
	coupon := models.Coupon{
		ID:            uuid.New().String(),
		Code:          "SPRING15",
		Description:   "15% off spring bookings",
		DiscountType:  "percent",
		DiscountValue: 15,
		IsActive:      true,
		ValidFrom:     time.Now().AddDate(0, -1, 0),
		ValidUntil:    &until,
		UsedCount:     3,
		MaxUses:       &maxUses,
		CreatedAt:     time.Now(),
	}
	_, _ = db.NewInsert().Model(&coupon).Exec(ctx)

	logistics := 300.0
	crew := 900.0
	cluster := models.Cluster{
		ID:            uuid.New().String(),
		Name:          "Old Town block",
		City:          "Lisbon",
		LogisticsCost: &logistics,
		CrewCost:      &crew,
		CreatedAt:     time.Now(),
	}
	_, _ = db.NewInsert().Model(&cluster).Exec(ctx)
}
