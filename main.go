package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	"studio-backoffice/internal/analytics"
	analytics_api "studio-backoffice/internal/analytics/api"
	"studio-backoffice/internal/cache"
	cluster_db "studio-backoffice/internal/clusters/db"
	"studio-backoffice/internal/clusters/cluster_api"
	"studio-backoffice/internal/config"
	coupon_db "studio-backoffice/internal/coupons/db"
	"studio-backoffice/internal/coupons/coupon_api"
	coupons "studio-backoffice/internal/coupons/service"
	"studio-backoffice/internal/database/migrations"
	edit_db "studio-backoffice/internal/editprojects/db"
	"studio-backoffice/internal/editprojects/edit_api"
	editprojects "studio-backoffice/internal/editprojects/service"
	"studio-backoffice/internal/identifier"
	"studio-backoffice/internal/kafka"
	"studio-backoffice/internal/logger"
	shoot_db "studio-backoffice/internal/shoots/db"
	shoots "studio-backoffice/internal/shoots/service"
	"studio-backoffice/internal/shoots/shoot_api"
	"studio-backoffice/internal/shoots/template"
)

func connectDatabase(cfg *config.Config, log *logger.Logger) *bun.DB {
	sqldb, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("Failed to open Postgres: %v", err))
	}
	sqldb.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqldb.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqldb.SetConnMaxLifetime(cfg.Database.MaxLifetime)

	if err := sqldb.Ping(); err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("Failed to connect to Postgres: %v", err))
	}
	log.Info("DATABASE", "Postgres connection successful")

	return bun.NewDB(sqldb, pgdialect.New())
}

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.NewLogger()
	defer log.Close()

	bunDB := connectDatabase(cfg, log)
	defer bunDB.Close()

	if cfg.Migrations.AutoMigrate {
		runner := migrations.NewRunner(bunDB, cfg.Migrations.Dir)
		if err := runner.Up(); err != nil {
			log.Fatal("DATABASE", fmt.Sprintf("Migration failed: %v", err))
		}
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Warn("REDIS", fmt.Sprintf("Redis unavailable, dashboard caching disabled: %v", err))
		rdb = nil
	}

	var producer *kafka.Producer
	if cfg.Kafka.Enabled {
		topics := []string{cfg.Kafka.Topics.ShootCreated, cfg.Kafka.Topics.EditProjectCreated}
		if err := kafka.EnsureTopicsExist(cfg.Kafka.Brokers, topics); err != nil {
			log.Warn("KAFKA", fmt.Sprintf("Topic bootstrap failed, events disabled: %v", err))
		} else {
			producer = kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topics.ShootCreated, cfg.Kafka.Topics.EditProjectCreated)
			defer producer.Close()
		}
	}

	ids := identifier.NewGenerator()

	shootDB := &shoot_db.DB{Bun: bunDB}
	editDB := &edit_db.DB{Bun: bunDB}
	couponDB := &coupon_db.DB{Bun: bunDB}
	clusterDB := &cluster_db.DB{Bun: bunDB}

	var shootPublisher shoots.KafkaPublisher
	var editPublisher editprojects.KafkaPublisher
	if producer != nil {
		shootPublisher = producer
		editPublisher = producer
	}

	shootService := shoots.NewShootService(shootDB, shootPublisher, ids, log)
	editService := editprojects.NewEditService(editDB, shootDB, editPublisher, ids, log)
	couponService := coupons.NewCouponService(couponDB, log)

	statsCache := cache.NewStatsCache(rdb, cfg.Redis.StatsTTL)
	analyticsService := analytics.NewService(&analytics.DB{Bun: bunDB}, statsCache, log)

	shootHandler := shoot_api.NewHandler(shootService, template.NewConfirmationGenerator())
	editHandler := edit_api.NewHandler(editService)
	couponHandler := coupon_api.NewHandler(couponService)
	clusterHandler := cluster_api.NewHandler(clusterDB)
	dashboardHandler := analytics_api.NewHandler(analyticsService, cfg.Dashboard.GrowthMonths, cfg.Dashboard.TopCategories)

	r := chi.NewRouter()
	r.Route("/shoots", func(r chi.Router) {
		r.Post("/", shootHandler.CreateShoot)
		r.Get("/", shootHandler.ListShoots)
		r.Get("/availability", shootHandler.CheckAvailability)
		r.Get("/{code}", shootHandler.GetShoot)
		r.Patch("/{code}/status", shootHandler.UpdateStatus)
		r.Get("/{code}/confirmation", shootHandler.GetConfirmation)
	})
	r.Route("/edit-projects", func(r chi.Router) {
		r.Post("/", editHandler.CreateEditProject)
		r.Get("/", editHandler.ListEditProjects)
		r.Get("/{code}", editHandler.GetEditProject)
		r.Patch("/{code}/status", editHandler.UpdateStatus)
	})
	r.Route("/coupons", func(r chi.Router) {
		r.Get("/{code}", couponHandler.GetCoupon)
		r.Post("/{code}/redeem", couponHandler.RedeemCoupon)
	})
	r.Get("/clusters/{id}/cost", clusterHandler.GetClusterCost)
	r.Route("/dashboard", func(r chi.Router) {
		r.Get("/growth", dashboardHandler.GetGrowth)
		r.Get("/categories", dashboardHandler.GetCategories)
	})
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("SERVER", fmt.Sprintf("Studio back-office on %s", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("SERVER", fmt.Sprintf("HTTP error: %v", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = server.Shutdown(ctxShutdown)
	log.Info("SERVER", "Shutdown complete")
}
