package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"

	"konjac/internal/collector"
	"konjac/internal/config"

	eventsRepoPg "konjac/internal/events/adapters/postgres"
	eventsUsecase "konjac/internal/events/core/usecase"

	recordsRepoPg "konjac/internal/records/adapters/postgres"
	recordsUsecase "konjac/internal/records/core/usecase"

	_ "github.com/lib/pq"

	_ "konjac/docs"
)

// @title Konjac Collector API
// @version 1.0
// @description Receives pageview and event beacons and serves the latest records per site.
// @BasePath /
func main() {
	// Config
	cfg, err := config.LoadCollector()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// DB connection
	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("failed to open postgres: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to ping postgres: %v", err)
	}

	// Adapter-level DB wrappers
	eventsDB := eventsRepoPg.NewSQLDB(db)
	recordsDB := recordsRepoPg.NewSQLDB(db)

	if err := eventsRepoPg.EnsureSchema(context.Background(), eventsDB); err != nil {
		log.Fatalf("failed to prepare schema: %v", err)
	}

	// Repositories
	eventRepository := eventsRepoPg.NewEventRepository(eventsDB)
	recordRepository := recordsRepoPg.NewRecordRepository(recordsDB)

	// Usecases
	storeEventUC := eventsUsecase.NewStoreEventUseCase(eventRepository)
	fetchRecordsUC := recordsUsecase.NewFetchRecordsUseCase(recordRepository, cfg.MaxFetchLimit)

	// HTTP (Fiber) app + handlers
	app := collector.NewApp(storeEventUC, fetchRecordsUC, collector.Options{
		CORSOrigins: cfg.CORSOrigins,
		AccessLog:   true,
		Docs:        true,
	})

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.HTTPAddr); err != nil {
			log.Printf("fiber stopped: %v", err)
		}
	}()

	log.Printf("collector started on %s", cfg.HTTPAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("fiber shutdown error: %v", err)
	}

	log.Println("collector exiting")
}
