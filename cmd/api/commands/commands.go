package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/studentplanner/core/internal/adapters/repository"
	"github.com/studentplanner/core/internal/domain/entities"
	"github.com/studentplanner/core/internal/infrastructure/config"
	"github.com/studentplanner/core/internal/infrastructure/logger"
	"github.com/studentplanner/core/internal/infrastructure/server"
	"github.com/studentplanner/core/internal/ports"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the Student Planner API server",
		Long:  "Start the Student Planner API server with all configured routes and middleware",
		Run: func(cmd *cobra.Command, args []string) {
			runServer()
		},
	}
}

// NewSeedCommand creates the seed command
func NewSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Write an example data set into the store",
		Long:  "Write a small set of example tasks and custom holidays into the configured store",
		Run: func(cmd *cobra.Command, args []string) {
			runSeed()
		},
	}
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print Student Planner version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Student Planner Core v1.0.0")
		},
	}
}

func runServer() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Close()

	store, err := newStore(cfg, appLogger)
	if err != nil {
		appLogger.Fatalw("Failed to initialize store", "error", err)
	}

	srv, err := server.New(cfg, store, appLogger)
	if err != nil {
		appLogger.Fatalw("Failed to initialize server", "error", err)
	}

	go func() {
		appLogger.Infow("Starting Student Planner API server",
			"port", cfg.Server.Port,
			"environment", cfg.App.Environment,
		)
		if err := srv.Start(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
			appLogger.Errorw("Server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Errorw("Graceful shutdown failed", "error", err)
	}
}

func runSeed() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Close()

	if !cfg.Storage.Enabled {
		appLogger.Fatalw("Seeding requires storage to be enabled")
	}

	store, err := newStore(cfg, appLogger)
	if err != nil {
		appLogger.Fatalw("Failed to initialize store", "error", err)
	}

	taskRepo := repository.NewTaskRepository(store, appLogger)
	holidayRepo := repository.NewHolidayRepository(store, appLogger)

	today := time.Now()
	dateKey := func(days int) string {
		return today.AddDate(0, 0, days).Format("2006-01-02")
	}

	tasks := []entities.Task{
		{ID: "seed-task-1", Title: "Essay draft", Date: dateKey(0), Deadline: dateKey(2), Description: "First draft for literature class", CreatedAt: today},
		{ID: "seed-task-2", Title: "Math problem set", Date: dateKey(1), CreatedAt: today},
		{ID: "seed-task-3", Title: "Lab report", Date: dateKey(-3), Deadline: dateKey(-1), Description: "Write up chemistry results", CreatedAt: today},
	}
	for _, task := range tasks {
		taskRepo.Create(task)
	}

	holidays := []entities.Holiday{
		{ID: "seed-holiday-1", Name: "Barrio Fiesta", Date: dateKey(5), Type: "Festival", Description: "Neighborhood celebration"},
		{ID: "seed-holiday-2", Name: "Science Fair", Date: dateKey(12), Type: "School Event"},
	}
	for _, holiday := range holidays {
		holidayRepo.Create(holiday)
	}

	appLogger.Infow("Seed data written",
		"tasks", len(tasks),
		"holidays", len(holidays),
		"data_dir", cfg.Storage.DataDir,
	)
}

func newStore(cfg *config.Config, appLogger *logger.Logger) (ports.KeyValueStore, error) {
	if !cfg.Storage.Enabled {
		appLogger.Warnw("Storage disabled, running on in-memory state only")
		return repository.NoopStore{}, nil
	}
	return repository.NewFileStore(afero.NewOsFs(), cfg.Storage.DataDir)
}
