package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"fieldops/cmd"
	httpserver "fieldops/internal/adapters/in/http"
	"fieldops/internal/adapters/out/postgres"
	"fieldops/internal/jobs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	configs, err := getConfigs()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	db, err := connectDB(configs)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	root := cmd.NewCompositionRoot(configs, db)

	jobManager := jobs.NewJobManager(
		root.CreateGetRecurringTemplatesQueryHandler(),
		root.CreateGenerateInstancesCommandHandler(),
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		logger.Error("Failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort)
}

func getConfigs() (cmd.Config, error) {
	// A missing .env file is fine; real deployments set variables directly.
	_ = godotenv.Load(".env")

	var config cmd.Config
	if err := env.Parse(&config); err != nil {
		return cmd.Config{}, err
	}
	return config, nil
}

func connectDB(configs cmd.Config) (*gorm.DB, error) {
	// TranslateError maps driver errors onto gorm sentinels, which the
	// repositories rely on to detect duplicate occurrence inserts.
	db, err := gorm.Open(postgresdriver.Open(configs.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err = postgres.Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Logger.SetLevel(log.INFO)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpserver.NewServer(
		root.CreateCreateWorkerCommandHandler(),
		root.CreateRequestLeaveCommandHandler(),
		root.CreateApproveLeaveCommandHandler(),
		root.CreateCreateLocationCommandHandler(),
		root.CreateCreateJobCommandHandler(),
		root.CreateAssignWorkerCommandHandler(),
		root.CreateGenerateInstancesCommandHandler(),
		root.CreateValidateAssignmentQueryHandler(),
		root.CreateGetAllWorkersQueryHandler(),
		root.CreateGetUpcomingJobsQueryHandler(),
		root.CreateGetRecurringTemplatesQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
