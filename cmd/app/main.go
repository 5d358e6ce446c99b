package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"lastmile/cmd"
	httpin "lastmile/internal/adapters/in/http"
	"lastmile/internal/adapters/out/postgres/assignmentrepo"
	"lastmile/internal/adapters/out/postgres/attemptrepo"
	"lastmile/internal/adapters/out/postgres/driverrepo"
	"lastmile/internal/adapters/out/postgres/eventrepo"
	"lastmile/internal/adapters/out/postgres/packagerepo"
	"lastmile/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := connectToDatabase(configs)
	migrateDatabase(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := startJobs(&app, configs, logger)
	if jobManager != nil {
		defer jobManager.StopAll()
	}

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		AutoAssignmentEnabled:  goDotEnvVariable("AUTO_ASSIGNMENT_ENABLED"),
		AutoAssignmentSchedule: goDotEnvVariable("AUTO_ASSIGNMENT_SCHEDULE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func connectToDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func migrateDatabase(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&packagerepo.PackageDTO{},
		&eventrepo.EventDTO{},
		&attemptrepo.AttemptDTO{},
		&attemptrepo.PodPhotoDTO{},
		&assignmentrepo.RuleDTO{},
		&assignmentrepo.BatchDTO{},
		&driverrepo.DriverDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func startJobs(app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) *jobs.JobManager {
	if configs.AutoAssignmentEnabled != "true" {
		return nil
	}

	jobManager := jobs.NewJobManager(
		app.CreateRunAssignmentRulesCommandHandler(),
		configs.AutoAssignmentSchedule,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreatePackageCommandHandler(),
		app.CreateTransitionPackageStatusCommandHandler(),
		app.CreateAssignPackagesCommandHandler(),
		app.CreateAssignByAreaCommandHandler(),
		app.CreateRunAssignmentRulesCommandHandler(),
		app.CreateStartRouteCommandHandler(),
		app.CreateConfirmDeliveryCommandHandler(),
		app.CreateFailDeliveryCommandHandler(),
		app.CreateCreateDriverCommandHandler(),
		app.CreateDeleteDriverCommandHandler(),
		app.CreateCreateRuleCommandHandler(),
		app.CreatePackageHistoryQueryHandler(),
		app.CreateProductivityReportQueryHandler(),
		app.CreateInventoryByStatusQueryHandler(),
		app.CreateAssignmentLogQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
