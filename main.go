package main

import (
	"context"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"contentpilot/api"
	"contentpilot/config"
	"contentpilot/database"
	"contentpilot/models"
	"contentpilot/scheduler"
	"contentpilot/services"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	cfg := config.New()

	connStr := config.GetString(cfg, "DATABASE_URL", "")
	if connStr == "" {
		connStr = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			config.GetString(cfg, "DB_HOST", "localhost"),
			config.GetString(cfg, "DB_USER", "postgres"),
			config.GetString(cfg, "DB_PASSWORD", ""),
			config.GetString(cfg, "DB_NAME", "contentpilot"),
			config.GetString(cfg, "DB_PORT", "5432"),
			config.GetString(cfg, "DB_SSLMODE", "disable"),
		)
	}

	newLogger := logger.New(
		stdlog.New(os.Stdout, "\r\n", stdlog.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
		Logger:      newLogger,
	})
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	// Enable required PostgreSQL extensions
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"").Error; err != nil {
		fmt.Printf("Error enabling uuid-ossp extension: %v\n", err)
		os.Exit(1)
	}
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"vector\"").Error; err != nil {
		fmt.Printf("Error enabling vector extension: %v\n", err)
		os.Exit(1)
	}

	if err := db.AutoMigrate(
		&models.Workspace{},
		&models.InspirationSource{},
		&models.HotTopic{},
		&models.SocialProfile{},
		&models.StyleProfile{},
		&models.ContentPiece{},
	); err != nil {
		fmt.Printf("Error migrating database schema: %v\n", err)
		os.Exit(1)
	}

	currentDB := database.New(db)

	svcs, err := buildServices(cfg, currentDB)
	if err != nil {
		fmt.Printf("Error initializing services: %v\n", err)
		os.Exit(1)
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(currentDB, svcs)
	if err != nil {
		fmt.Printf("Error initializing server: %v\n", err)
		os.Exit(1)
	}

	cronScheduler := startScheduler(cfg, svcs)

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	fmt.Printf("Closing server: %v\n", fatalErr)

	if cronScheduler != nil {
		cronScheduler.Stop()
	}
	server.ShutdownGracefully(30 * time.Second)
}

// buildServices wires the scraper, AI providers and archive into the domain
// services.
func buildServices(cfg map[string]string, db database.Database) (api.Services, error) {
	scrapeTimeout := time.Duration(config.GetInt(cfg, "SCRAPE_TIMEOUT_SECONDS", 120)) * time.Second
	headless := config.GetString(cfg, "SCRAPER_HEADLESS", "true") != "false"
	scraper := services.NewChromeScraper(headless, scrapeTimeout)

	openaiKey := config.GetString(cfg, "OPENAI_API_KEY", "")
	anthropicKey := config.GetString(cfg, "ANTHROPIC_API_KEY", "")
	router, err := services.NewModelRouter(openaiKey, anthropicKey)
	if err != nil {
		return api.Services{}, err
	}

	var embedder services.Embedder
	if openaiKey != "" {
		e, err := services.NewOpenAIEmbedder(openaiKey)
		if err != nil {
			return api.Services{}, err
		}
		embedder = e
	}

	var archiver services.Archiver = services.NoopArchiver{}
	if bucket := config.GetString(cfg, "SCRAPE_ARCHIVE_BUCKET", ""); bucket != "" {
		s3Archiver, err := services.NewS3Archiver(context.Background(), bucket)
		if err != nil {
			return api.Services{}, err
		}
		archiver = s3Archiver
	}

	return api.Services{
		Workspace: services.NewWorkspaceService(db.WorkspaceRepo()),
		Topics:    services.NewTopicService(db.InspirationSourceRepo(), db.HotTopicRepo(), scraper, router, archiver),
		Style:     services.NewStyleService(db.SocialProfileRepo(), db.StyleProfileRepo(), scraper, router, embedder),
		Generator: services.NewGeneratorService(db.HotTopicRepo(), db.StyleProfileRepo(), db.ContentPieceRepo(), router),
	}, nil
}

// startScheduler registers the periodic source refresh when enabled. Returns
// nil when auto-refresh is off.
func startScheduler(cfg map[string]string, svcs api.Services) *scheduler.Scheduler {
	intervalHours := config.GetInt(cfg, "AUTO_REFRESH_HOURS", 0)
	if intervalHours <= 0 {
		log.Info().Msg("Source auto-refresh disabled")
		return nil
	}

	cronScheduler, err := scheduler.New(config.GetString(cfg, "SCHEDULER_TIMEZONE", "UTC"))
	if err != nil {
		log.Error().Err(err).Msg("Failed to create scheduler, auto-refresh disabled")
		return nil
	}
	if err := cronScheduler.AddRefreshJob(intervalHours, svcs.Topics.RefreshAll); err != nil {
		log.Error().Err(err).Msg("Failed to register refresh job, auto-refresh disabled")
		return nil
	}

	cronScheduler.Start()
	return cronScheduler
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
