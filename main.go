package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/rpupo63/dsa-learning-backend/api"
	"github.com/rpupo63/dsa-learning-backend/config"
	"github.com/rpupo63/dsa-learning-backend/database"
	"github.com/rpupo63/dsa-learning-backend/models"
)

func main() {
	config.LoadDotEnv()
	c := config.New()
	setupLogger(c)

	log.Info().Msg("Initializing app...")
	if err := run(c); err != nil {
		log.Fatal().Err(err).Msg("startup failed")
	}
}

func run(c map[string]string) error {
	ctx := context.Background()

	if config.HasSecretReferences(c) {
		getter, err := config.NewSSMParameterGetter(ctx)
		if err != nil {
			return err
		}
		if err := config.ResolveSecrets(ctx, c, getter); err != nil {
			return err
		}
	}

	db, err := database.Open(c)
	if err != nil {
		return err
	}
	currentDB := database.New(db)
	defer currentDB.Close()

	if err := currentDB.Ping(ctx); err != nil {
		return fmt.Errorf("testing database connection: %w", err)
	}
	// The drift report inspects the live schema, so it runs before migrating.
	if config.GetBool(c, "GENERATE_COLUMN_REPORT", false) {
		return columnReport(db)
	}

	if err := currentDB.Migrate(ctx); err != nil {
		return err
	}

	// If generating models, run generation and exit
	if config.GetBool(c, "GENERATE_MODELS", false) {
		log.Info().Msg("Generating models and query helpers...")
		if err := models.GenerateModels(db, config.GetString(c, "GENERATED_QUERY_PATH", "./query")); err != nil {
			return err
		}
		return columnReport(db)
	}

	if config.GetBool(c, "SEED_DATABASE", true) || config.GetBool(c, "SEED_ONLY", false) {
		if _, err := currentDB.Seed(ctx); err != nil {
			return err
		}
	}
	if config.GetBool(c, "SEED_ONLY", false) {
		return nil
	}

	// Buffered so the server goroutine can still report after shutdown.
	errChannel := make(chan error, 2)

	server, err := api.NewServer(currentDB, c)
	if err != nil {
		return fmt.Errorf("initializing server: %w", err)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
	return nil
}

func columnReport(db *gorm.DB) error {
	reports, err := models.ColumnMismatchReport(db)
	if err != nil {
		return err
	}
	models.LogColumnReport(reports)
	return nil
}

// setupLogger configures the global zerolog logger from LOG_LEVEL and LOG_FORMAT.
func setupLogger(c map[string]string) {
	level, err := zerolog.ParseLevel(strings.ToLower(config.GetString(c, "LOG_LEVEL", "info")))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if config.GetString(c, "LOG_FORMAT", "json") == "console" {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Logger()
		return
	}
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
