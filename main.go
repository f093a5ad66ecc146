// main.go
package main

import (
	"context"
	"log"
	"time"

	"fireguard-api/cmd"
	"fireguard-api/internal/data/repository"
	"fireguard-api/internal/wire"
	"fireguard-api/pkg/database"
	"fireguard-api/pkg/mailer"
	"fireguard-api/pkg/token"
	"fireguard-api/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.Bool("dev_mode", config.App.DevMode),
	)

	if config.JWT.Secret == utils.DefaultJWTSecret {
		logger.Warn("JWT_SECRET not set, using the development default; do not run production like this")
	}

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Apply schema migrations
	if err := database.RunMigrations(context.Background(), config.Database); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize repositories and the auth primitives
	repos := repository.NewRepository(db, logger)
	tokens := token.NewService(config.JWT.Secret, time.Duration(config.JWT.ExpiryHours)*time.Hour)

	var mail mailer.Mailer
	if config.Email.Host != "" {
		mail = mailer.NewSMTPMailer(config.Email)
	} else {
		logger.Warn("SMTP not configured, verification codes will only be logged")
		mail = mailer.NewLogMailer(logger)
	}

	// Wire all dependencies
	app := wire.Wiring(repos, tokens, mail, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
