package main

import (
	"io"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hearthshare/backend/internal/auth"
	"github.com/hearthshare/backend/internal/models"
	"github.com/hearthshare/backend/internal/router"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load a .env file if there is one. Variables that are already set
	// take precedence.
	_ = godotenv.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	secret, ok := os.LookupEnv("JWT_SECRET")
	if !ok || secret == "" {
		log.Fatal().Msg("environment variable JWT_SECRET must be set")
	}

	tokenLifetime := 24 * time.Hour
	if lifetime, ok := os.LookupEnv("TOKEN_LIFETIME"); ok {
		parsed, err := time.ParseDuration(lifetime)
		if err != nil {
			log.Fatal().Msgf("environment variable TOKEN_LIFETIME is not a valid duration: %s", err)
		}
		tokenLifetime = parsed
	}
	tokens := auth.NewTokenManager(secret, tokenLifetime)

	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		apiURL = "http://localhost:8080"
	}
	baseURL, err := url.Parse(apiURL)
	if err != nil {
		log.Fatal().Msgf("environment variable API_URL is not a valid URL: %s", err)
	}

	dbFile, ok := os.LookupEnv("DB_FILE")
	if !ok {
		// Create data directory
		dataDir := filepath.Join(".", "data")
		err := os.MkdirAll(dataDir, os.ModePerm)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}

		dbFile = filepath.Join(dataDir, "gorm.db")
	}

	// Connect to the database and migrate all models
	err = models.Connect(dbFile)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	r, err := router.Config(baseURL)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	router.AttachRoutes(tokens, r.Group("/"))

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
