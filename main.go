package main

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pascaretta5/tech-z-one-backend/cache"
	"github.com/pascaretta5/tech-z-one-backend/config"
	"github.com/pascaretta5/tech-z-one-backend/database"
	"github.com/pascaretta5/tech-z-one-backend/routes"
)

func main() {
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg := config.Load()

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}
	log.Info().Str("db", cfg.DBName).Msg("database connected")

	var ch *cache.Cache
	if cfg.RedisAddr != "" {
		ch, err = cache.Connect(cfg.RedisAddr)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect Redis")
		}
	}

	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "tech-z-one backend running",
			"version": "1.0.0",
		})
	})

	routes.Register(app, db, ch, cfg.JWTSecret)

	log.Info().Str("port", cfg.Port).Msg("HTTP server running")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
