package server

import (
	"backend-corsa/internal/auth"
	"backend-corsa/internal/chat"
	"backend-corsa/internal/config"
	"backend-corsa/internal/device"
	"backend-corsa/internal/leaderboard"
	"backend-corsa/internal/route"
	"backend-corsa/internal/storage"
	"backend-corsa/internal/strava"
	"backend-corsa/internal/stream"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	App    *fiber.App
	Cfg    config.Config
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Stream *stream.Hub
}

func NewServer(cfg config.Config, db *pgxpool.Pool, redisClient *redis.Client) *Server {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	s := &Server{
		App:    app,
		Cfg:    cfg,
		DB:     db,
		Redis:  redisClient,
		Stream: stream.NewHub(redisClient),
	}

	registerRoutes(s)
	return s
}

func registerRoutes(s *Server) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	jwtMiddleware := auth.JWTMiddleware(s.Cfg.JWTSecret)
	optionalJWT := auth.OptionalJWTMiddleware(s.Cfg.JWTSecret)
	store := storage.NewService(s.DB, s.Cfg.StorageBaseURL)

	auth.RegisterRoutes(s.App.Group("/auth"), auth.NewService(s.Cfg.JWTSecret, s.DB))
	route.RegisterRoutes(s.App.Group("/routes"), route.NewService(s.DB), store, jwtMiddleware)
	leaderboard.RegisterRoutes(s.App.Group("/leaderboards"), leaderboard.NewService(s.DB), jwtMiddleware, optionalJWT)
	device.RegisterRoutes(s.App.Group("/devices"), device.NewService(s.DB), device.NewLocator(s.Cfg.DeviceAPIBaseURL), jwtMiddleware)
	stream.RegisterRoutes(s.App.Group("/streams"), stream.NewService(s.DB, s.Stream), s.Stream, jwtMiddleware)
	chat.RegisterRoutes(s.App.Group("/chat"), chat.NewService(s.DB, s.Stream), jwtMiddleware)
	strava.RegisterRoutes(s.App.Group("/integrations"), strava.NewService(s.DB, s.Cfg.StravaTokenURL, s.Cfg.StravaClientID, s.Cfg.StravaClientSecret), jwtMiddleware)
}
