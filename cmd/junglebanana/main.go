package main

import (
	"log"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/buwanikaveesha/Jungle-Banana-Backend/internal/config"
	"github.com/buwanikaveesha/Jungle-Banana-Backend/internal/database"
	"github.com/buwanikaveesha/Jungle-Banana-Backend/internal/handlers"
	"github.com/buwanikaveesha/Jungle-Banana-Backend/internal/mail"
	"github.com/buwanikaveesha/Jungle-Banana-Backend/internal/puzzle"
	"github.com/buwanikaveesha/Jungle-Banana-Backend/internal/repository"
	"github.com/buwanikaveesha/Jungle-Banana-Backend/internal/service"
)

func main() {
	// 1. Load configuration and initialize our external connections
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	db, redisClient := database.Connect(cfg)
	if err := database.InitSchema(db); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	// 2. Initialize repos, services, and handlers
	userRepo := repository.NewUserRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	userCache := repository.NewUserCacheRepository(redisClient)
	boardCache := repository.NewBoardCacheRepository(redisClient)

	mailer := mail.NewSMTPMailer(mail.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPassword,
	})
	puzzleClient := puzzle.NewClient(cfg.PuzzleAPIURL)

	authSvc := service.NewAuthService(userRepo, userCache, mailer, cfg.JWTSecret, cfg.AppURL)
	scoreSvc := service.NewScoreService(userRepo, userCache, boardCache)
	questionSvc := service.NewQuestionService(puzzleClient, questionRepo)

	h := handlers.NewHandlers(authSvc, scoreSvc, questionSvc)

	// 3. Create a new Fiber instance
	app := fiber.New(fiber.Config{
		AppName: "JungleBanana_v1",
	})

	// 4. Middleware for better observability
	app.Use(logger.New())  // Logs every request to console
	app.Use(recover.New()) // Prevents the app from crashing on panics

	// 5. Per-IP rate limiting on the credential endpoints
	authLimiter := limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"message": "Too many requests. Please try again later.",
			})
		},
	})
	app.Use("/signup", authLimiter)
	app.Use("/login", authLimiter)
	app.Use("/forgot-password", authLimiter)

	// 6. Route definitions
	h.Register(app, cfg.JWTSecret)

	// 7. Frontend bundle, when configured
	if cfg.StaticDir != "" {
		app.Static("/", cfg.StaticDir)
		app.Get("/*", func(c *fiber.Ctx) error {
			return c.SendFile(filepath.Join(cfg.StaticDir, "index.html"))
		})
	}

	// 8. Start the server
	log.Fatal(app.Listen(":" + cfg.Port))
}
