package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"interview-coach/internal/config"
	"interview-coach/internal/contract"
	"interview-coach/internal/handlers"
	"interview-coach/internal/models"
	"interview-coach/internal/repositories"
	"interview-coach/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	convRepo := repositories.NewConversationRepository(db)
	messageRepo := repositories.NewMessageRepository(db)
	feedbackRepo := repositories.NewFeedbackRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	resumeParser := services.NewResumeParserService()
	log.Println("✅ Services initialized successfully")

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(
		cfg.Gemini.APIKey,
		cfg.Gemini.Model,
		cfg.Gemini.RequestTimeout,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	// Initialize reply worker
	replyWorker := services.NewReplyWorker(
		convRepo,
		messageRepo,
		geminiService,
		cfg.Replier.Concurrency,
	)

	// Start worker
	ctx := context.Background()
	replyWorker.Start(ctx)
	log.Println("✅ Reply worker started successfully")

	// Initialize domain services
	interviewService := services.NewInterviewService(
		convRepo,
		messageRepo,
		feedbackRepo,
		geminiService,
		replyWorker,
		cfg.Gemini.RetryMaxAttempts,
	)

	resumeService := services.NewResumeService(
		jobRepo,
		geminiService,
		storageService,
		resumeParser,
		cfg.Gemini.RetryMaxAttempts,
	)

	// Initialize handlers
	interviewHandler := handlers.NewInterviewHandler(interviewService)
	resumeHandler := handlers.NewResumeHandler(resumeService)
	jobHandler := handlers.NewJobHandler(jobRepo)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Interview Coach API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Routes come straight from the shared contract registry
	registry := contract.NewRegistry()
	handlers.RegisterRoutes(app, registry, interviewHandler, resumeHandler, jobHandler)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		endpoints := make([]string, 0, len(registry.All()))
		for _, ep := range registry.All() {
			endpoints = append(endpoints, fmt.Sprintf("%s %s", ep.Method, ep.Path))
		}
		return c.JSON(fiber.Map{
			"message":   "Interview Coach API",
			"version":   "1.0.0",
			"endpoints": endpoints,
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		replyWorker.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(models.ErrorResponse{
		Message: err.Error(),
	})
}
