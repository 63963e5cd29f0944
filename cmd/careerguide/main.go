package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/streadway/amqp"

	"careerguide/internal/config"
	"careerguide/internal/database"
	"careerguide/internal/handlers"
	"careerguide/internal/notify"
	"careerguide/internal/quiz"
	"careerguide/internal/repository"
	"careerguide/internal/service"
	"careerguide/internal/session"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	// 1. Pick the storage, session and notification backends.
	users, admins, projects, enrollments := buildStores(ctx, cfg)
	sessions := buildSessions(cfg)
	notifier := buildNotifier(ctx, cfg)

	// 2. Initialize services and handlers.
	authService := service.NewAuthService(users, admins, notifier)
	projectService := service.NewProjectService(projects, enrollments, notifier)
	guidanceService := service.NewGuidanceService()
	flow := quiz.NewFlow(sessions)

	if err := authService.SeedAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	h := handlers.New(authService, projectService, guidanceService, flow, sessions, cfg.UploadDir)

	// 3. Create a new Fiber instance.
	app := fiber.New(fiber.Config{
		AppName: "CareerGuide_v1",
	})

	// 4. Middleware for better observability.
	app.Use(logger.New())  // Logs every request to console
	app.Use(recover.New()) // Prevents the app from crashing on panics

	// Per-session rate limiting, with an IP fallback for cookie-less clients.
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return handlers.RateLimitKey(c)
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	}))

	// 5. Route definitions.
	h.Register(app)
	app.Static("/static/uploads", cfg.UploadDir)

	// 6. Start the server.
	log.Fatal(app.Listen(":" + cfg.Port))
}

// buildStores wires the account, project and enrollment stores for the
// configured backend.
func buildStores(ctx context.Context, cfg *config.Config) (
	repository.AccountStore,
	repository.AccountStore,
	repository.ProjectStore,
	repository.EnrollmentStore,
) {
	switch cfg.StoreBackend {
	case "sqlite":
		db, err := database.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			log.Fatalf("Failed to open SQLite: %v", err)
		}
		return repository.NewSQLiteAccountStore(db, "users"),
			repository.NewSQLiteAccountStore(db, "admin_users"),
			repository.NewSQLiteProjectStore(db),
			repository.NewSQLiteEnrollmentStore(db)

	case "dynamo":
		client, err := database.NewDynamoClient(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to create DynamoDB client: %v", err)
		}
		return repository.NewDynamoAccountStore(client, cfg.UsersTable),
			repository.NewDynamoAccountStore(client, cfg.AdminUsersTable),
			repository.NewDynamoProjectStore(client, cfg.ProjectsTable),
			repository.NewDynamoEnrollmentStore(client, cfg.EnrollmentsTable)

	default:
		log.Println("Using in-memory stores; data will not survive a restart")
		return repository.NewMemoryAccountStore(),
			repository.NewMemoryAccountStore(),
			repository.NewMemoryProjectStore(),
			repository.NewMemoryEnrollmentStore()
	}
}

// buildSessions wires the session store for the configured backend.
func buildSessions(cfg *config.Config) session.Store {
	if cfg.SessionBackend == "redis" {
		client, err := database.NewRedisClient(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		return session.NewRedisStore(client)
	}
	return session.NewMemoryStore()
}

// buildNotifier wires notification dispatch for the configured backend.
func buildNotifier(ctx context.Context, cfg *config.Config) notify.Notifier {
	switch cfg.NotifyBackend {
	case "sns":
		client, err := database.NewSNSClient(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to create SNS client: %v", err)
		}
		return notify.NewSNSNotifier(client, cfg.SNSTopicARN)

	case "amqp":
		conn, err := amqp.Dial(cfg.AMQPURL)
		if err != nil {
			log.Fatalf("Failed to connect to AMQP broker: %v", err)
		}
		notifier, err := notify.NewAMQPNotifier(conn, cfg.NotificationExchange)
		if err != nil {
			log.Fatalf("Failed to declare AMQP exchange: %v", err)
		}
		return notifier

	default:
		return notify.NewLogNotifier()
	}
}
