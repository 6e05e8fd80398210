package main

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/mehrsalabs/leadbot/internal/config"
	"github.com/mehrsalabs/leadbot/internal/entity"
	"github.com/mehrsalabs/leadbot/internal/infra/database"
	"github.com/mehrsalabs/leadbot/internal/infra/http/handlers"
	botmw "github.com/mehrsalabs/leadbot/internal/infra/http/middleware"
	"github.com/mehrsalabs/leadbot/internal/infra/integration/telegram"
	"github.com/mehrsalabs/leadbot/internal/infra/mail"
	"github.com/mehrsalabs/leadbot/internal/infra/queue"
	"github.com/mehrsalabs/leadbot/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ config: %v", err)
	}

	// 1. Lead state store
	repo, db, err := buildStore(cfg)
	if err != nil {
		log.Fatalf("❌ store (%s): %v", cfg.LeadStore, err)
	}
	if db != nil {
		defer db.Close()
	}

	// 2. Lead notifications (optional: rabbit producer + mail worker)
	var (
		producer   usecase.QueueProducerInterface
		rabbitConn *amqp.Connection
	)
	if cfg.QueueEnabled() {
		rabbit, err := queue.NewRabbitMQ(cfg.RabbitUser, cfg.RabbitPass, cfg.RabbitHost, cfg.RabbitPort)
		if err != nil {
			log.Fatalf("❌ rabbitmq: %v", err)
		}
		defer rabbit.Conn.Close()
		defer rabbit.Ch.Close()
		rabbitConn = rabbit.Conn

		producer = queue.NewProducer(rabbit.Conn, rabbit.Ch)

		mailSender := mail.NewEmailSender(
			cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass,
			cfg.MailFrom, cfg.SalesEmail,
		)
		worker := queue.NewWorker(rabbit.Ch, mailSender)
		go worker.Start(queue.QueueName)
	} else {
		log.Println("⚠️ RABBITMQ_HOST not set, lead notifications disabled")
	}

	// 3. Dialog engine
	engine := usecase.NewProcessMessageUseCase(repo, producer, usecase.Links{
		Booking:   cfg.BookingURL,
		Website:   cfg.WebsiteURL,
		Instagram: cfg.InstagramURL,
		YouTube:   cfg.YouTubeURL,
	})

	// 4. Handlers
	sender := telegram.NewClient(cfg.TelegramBotToken)
	webhookHandler := handlers.NewWebhookHandler(engine, sender)
	webChatHandler := handlers.NewWebChatHandler(engine)
	healthHandler := handlers.NewHealthHandler(db, rabbitConn, cfg.TelegramBotToken)

	// 5. Router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(botmw.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","message":"Mehrsa Luxury Business Bot is running"}`))
	})
	r.Post("/webhook", webhookHandler.Handle)
	r.Post("/web-chat", webChatHandler.HandleMessage)
	r.Post("/web-chat/session", webChatHandler.HandleNewSession)
	r.Get("/health", healthHandler.Handle)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	addr := ":" + cfg.Port
	log.Printf("🔥 Lead bot listening on %s (store=%s)", addr, cfg.LeadStore)
	http.ListenAndServe(addr, r)
}

// buildStore picks the configured lead-state backend. The returned *sql.DB is
// nil for the non-postgres backends; it feeds the health check.
func buildStore(cfg *config.Config) (entity.LeadStateRepositoryInterface, *sql.DB, error) {
	switch cfg.LeadStore {
	case config.StoreRedis:
		client, err := database.NewRedisClient(cfg.RedisAddr)
		if err != nil {
			return nil, nil, err
		}
		return database.NewRedisLeadStateRepository(client), nil, nil

	case config.StoreMemory:
		log.Println("⚠️ using in-memory lead store, state is lost on restart")
		return database.NewMemoryLeadStateRepository(), nil, nil

	default: // postgres
		db, err := database.NewDBConnection(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
			return nil, nil, err
		}
		return database.NewLeadStateRepository(db), db, nil
	}
}
