package bootstrap

import (
	"context"
	"log"

	"github.com/maatalaayoub/L9ani-sub001/internal/config"
	"github.com/maatalaayoub/L9ani-sub001/internal/controller"
	"github.com/maatalaayoub/L9ani-sub001/internal/handler"
	"github.com/maatalaayoub/L9ani-sub001/internal/pkg/logger"
	"github.com/maatalaayoub/L9ani-sub001/internal/pkg/mailer"
	"github.com/maatalaayoub/L9ani-sub001/internal/repository/implementation"
	"github.com/maatalaayoub/L9ani-sub001/internal/repository/memory"
	"github.com/maatalaayoub/L9ani-sub001/internal/repository/unitofwork"
	"github.com/maatalaayoub/L9ani-sub001/internal/service"
	"github.com/maatalaayoub/L9ani-sub001/internal/websocket"
	"github.com/maatalaayoub/L9ani-sub001/pkg/assistant"

	pktNats "github.com/maatalaayoub/L9ani-sub001/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AssistantController controller.IAssistantController
	ReportController    controller.IReportController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// In-memory conversation state + recent-search interests
	contextRepo := memory.NewContextRepository()
	interestRepo := memory.NewInterestRepository()

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Services
	publisherService := service.NewPublisherService(cfg.App.TranscriptTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.TranscriptTopic,
		uowFactory,
		sysLogger,
	)

	reportService := service.NewReportService(uowFactory, natsPub, sysLogger)

	// The orchestrator reads candidates through the report service.
	orchestrator := assistant.NewOrchestrator(reportService)

	assistantService := service.NewAssistantService(
		orchestrator,
		contextRepo,
		interestRepo,
		uowFactory,
		publisherService,
		natsPub,
		sysLogger,
	)

	// 3.5 Notification System Infrastructure
	notifRepo := implementation.NewNotificationRepository(db)
	notifService := service.NewNotificationService(notifRepo, natsSub, wsHub, interestRepo, emailService, sysLogger) // Hub implements NotificationDelivery

	// Start Service (Worker)
	if natsSub != nil {
		go notifService.Start()
	}

	// Handler
	notifHandler := handler.NewNotificationHandler(notifService, natsPub, wsHub, wsLogger)

	// 4. Controllers
	// Note: We return the container with public fields for the server to register
	return &Container{
		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,

		AssistantController: controller.NewAssistantController(assistantService),
		ReportController:    controller.NewReportController(reportService),

		ConsumerService: consumerService,
	}
}
