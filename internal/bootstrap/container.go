package bootstrap

import (
	"context"
	"log"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"vibecode-be/internal/config"
	"vibecode-be/internal/controller"
	"vibecode-be/internal/handler"
	"vibecode-be/internal/pkg/logger"
	"vibecode-be/internal/repository/contract"
	"vibecode-be/internal/repository/implementation"
	"vibecode-be/internal/repository/memory"
	"vibecode-be/internal/service"
	"vibecode-be/internal/websocket"
	"vibecode-be/pkg/synth/factory"
	"vibecode-be/pkg/visualsearch"

	pktNats "vibecode-be/pkg/nats"
)

type Container struct {
	// Controllers
	StudioController     controller.IStudioController
	SearchController     controller.ISearchController
	DeploymentController controller.IDeploymentController

	// Background Services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	StreamHandler *handler.StreamHandler
	WebSocketHub  *websocket.Hub

	Logger logger.ILogger
}

// NewContainer wires the whole application graph. db may be nil, in
// which case the session archive is disabled and everything runs from
// memory.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Synthesis provider (degrades to canned output without a key)
	synthProvider := factory.NewProvider(cfg.Keys.GoogleGemini, cfg.Synthesis.Model)

	// In-memory session storage
	sessionRepo := memory.NewSessionRepository()

	// 3.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
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

	// WebSocket hub
	wsLogger := logger.NewIsolatedLogger("logs/stream.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// Session archive (optional)
	var archiveRepo contract.SessionArchiveRepository
	if db != nil {
		archiveRepo = implementation.NewSessionArchiveRepository(db)
	} else {
		log.Printf("[INFO] No database configured, session archive disabled")
	}

	publisherService := service.NewPublisherService(cfg.App.SessionEventsTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.SessionEventsTopic,
		archiveRepo,
		wsHub,
	)

	studioService := service.NewStudioService(
		sessionRepo,
		archiveRepo,
		synthProvider,
		publisherService,
		sysLogger,
		time.Duration(cfg.Synthesis.TimeoutSeconds)*time.Second,
	)

	searchClient := visualsearch.NewClient(visualsearch.NewHTTPRelay(), cfg.Keys.Dribbble)
	searchService := service.NewSearchService(searchClient, sysLogger)

	deploymentService := service.NewDeploymentService(nil, publisherService, natsPub, sysLogger)

	streamHandler := handler.NewStreamHandler(wsHub, wsLogger)

	return &Container{
		StudioController:     controller.NewStudioController(studioService),
		SearchController:     controller.NewSearchController(searchService),
		DeploymentController: controller.NewDeploymentController(deploymentService),

		ConsumerService: consumerService,

		StreamHandler: streamHandler,
		WebSocketHub:  wsHub,

		Logger: sysLogger,
	}
}
