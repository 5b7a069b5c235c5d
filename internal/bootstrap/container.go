package bootstrap

import (
	"context"
	"log"

	"drone-response-be/internal/config"
	"drone-response-be/internal/controller"
	"drone-response-be/internal/handler"
	"drone-response-be/internal/pkg/logger"
	"drone-response-be/internal/pkg/mailer"
	"drone-response-be/internal/repository/unitofwork"
	"drone-response-be/internal/service"
	"drone-response-be/internal/websocket"
	"drone-response-be/pkg/chatbot"

	pktNats "drone-response-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	ChatbotController   controller.IChatbotController
	DroneController     controller.IDroneController
	FleetController     controller.IFleetController
	ReportController    controller.IReportController
	DashboardController controller.IDashboardController

	// Background services, exposed for main.go to run
	ConsumerService service.IConsumerService

	// Realtime transport
	ChatWsHandler *handler.ChatWsHandler
	WebSocketHub  *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	alertMailer := mailer.NewAlertMailer(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.SMTP.SenderName,
	)

	// 2. Event buses
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

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

	// WebSocket hub
	wsLogger := logger.NewIsolatedLogger("logs/realtime.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Services
	publisherService := service.NewPublisherService(cfg.Alert.FleetStatsTopic, pubSub)

	droneService := service.NewDroneService(uowFactory, publisherService, sysLogger)
	fleetService := service.NewFleetService(uowFactory)
	reportService := service.NewReportService(uowFactory)
	dashboardService := service.NewDashboardService(uowFactory, fleetService)

	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Alert.FleetStatsTopic,
		fleetService,
		sysLogger,
	)

	generator := chatbot.NewGenerator(droneService)
	chatbotService := service.NewChatbotService(uowFactory, generator, natsPub, sysLogger)

	authService := service.NewAuthService(uowFactory, cfg.JWT)

	// 4. Alert worker
	chatHandler := websocket.NewChatHandler(chatbotService, wsLogger)
	chatWsHandler := handler.NewChatWsHandler(wsHub, chatHandler, wsLogger)
	alertService := service.NewAlertService(natsSub, alertMailer, wsHub, cfg.Alert.Recipients, sysLogger)
	if natsSub != nil {
		go alertService.Start()
	}

	return &Container{
		AuthController:      controller.NewAuthController(authService),
		ChatbotController:   controller.NewChatbotController(chatbotService),
		DroneController:     controller.NewDroneController(droneService),
		FleetController:     controller.NewFleetController(fleetService),
		ReportController:    controller.NewReportController(reportService),
		DashboardController: controller.NewDashboardController(dashboardService),

		ConsumerService: consumerService,

		ChatWsHandler: chatWsHandler,
		WebSocketHub:  wsHub,
	}
}
