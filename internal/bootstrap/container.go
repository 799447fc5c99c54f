package bootstrap

import (
	"context"
	"log"

	"eventpass-be/internal/config"
	"eventpass-be/internal/controller"
	"eventpass-be/internal/pkg/logger"
	"eventpass-be/internal/pkg/mailer"
	"eventpass-be/internal/repository/implementation"
	"eventpass-be/internal/repository/memory"
	"eventpass-be/internal/repository/unitofwork"
	"eventpass-be/internal/service"
	"eventpass-be/internal/websocket"
	"eventpass-be/pkg/payout"
	"eventpass-be/pkg/refund/decision"
	refundEvents "eventpass-be/pkg/refund/events"
	"eventpass-be/pkg/refund/summary"

	pktNats "eventpass-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	RefundController       controller.IRefundController
	OrganizerController    controller.IOrganizerController
	TicketController       controller.ITicketController
	NotificationController controller.INotificationController

	// Background Services (Exposed for main.go to run)
	PayoutConsumerService service.IPayoutConsumerService

	// WebSockets
	WebSocketHub *websocket.Hub
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

	// 2. In-Process Payout Queue
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

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

	// 3. Refund Domain Components
	eventPublisher := refundEvents.NewNatsPublisher(natsPub, sysLogger)

	// Policies change rarely and are read on every eligibility check, so
	// the repository is wrapped in a short-lived cache.
	policyRepo := memory.NewCachedPolicyRepository(implementation.NewRefundPolicyRepository(db))

	var gateway payout.Gateway
	if cfg.Payout.MidtransServerKey != "" {
		gateway = payout.NewMidtransGateway(cfg.Payout.MidtransServerKey, cfg.Payout.MidtransProduction)
		log.Printf("[INFO] Using Payout Gateway: MIDTRANS (production=%v)", cfg.Payout.MidtransProduction)
	} else {
		gateway = payout.NewMockGateway(sysLogger)
		log.Printf("[INFO] Using Payout Gateway: MOCK (no MIDTRANS_SERVER_KEY set)")
	}

	payoutQueue := service.NewPayoutQueueService(pubSub, cfg.Payout.TopicName)
	payoutConsumer := service.NewPayoutConsumerService(
		pubSub,
		cfg.Payout.TopicName,
		uowFactory,
		gateway,
		eventPublisher,
		payoutQueue,
		sysLogger,
	)

	refundProcessor := decision.NewProcessor(sysLogger, eventPublisher, payoutQueue)
	summaryAggregator := summary.NewAggregator(sysLogger)

	// 4. Services
	refundService := service.NewRefundService(uowFactory, policyRepo, eventPublisher, emailService, sysLogger)
	organizerService := service.NewOrganizerService(uowFactory, refundProcessor, summaryAggregator)
	ticketService := service.NewTicketService(uowFactory)

	// Notification Domain
	notifRepo := implementation.NewNotificationRepository(db)
	notifService := service.NewNotificationService(notifRepo, uowFactory, natsSub, wsHub, emailService, wsLogger)

	// Start Service (Worker)
	if natsSub != nil {
		go notifService.Start()
	}

	// 5. Controllers
	return &Container{
		RefundController:       controller.NewRefundController(refundService),
		OrganizerController:    controller.NewOrganizerController(organizerService),
		TicketController:       controller.NewTicketController(ticketService),
		NotificationController: controller.NewNotificationController(notifService),

		PayoutConsumerService: payoutConsumer,
		WebSocketHub:          wsHub,
	}
}
