package wire

import (
	"Inkwell/internal/api"
	"Inkwell/internal/api/config"
	"Inkwell/internal/api/handler"
	"Inkwell/internal/job"
	"Inkwell/internal/pkg/billing"
	ikafka "Inkwell/internal/pkg/kafka"
	imongo "Inkwell/internal/pkg/mongo"
	"Inkwell/internal/pkg/notify"
	"Inkwell/internal/repository"
	"Inkwell/internal/service"

	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// App holds everything main needs to run and shut down.
type App struct {
	Handlers *api.HandlersGroup
	WarmJob  *job.MetricsWarmJob
	Producer ikafka.Producer
	Consumer *ikafka.ConsumerManager
}

// BuildApp wires the dependency graph by hand, repositories up.
func BuildApp(cfg *config.Config, db *gorm.DB, mongoDB *mongo.Database) (*App, error) {
	// repositories
	userRepo := repository.NewUserRepo(db)
	postRepo := repository.NewPostRepo(db)
	labelRepo := repository.NewLabelRepo(db)
	reactionRepo := repository.NewReactionRepo(db)
	favoriteRepo := repository.NewFavoriteRepo(db)
	commentRepo := repository.NewCommentRepo(db)
	viewRepo := repository.NewViewRepo(db)
	subRepo := repository.NewPushSubscriptionRepo(db)
	metricsRepo := repository.NewMetricsRepo(db)
	messageRepo := imongo.NewAssistantMessageRepo(mongoDB)

	// external clients
	billingClient := billing.NewClient(cfg.Billing)
	gateway := notify.NewGateway(cfg.Notify)
	pushSender := notify.NewPushSender(cfg.Notify)

	producer, err := ikafka.NewProducer(cfg)
	if err != nil {
		return nil, err
	}

	// services
	authService := service.NewAuthService()
	userService := service.NewUserService(userRepo)
	postService := service.NewPostService(postRepo, labelRepo, viewRepo, userRepo, billingClient)
	reactionService := service.NewReactionService(reactionRepo, postRepo)
	favoriteService := service.NewFavoriteService(favoriteRepo, postRepo)
	commentService := service.NewCommentService(commentRepo, postRepo, userRepo, producer)
	metricsService := service.NewMetricsService(metricsRepo, billingClient)
	mediaService := service.NewMediaService()
	pushService := service.NewPushService(subRepo)
	assistantService := service.NewAssistantService(messageRepo)
	subscriptionService := service.NewSubscriptionService(userRepo, producer)

	// consumers
	notificationsHandler := ikafka.NewNotificationsHandler(userRepo, subRepo, gateway, pushSender)
	consumer, err := ikafka.NewConsumerManager(cfg, notificationsHandler)
	if err != nil {
		return nil, err
	}

	handlers := &api.HandlersGroup{
		Content:      handler.NewContentHandler(postService, reactionService, favoriteService, commentService),
		Admin:        handler.NewAdminHandler(postService, metricsService, mediaService),
		Assistant:    handler.NewAssistantHandler(assistantService),
		Notification: handler.NewNotificationHandler(pushService),
		Auth:         handler.NewAuthHandler(authService),
		Billing:      handler.NewBillingHandler(subscriptionService, cfg.Billing.WebhookSecret),
		AuthService:  authService,
		UserService:  userService,
	}

	return &App{
		Handlers: handlers,
		WarmJob:  job.NewMetricsWarmJob(metricsService),
		Producer: producer,
		Consumer: consumer,
	}, nil
}
