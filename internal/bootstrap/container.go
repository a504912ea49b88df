package bootstrap

import (
	"context"
	"log"
	"time"

	"chat-space-be/internal/config"
	"chat-space-be/internal/controller"
	"chat-space-be/internal/pkg/logger"
	"chat-space-be/internal/repository/unitofwork"
	"chat-space-be/internal/service"
	"chat-space-be/pkg/caption"
	"chat-space-be/pkg/presence"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController    controller.IAuthController
	UserController    controller.IUserController
	ChatController    controller.IChatController
	MessageController controller.IMessageController
	AdminController   controller.IAdminController

	// AuthService is exposed for the server's view gates, which re-check the
	// stored role on page loads.
	AuthService service.IAuthService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Infrastructure
	// Redis (presence tracking). The app degrades gracefully without it.
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
	presenceTracker := presence.NewTracker(rdb)

	// Caption Provider based on Config
	var captioner caption.Provider
	if cfg.Caption.Provider == "ollama" {
		inner := caption.NewOllamaProvider(cfg.Caption.OllamaBaseURL, cfg.Caption.OllamaModel)
		captioner = caption.NewCachedProvider(inner, time.Duration(cfg.Caption.CacheTTLMin)*time.Minute)
		log.Printf("[INFO] Using Caption Provider: OLLAMA (%s)", cfg.Caption.OllamaModel)
	} else {
		log.Printf("[INFO] Caption Provider disabled")
	}

	// 3. Services
	authService := service.NewAuthService(uowFactory, presenceTracker, sysLogger)
	userService := service.NewUserService(uowFactory)
	chatService := service.NewChatService(uowFactory)
	messageService := service.NewMessageService(uowFactory, captioner, sysLogger)
	adminService := service.NewAdminService(uowFactory, sysLogger)

	// 4. Controllers
	return &Container{
		AuthController:    controller.NewAuthController(authService),
		UserController:    controller.NewUserController(userService),
		ChatController:    controller.NewChatController(chatService),
		MessageController: controller.NewMessageController(messageService),
		AdminController:   controller.NewAdminController(adminService, authService),
		AuthService:       authService,
		Logger:            sysLogger,
	}
}
