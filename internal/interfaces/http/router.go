package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	kbusecases "gastrack/internal/application/kb/usecases"
	srusecases "gastrack/internal/application/servicerequest/usecases"
	userusecases "gastrack/internal/application/user/usecases"
	"gastrack/internal/infrastructure/auth"
	"gastrack/internal/infrastructure/config"
	"gastrack/internal/infrastructure/email"
	"gastrack/internal/infrastructure/ratelimit"
	"gastrack/internal/infrastructure/repository"
	"gastrack/internal/infrastructure/storage"
	"gastrack/internal/interfaces/http/handlers"
	"gastrack/internal/interfaces/http/middleware"
	"gastrack/internal/shared/authorization"
	"gastrack/internal/shared/db"
	"gastrack/internal/shared/logger"
	"gastrack/internal/shared/services/markdown"
)

type Router struct {
	engine *gin.Engine
	cfg    *config.Config
	logger logger.Interface
}

// emailSender is what the wiring needs from the mail layer: both the user
// welcome mail and the urgent request notification.
type emailSender interface {
	SendWelcomeEmail(to, displayName, accountNumber string) error
	NotifyUrgentRequest(requestID uint, requestType, address string) error
	NotifyCommentAdded(to string, requestID uint, authorName string) error
}

// jwtAdapter bridges the infrastructure token pair into the application
// layer's own type.
type jwtAdapter struct {
	svc *auth.JWTService
}

func (a jwtAdapter) Generate(userID uint, sessionID string, role authorization.UserRole) (*userusecases.TokenPair, error) {
	pair, err := a.svc.Generate(userID, sessionID, role)
	if err != nil {
		return nil, err
	}
	return &userusecases.TokenPair{
		AccessToken: pair.AccessToken,
		ExpiresIn:   pair.ExpiresIn,
	}, nil
}

// NewRouter wires repositories, use cases, and handlers onto a Gin engine.
func NewRouter(cfg *config.Config, database *gorm.DB, log logger.Interface) (*Router, error) {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log.Named("http")))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	// repositories
	userRepo := repository.NewUserRepository(database)
	sessionRepo := repository.NewSessionRepository(database)
	requestRepo := repository.NewServiceRequestRepository(database)
	commentRepo := repository.NewRequestCommentRepository(database)
	attachmentRepo := repository.NewRequestAttachmentRepository(database)
	articleRepo := repository.NewArticleRepository(database)

	// infrastructure services
	txMgr := db.NewTransactionManager(database)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	markdownSvc := markdown.NewService()

	var mailer emailSender = email.NoopEmailService{}
	if cfg.Email.Enabled {
		mailer = email.NewSMTPEmailService(email.SMTPConfig{
			Host:        cfg.Email.SMTPHost,
			Port:        cfg.Email.SMTPPort,
			Username:    cfg.Email.SMTPUser,
			Password:    cfg.Email.SMTPPassword,
			FromAddress: cfg.Email.FromAddress,
			FromName:    cfg.Email.FromName,
		})
	}

	fileStore, err := storage.NewMinioFileStore(&cfg.Storage)
	if err != nil {
		return nil, err
	}
	if err := fileStore.EnsureBucket(context.Background()); err != nil {
		// Attachment uploads will fail until the bucket exists, but the rest
		// of the API stays usable without object storage running.
		log.Warnw("attachment bucket unavailable", "error", err, "bucket", cfg.Storage.Bucket)
	}

	var limiter ratelimit.RateLimiter = ratelimit.NoopRateLimiter{}
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		limiter = ratelimit.NewRedisRateLimiter(redisClient)
	}

	sessionDuration := time.Duration(cfg.Auth.JWT.AccessExpMinutes) * time.Minute

	// use cases
	registerUC := userusecases.NewRegisterUseCase(userRepo, hasher, mailer, txMgr, log.Named("register"))
	loginUC := userusecases.NewLoginUseCase(userRepo, sessionRepo, hasher, jwtAdapter{jwtService}, sessionDuration, log.Named("login"))
	logoutUC := userusecases.NewLogoutUseCase(sessionRepo, log.Named("logout"))
	getProfileUC := userusecases.NewGetProfileUseCase(userRepo, log.Named("profile"))

	createUC := srusecases.NewCreateRequestUseCase(requestRepo, userRepo, mailer, log.Named("request.create"))
	listUC := srusecases.NewListRequestsUseCase(requestRepo, userRepo, log.Named("request.list"))
	getUC := srusecases.NewGetRequestUseCase(requestRepo, commentRepo, attachmentRepo, userRepo, fileStore, log.Named("request.get"))
	updateUC := srusecases.NewUpdateRequestUseCase(requestRepo, userRepo, log.Named("request.update"))
	deleteUC := srusecases.NewDeleteRequestUseCase(requestRepo, attachmentRepo, fileStore, txMgr, log.Named("request.delete"))
	addCommentUC := srusecases.NewAddCommentUseCase(requestRepo, commentRepo, userRepo, mailer, log.Named("request.comment"))
	uploadUC := srusecases.NewUploadAttachmentUseCase(requestRepo, attachmentRepo, fileStore, log.Named("request.attachment"))

	listArticlesUC := kbusecases.NewListArticlesUseCase(articleRepo, log.Named("kb.list"))
	getArticleUC := kbusecases.NewGetArticleUseCase(articleRepo, markdownSvc, log.Named("kb.get"))

	// handlers
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, logoutUC, getProfileUC, log.Named("handler.auth"))
	requestHandler := handlers.NewServiceRequestHandler(createUC, listUC, getUC, updateUC, deleteUC, addCommentUC, uploadUC, log.Named("handler.request"))
	kbHandler := handlers.NewKBHandler(listArticlesUC, getArticleUC)
	healthHandler := handlers.NewHealthHandler(database)

	authMW := middleware.NewAuthMiddleware(jwtService, sessionRepo, log.Named("middleware.auth"))
	loginLimit := middleware.LoginRateLimit(limiter, ratelimit.RateLimitConfig{
		RequestsPerMinute: cfg.RateLimit.LoginPerMinute,
		RequestsPerHour:   cfg.RateLimit.LoginPerHour,
	}, log.Named("middleware.ratelimit"))

	api := engine.Group("/api")
	{
		api.GET("/health", healthHandler.Check)

		users := api.Group("/users")
		{
			users.POST("/register", authHandler.Register)
			users.POST("/login", loginLimit, authHandler.Login)
			users.POST("/logout", authMW.RequireAuth(), authHandler.Logout)
			users.GET("/profile", authMW.RequireAuth(), authHandler.GetProfile)
		}

		requests := api.Group("/service-requests", authMW.RequireAuth())
		{
			requests.GET("", requestHandler.List)
			requests.POST("", requestHandler.Create)
			requests.GET("/:id", requestHandler.Get)
			requests.PATCH("/:id", requestHandler.Update)
			requests.DELETE("/:id", requestHandler.Delete)
			requests.POST("/:id/add_comment", requestHandler.AddComment)
			requests.POST("/:id/attachments", requestHandler.UploadAttachment)
		}

		kb := api.Group("/kb")
		{
			kb.GET("/articles", kbHandler.List)
			kb.GET("/articles/:slug", kbHandler.Get)
		}
	}

	return &Router{
		engine: engine,
		cfg:    cfg,
		logger: log,
	}, nil
}

// Engine exposes the underlying Gin engine for the HTTP server.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
