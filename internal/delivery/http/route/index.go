package route

import (
	"net/http"

	_ "disaster-alert/docs"
	httpHandler "disaster-alert/internal/delivery/http/handler"
	"disaster-alert/internal/delivery/http/middleware"
	mongorepo "disaster-alert/internal/repository/mongodb"
	"disaster-alert/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Options struct {
	Secret       string
	StrictStatus bool
	Logger       *zap.Logger
}

type Handlers struct {
	User         *httpHandler.UserHandler
	Notification *httpHandler.NotificationHandler
	Email        *httpHandler.EmailHandler
	Health       *httpHandler.HealthHandler
}

// SetupRoute wires repositories, services and handlers onto app. mailer may
// be nil, in which case /api/send_email reports the provider as unconfigured.
func SetupRoute(app *gin.Engine, store *mongorepo.Store, mailer service.Mailer, opts Options) {
	// --- repositories ---
	userRepo := mongorepo.NewUserRepository(store, mongorepo.CollectionUsers)
	adminRepo := mongorepo.NewUserRepository(store, mongorepo.CollectionAdmins)
	notificationRepo := mongorepo.NewNotificationRepository(store)

	// --- services ---
	identityService := service.NewIdentityService(userRepo, adminRepo, opts.Logger)
	notificationService := service.NewNotificationService(notificationRepo, opts.Logger)
	emailService := service.NewEmailService(mailer, opts.Logger)

	// --- handlers ---
	resp := httpHandler.Responder{Strict: opts.StrictStatus, Logger: opts.Logger}
	Mount(app, Handlers{
		User:         httpHandler.NewUserHandler(identityService, resp),
		Notification: httpHandler.NewNotificationHandler(notificationService, resp),
		Email:        httpHandler.NewEmailHandler(emailService, resp),
		Health:       httpHandler.NewHealthHandler(store, opts.Logger),
	}, opts)
}

// Mount registers the routes. Every /api route sits behind the shared hash.
func Mount(app *gin.Engine, h Handlers, opts Options) {
	app.Use(middleware.RequestID(), middleware.RequestLogger(opts.Logger), middleware.Recovery(opts.Logger))

	app.GET("/healthz", h.Health.Health)
	app.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.URL("/swagger/doc.json"),
		ginSwagger.DefaultModelsExpandDepth(0),
	))

	failStatus := http.StatusOK
	if opts.StrictStatus {
		failStatus = http.StatusUnauthorized
	}
	api := app.Group("/api", middleware.HashRequired(opts.Secret, failStatus))

	// --- accounts ---
	api.GET("/user", h.User.Login)
	api.POST("/user", h.User.Register)
	api.GET("/admin", h.User.AdminLogin)

	// --- notifications ---
	api.GET("/notification/admin", h.Notification.ListByAdmin)
	api.GET("/notification/location", h.Notification.ListByLocation)
	api.POST("/notification", h.Notification.AddNotification)

	// --- email ---
	api.POST("/send_email", h.Email.SendEmail)
}
