package http

import (
	"log/slog"

	"evcharge-dashboard-server/internal/config"
	"evcharge-dashboard-server/internal/http/handlers"
	"evcharge-dashboard-server/internal/http/middleware"
	"evcharge-dashboard-server/internal/services"
	"github.com/gin-gonic/gin"
)

type Dependencies struct {
	Config           *config.Config
	AuthService      *services.AuthService
	ComplaintService *services.ComplaintService
	Logger           *slog.Logger
	RateLimiter      *middleware.RateLimiter
}

func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(deps.Logger))
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(deps.Config.AllowedOrigins))

	authHandler := handlers.NewAuthHandler(deps.AuthService)
	meHandler := handlers.NewMeHandler()
	complaintHandler := handlers.NewComplaintHandler(deps.ComplaintService)

	router.GET("/", handlers.Root)

	api := router.Group("/api")
	{
		api.GET("/health", handlers.Health)
		api.POST("/login", deps.RateLimiter.Middleware(), authHandler.Login)

		api.GET("/complaints", complaintHandler.List)
		api.POST("/complaints", complaintHandler.Create)
		api.PATCH("/complaints/:id", complaintHandler.UpdateStatus)
		api.DELETE("/complaints/:id", complaintHandler.Delete)
	}

	protected := api.Group("")
	protected.Use(middleware.Auth(deps.AuthService))
	{
		protected.GET("/me", meHandler.GetMe)
	}

	return router
}
