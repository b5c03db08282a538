package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/smart-ledger/ledger-backend/cmd/docs"
	"github.com/smart-ledger/ledger-backend/internal/core/session"
	"github.com/smart-ledger/ledger-backend/internal/middleware"
	"github.com/smart-ledger/ledger-backend/internal/platform/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	portssvc "github.com/smart-ledger/ledger-backend/internal/core/ports/services"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	sessions *session.Manager,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services, sessions)
	registerGoogleOAuthRoutes(r, services)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services, sessions)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	sessions *session.Manager,
) {
	// Apply AuthMiddleware to the entire v1 group; activity tracking runs
	// after it so the idle-timeout countdown resets per request.
	v1 := r.Group("/api/v1",
		middleware.AuthMiddleware(cfg.JWTSecret),
		middleware.SessionActivityMiddleware(sessions),
	)

	// Delegate route registration to specific handlers, passing required services
	registerTransactionRoutes(v1, service.Transaction)
	registerSiteRoutes(v1, service.Site, service.Reporting)
	registerPersonRoutes(v1, service.Person)
	registerReportingRoutes(v1, service.Reporting)
	registerPreferenceRoutes(v1, service.Preference)
	registerSpreadsheetRoutes(v1, service.Spreadsheet)
	registerExampleRoutes(v1)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
