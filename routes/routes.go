package routes

import (
	"fmt"
	"net/http"
	"time"

	"rent-reminder-backend/config"
	"rent-reminder-backend/controllers"
	"rent-reminder-backend/services"
	"rent-reminder-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Deps is everything the router hands to its controllers.
type Deps struct {
	DB          *gorm.DB
	Log         *logrus.Logger
	JWTSecret   string
	CORSOrigins []string

	Auth      *services.AuthService
	Tenants   *services.TenantService
	Reminders *services.ReminderService
	Configs   *services.ConfigService
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		_ = c.Error(fmt.Errorf("panic: %v", recovered))
		utils.RespondWithError(c, http.StatusInternalServerError, utils.CodeInternal, "Internal server error")
	}))
	r.Use(config.PerformanceLogger(deps.Log))

	corsConfig := cors.Config{
		AllowOrigins:     deps.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", config.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", config.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(deps.CORSOrigins) == 0 {
		// credentials cannot be combined with a wildcard origin
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	}
	r.Use(cors.New(corsConfig))

	health := &controllers.HealthController{DB: deps.DB}
	authController := &controllers.AuthController{Auth: deps.Auth}
	tenants := &controllers.TenantController{Tenants: deps.Tenants}
	reminders := &controllers.ReminderController{Reminders: deps.Reminders}
	configs := &controllers.ConfigController{Configs: deps.Configs}

	r.GET("/health", health.Health)

	auth := r.Group("/api/auth")
	{
		auth.POST("/login", authController.Login)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware(deps.JWTSecret))
	{
		// Tenant routes
		tenantRoutes := api.Group("/tenants")
		{
			tenantRoutes.POST("", tenants.CreateTenant)
			tenantRoutes.GET("", tenants.GetTenants)
			tenantRoutes.GET("/:id", tenants.GetTenant)
			tenantRoutes.PUT("/:id", tenants.UpdateTenant)
			tenantRoutes.DELETE("/:id", tenants.DeleteTenant)
		}

		// Reminder routes
		reminderRoutes := api.Group("/reminders")
		{
			reminderRoutes.POST("/trigger", reminders.TriggerReminders)
			reminderRoutes.GET("", reminders.GetReminders)
			reminderRoutes.PUT("/:id/status", reminders.UpdateReminderStatus)
			reminderRoutes.GET("/pending/count", reminders.GetPendingCount)
		}

		// Settings routes
		configRoutes := api.Group("/config")
		{
			configRoutes.GET("", configs.GetConfigs)
			configRoutes.GET("/:key", configs.GetConfig)
			configRoutes.PUT("/:key", configs.UpdateConfig)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		utils.RespondWithError(c, http.StatusNotFound, utils.CodeRouteNotFound, "Route not found")
	})

	return r
}
