package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Публичные маршруты для лендинга и бота
	safepoints := api.Group("/safepoints")
	{
		safepoints.GET("", h.listSafepoints)
		safepoints.GET("/nearest", h.nearestSafepoints)
	}
	api.GET("/code-phrase", h.getCodePhrase)

	bot := api.Group("/bot")
	{
		bot.GET("/greeting", h.botGreeting)
		bot.POST("/messages", h.botMessage)
	}

	auth := APIKeyAuthMiddleware(h.cfg, h.logger)

	// Маршруты сотрудников точки
	incidents := api.Group("/incidents", auth)
	{
		incidents.POST("", h.openIncident)
		incidents.GET("/:id", h.getIncident)
		incidents.POST("/:id/actions", h.recordAction)
		incidents.POST("/:id/close", h.closeIncident)
	}

	// Панель мониторинга
	dashboard := api.Group("/dashboard", auth)
	{
		dashboard.GET("/incidents", h.recentIncidents)
		dashboard.GET("/stats", h.getStats)
		dashboard.GET("/stream", h.streamDashboard)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
