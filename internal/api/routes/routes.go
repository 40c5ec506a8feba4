package routes

import (
	"github.com/sitepulse/sitepulse/internal/api/handler"
	"github.com/sitepulse/sitepulse/pkg/middleware"

	"github.com/gin-gonic/gin"
)

// AddMonitorRoutes wires the monitor surface. Reads are public so dashboards
// work without credentials; every mutation requires the admin token.
func AddMonitorRoutes(r *gin.Engine, h handler.MonitorHandler, m middleware.AuthMiddleware) {
	monitorRoutes := r.Group("/api/monitors")
	// the list itself is public; the export=true variant dumps full configs
	// with history and needs the admin token
	monitorRoutes.GET("", m.RequireAdminWhen(func(c *gin.Context) bool {
		return c.Query("export") == "true"
	}), h.GetMonitors())
	monitorRoutes.GET("/export", m.RequireAdmin(), h.ExportMonitorsToExcelFile())
	monitorRoutes.GET("/:id", h.GetMonitor())
	monitorRoutes.GET("/:id/history", h.GetMonitorHistory())
	monitorRoutes.GET("/:id/history/daily", h.GetMonitorDailyHistory())
	monitorRoutes.GET("/:id/latest", h.GetMonitorLatestResult())
	r.GET("/api/ssl/:id", h.GetMonitorSSLInfo())
	monitorRoutes.POST("", m.RequireAdmin(), h.CreateMonitor())
	monitorRoutes.PUT("/:id", m.RequireAdmin(), h.UpdateMonitor())
	monitorRoutes.DELETE("/:id", m.RequireAdmin(), h.DeleteMonitor())
}

func AddGroupRoutes(r *gin.Engine, h handler.GroupHandler, m middleware.AuthMiddleware) {
	groupRoutes := r.Group("/api/groups")
	groupRoutes.GET("", h.GetGroups())
	groupRoutes.POST("", m.RequireAdmin(), h.CreateGroup())
	groupRoutes.PUT("/:id", m.RequireAdmin(), h.UpdateGroup())
	groupRoutes.DELETE("/:id", m.RequireAdmin(), h.DeleteGroup())
}

func AddSubscriptionRoutes(r *gin.Engine, h handler.SubscriptionHandler, m middleware.AuthMiddleware) {
	r.POST("/api/public/subscribe", h.Subscribe())

	subscriptionRoutes := r.Group("/api/subscriptions")
	subscriptionRoutes.GET("/verify", h.VerifySubscription())
	subscriptionRoutes.GET("", m.RequireAdmin(), h.GetSubscriptions())
	subscriptionRoutes.DELETE("/:id", m.RequireAdmin(), h.DeleteSubscription())
}

func AddNotificationRoutes(r *gin.Engine, h handler.NotificationHandler, m middleware.AuthMiddleware) {
	notificationRoutes := r.Group("/api/notifications")
	notificationRoutes.GET("", h.GetNotifications())
	notificationRoutes.POST("/test", m.RequireAdmin(), h.SendTestNotification())
}

func AddEventRoutes(r *gin.Engine, h handler.EventsHandler) {
	r.GET("/api/events", h.StreamEvents())
}
