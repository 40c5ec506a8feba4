package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/sitepulse/sitepulse/internal/api/dto/response"
	"github.com/sitepulse/sitepulse/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type NotificationHandler interface {
	GetNotifications() gin.HandlerFunc
	SendTestNotification() gin.HandlerFunc
}

type notificationHandler struct {
	logger              Logger
	notificationService service.NotificationService
}

func (n *notificationHandler) GetNotifications() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventType := c.Query("type")
		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Page must be an integer",
			})
			return
		}
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Limit must be an integer",
			})
			return
		}
		if page < 1 {
			page = 1
		}
		if limit < 1 || limit > 200 {
			limit = 20
		}
		offset := (page - 1) * limit
		records, total, err := n.notificationService.ListNotifications(c, eventType, limit, offset)
		if err != nil {
			err = fmt.Errorf("NotificationHandler.GetNotifications: %w", err)
			n.logger.LoggingError(c, err, "failed to get notifications", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		res := response.NotificationListResponse{
			Items: make([]response.NotificationResponse, 0, len(records)),
			Total: total,
		}
		for _, r := range records {
			res.Items = append(res.Items, response.NotificationResponse{
				ID:          r.ID,
				MonitorID:   r.MonitorID,
				MonitorName: r.MonitorName,
				CreatedAt:   r.CreatedAt,
				Type:        r.Type,
				Direction:   r.Direction,
				Message:     r.Message,
			})
		}
		c.JSON(http.StatusOK, res)
	}
}

func (n *notificationHandler) SendTestNotification() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := n.notificationService.SendTestNotification(c); err != nil {
			err = fmt.Errorf("NotificationHandler.SendTestNotification: %w", err)
			n.logger.LoggingError(c, err, "failed to send test notification", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Failed to send test notification",
			})
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Test notification sent",
		})
	}
}

func NewNotificationHandler(logger Logger, notificationService service.NotificationService) NotificationHandler {
	return &notificationHandler{
		logger:              logger,
		notificationService: notificationService,
	}
}
