package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/sitepulse/sitepulse/internal/api/dto/request"
	"github.com/sitepulse/sitepulse/internal/api/dto/response"
	"github.com/sitepulse/sitepulse/internal/apperrors"
	"github.com/sitepulse/sitepulse/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SubscriptionHandler interface {
	Subscribe() gin.HandlerFunc
	VerifySubscription() gin.HandlerFunc
	GetSubscriptions() gin.HandlerFunc
	DeleteSubscription() gin.HandlerFunc
}

type subscriptionHandler struct {
	logger              Logger
	subscriptionService service.SubscriptionService
}

func (s *subscriptionHandler) Subscribe() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.SubscribeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
		err := s.subscriptionService.Subscribe(c, req.MonitorID, req.Email, req.Events)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrMonitorNotFound):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Monitor not found",
				})
			case errors.Is(err, apperrors.ErrDuplicateSubscriber):
				c.JSON(http.StatusConflict, response.Response{
					Message: "Email is already subscribed to this monitor",
				})
			case errors.Is(err, apperrors.ErrInvalidMonitorConfig):
				c.JSON(http.StatusBadRequest, response.Response{
					Message: err.Error(),
				})
			default:
				err = fmt.Errorf("SubscriptionHandler.Subscribe: %w", err)
				s.logger.LoggingError(c, err, "failed to create subscription", zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusAccepted, response.Response{
			Message: "Verification email sent",
		})
	}
}

func (s *subscriptionHandler) VerifySubscription() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Token is required",
			})
			return
		}
		_, err := s.subscriptionService.Verify(c, token)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrSubscriptionNotFound):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Invalid verification token",
				})
			case errors.Is(err, apperrors.ErrTokenExpired):
				c.JSON(http.StatusGone, response.Response{
					Message: "Verification token expired, subscribe again",
				})
			default:
				err = fmt.Errorf("SubscriptionHandler.VerifySubscription: %w", err)
				s.logger.LoggingError(c, err, "failed to verify subscription", zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Subscription confirmed",
		})
	}
}

func (s *subscriptionHandler) GetSubscriptions() gin.HandlerFunc {
	return func(c *gin.Context) {
		subs, err := s.subscriptionService.ListSubscriptions(c)
		if err != nil {
			err = fmt.Errorf("SubscriptionHandler.GetSubscriptions: %w", err)
			s.logger.LoggingError(c, err, "failed to get subscriptions", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		res := make([]response.SubscriptionResponse, 0, len(subs))
		for _, sub := range subs {
			res = append(res, response.SubscriptionResponse{
				ID:           sub.ID,
				MonitorID:    sub.MonitorID,
				MonitorName:  sub.MonitorName,
				Email:        sub.Email,
				NotifyEvents: sub.NotifyEvents,
				Verified:     sub.Verified,
				CreatedAt:    sub.CreatedAt,
			})
		}
		c.JSON(http.StatusOK, res)
	}
}

func (s *subscriptionHandler) DeleteSubscription() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil || id < 1 {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Id must be a positive integer",
			})
			return
		}
		if err := s.subscriptionService.DeleteSubscription(c, id); err != nil {
			if errors.Is(err, apperrors.ErrSubscriptionNotFound) {
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Subscription not found",
				})
				return
			}
			err = fmt.Errorf("SubscriptionHandler.DeleteSubscription: %w", err)
			s.logger.LoggingError(c, err, "failed to delete subscription", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func NewSubscriptionHandler(logger Logger, subscriptionService service.SubscriptionService) SubscriptionHandler {
	return &subscriptionHandler{
		logger:              logger,
		subscriptionService: subscriptionService,
	}
}
