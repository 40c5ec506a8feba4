package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sitepulse/sitepulse/internal/api/dto/request"
	"github.com/sitepulse/sitepulse/internal/api/dto/response"
	"github.com/sitepulse/sitepulse/internal/apperrors"
	"github.com/sitepulse/sitepulse/internal/model"
	"github.com/sitepulse/sitepulse/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type GroupHandler interface {
	CreateGroup() gin.HandlerFunc
	GetGroups() gin.HandlerFunc
	UpdateGroup() gin.HandlerFunc
	DeleteGroup() gin.HandlerFunc
}

type groupHandler struct {
	logger       Logger
	groupService service.GroupService
}

func (g *groupHandler) CreateGroup() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.GroupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
		group, err := g.groupService.CreateGroup(c, model.MonitorGroup{
			Name:  req.Name,
			Icon:  req.Icon,
			Color: req.Color,
		})
		if err != nil {
			err = fmt.Errorf("GroupHandler.CreateGroup: %w", err)
			g.logger.LoggingError(c, err, "failed to create group", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusCreated, group)
	}
}

func (g *groupHandler) GetGroups() gin.HandlerFunc {
	return func(c *gin.Context) {
		groups, err := g.groupService.ListGroups(c)
		if err != nil {
			err = fmt.Errorf("GroupHandler.GetGroups: %w", err)
			g.logger.LoggingError(c, err, "failed to get groups", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, groups)
	}
}

func (g *groupHandler) UpdateGroup() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var req request.GroupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
		group, err := g.groupService.UpdateGroup(c, model.MonitorGroup{
			ID:    id,
			Name:  req.Name,
			Icon:  req.Icon,
			Color: req.Color,
		})
		if err != nil {
			if errors.Is(err, apperrors.ErrGroupNotFound) {
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Group not found",
				})
				return
			}
			err = fmt.Errorf("GroupHandler.UpdateGroup: %w", err)
			g.logger.LoggingError(c, err, "failed to update group", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, group)
	}
}

func (g *groupHandler) DeleteGroup() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		if err := g.groupService.DeleteGroup(c, id); err != nil {
			if errors.Is(err, apperrors.ErrGroupNotFound) {
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Group not found",
				})
				return
			}
			err = fmt.Errorf("GroupHandler.DeleteGroup: %w", err)
			g.logger.LoggingError(c, err, "failed to delete group", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func NewGroupHandler(logger Logger, groupService service.GroupService) GroupHandler {
	return &groupHandler{
		logger:       logger,
		groupService: groupService,
	}
}
