package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/sitepulse/sitepulse/internal/api/dto/request"
	"github.com/sitepulse/sitepulse/internal/api/dto/response"
	"github.com/sitepulse/sitepulse/internal/apperrors"
	"github.com/sitepulse/sitepulse/internal/model"
	"github.com/sitepulse/sitepulse/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type MonitorHandler interface {
	CreateMonitor() gin.HandlerFunc
	GetMonitors() gin.HandlerFunc
	GetMonitor() gin.HandlerFunc
	UpdateMonitor() gin.HandlerFunc
	DeleteMonitor() gin.HandlerFunc
	GetMonitorHistory() gin.HandlerFunc
	GetMonitorDailyHistory() gin.HandlerFunc
	GetMonitorLatestResult() gin.HandlerFunc
	GetMonitorSSLInfo() gin.HandlerFunc
	ExportMonitorsToExcelFile() gin.HandlerFunc
}

type monitorHandler struct {
	logger         Logger
	monitorService service.MonitorService
}

func formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", err.Field())
	case "email":
		return fmt.Sprintf("The %s field is not a valid email", err.Field())
	case "url":
		return fmt.Sprintf("The %s field is not a valid url", err.Field())
	case "gte":
		return fmt.Sprintf("The %s field must be greater than or equal to %s", err.Field(), err.Param())
	default:
		return fmt.Sprintf("Validation failed for %s with tag %s.", err.Field(), err.Tag())
	}
}

func bindError(c *gin.Context, err error) {
	var validatorError validator.ValidationErrors
	if errors.As(err, &validatorError) {
		c.JSON(http.StatusBadRequest, response.Response{
			Message: formatValidationError(validatorError[0]),
		})
		return
	}
	c.JSON(http.StatusBadRequest, response.Response{
		Message: "Invalid request body",
	})
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, response.Response{
			Message: "Id must be a positive integer",
		})
		return 0, false
	}
	return id, true
}

func toMonitorResponse(m model.Monitor) response.MonitorResponse {
	return response.MonitorResponse{
		ID:                m.ID,
		Name:              m.Name,
		URL:               m.URL,
		Method:            m.Method,
		HeadersJSON:       m.HeadersJSON,
		Body:              m.Body,
		ExpectedStatusMin: m.ExpectedStatusMin,
		ExpectedStatusMax: m.ExpectedStatusMax,
		Keyword:           m.Keyword,
		GroupID:           m.GroupID,
		IntervalSeconds:   m.IntervalSeconds,
		LastOnline:        m.LastOnline,
		LastCheckedAt:     m.LastCheckedAt,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func toCheckResultResponse(r model.CheckResult) response.CheckResultResponse {
	return response.CheckResultResponse{
		MonitorID:  r.MonitorID,
		CheckedAt:  r.CheckedAt,
		Online:     r.Online,
		StatusCode: r.StatusCode,
		ResponseMs: r.ResponseMs,
		Error:      r.Error,
	}
}

func (m *monitorHandler) CreateMonitor() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.MonitorRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
		monitor, err := m.monitorService.CreateMonitor(c, model.Monitor{
			Name:              req.Name,
			URL:               req.URL,
			Method:            req.Method,
			HeadersJSON:       req.HeadersJSON,
			Body:              req.Body,
			ExpectedStatusMin: req.ExpectedStatusMin,
			ExpectedStatusMax: req.ExpectedStatusMax,
			Keyword:           req.Keyword,
			GroupID:           req.GroupID,
			IntervalSeconds:   req.IntervalSeconds,
		})
		if err != nil {
			if errors.Is(err, apperrors.ErrInvalidMonitorConfig) {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: err.Error(),
				})
				return
			}
			err = fmt.Errorf("MonitorHandler.CreateMonitor: %w", err)
			m.logger.LoggingError(c, err, "failed to create monitor", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusCreated, toMonitorResponse(monitor))
	}
}

func (m *monitorHandler) GetMonitors() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Query("export") == "true" {
			m.exportMonitorsJSON(c)
			return
		}
		monitors, err := m.monitorService.ListMonitors(c)
		if err != nil {
			err = fmt.Errorf("MonitorHandler.GetMonitors: %w", err)
			m.logger.LoggingError(c, err, "failed to get monitors", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		res := make([]response.MonitorResponse, 0, len(monitors))
		for _, monitor := range monitors {
			res = append(res, toMonitorResponse(monitor))
		}
		c.JSON(http.StatusOK, res)
	}
}

func (m *monitorHandler) exportMonitorsJSON(c *gin.Context) {
	days := 30
	if v := c.Query("days"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 365 {
			days = n
		}
	}
	exports, err := m.monitorService.ExportMonitors(c, days)
	if err != nil {
		err = fmt.Errorf("MonitorHandler.exportMonitorsJSON: %w", err)
		m.logger.LoggingError(c, err, "failed to export monitors", zap.ErrorLevel)
		c.JSON(http.StatusInternalServerError, response.Response{
			Message: "Internal server error",
		})
		return
	}
	items := make([]response.MonitorExportItem, 0, len(exports))
	for _, export := range exports {
		history := make([]response.CheckResultResponse, 0, len(export.History))
		for _, r := range export.History {
			history = append(history, toCheckResultResponse(r))
		}
		items = append(items, response.MonitorExportItem{
			Name:              export.Monitor.Name,
			URL:               export.Monitor.URL,
			Method:            export.Monitor.Method,
			HeadersJSON:       export.Monitor.HeadersJSON,
			Body:              export.Monitor.Body,
			ExpectedStatusMin: export.Monitor.ExpectedStatusMin,
			ExpectedStatusMax: export.Monitor.ExpectedStatusMax,
			Keyword:           export.Monitor.Keyword,
			GroupID:           export.Monitor.GroupID,
			IntervalSeconds:   export.Monitor.IntervalSeconds,
			History:           history,
		})
	}
	c.JSON(http.StatusOK, response.MonitorExportResponse{
		Version:    "1.0",
		ExportedAt: time.Now().Format(time.RFC3339),
		Monitors:   items,
	})
}

func (m *monitorHandler) GetMonitor() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		monitor, err := m.monitorService.GetMonitorByID(c, id)
		if err != nil {
			if errors.Is(err, apperrors.ErrMonitorNotFound) {
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Monitor not found",
				})
				return
			}
			err = fmt.Errorf("MonitorHandler.GetMonitor: %w", err)
			m.logger.LoggingError(c, err, "failed to get monitor", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, toMonitorResponse(monitor))
	}
}

func (m *monitorHandler) UpdateMonitor() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var req request.MonitorRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
		monitor, err := m.monitorService.UpdateMonitor(c, model.Monitor{
			ID:                id,
			Name:              req.Name,
			URL:               req.URL,
			Method:            req.Method,
			HeadersJSON:       req.HeadersJSON,
			Body:              req.Body,
			ExpectedStatusMin: req.ExpectedStatusMin,
			ExpectedStatusMax: req.ExpectedStatusMax,
			Keyword:           req.Keyword,
			GroupID:           req.GroupID,
			IntervalSeconds:   req.IntervalSeconds,
		})
		if err != nil {
			if errors.Is(err, apperrors.ErrInvalidMonitorConfig) {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: err.Error(),
				})
				return
			}
			if errors.Is(err, apperrors.ErrMonitorNotFound) {
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Monitor not found",
				})
				return
			}
			err = fmt.Errorf("MonitorHandler.UpdateMonitor: %w", err)
			m.logger.LoggingError(c, err, "failed to update monitor", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, toMonitorResponse(monitor))
	}
}

func (m *monitorHandler) DeleteMonitor() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		if err := m.monitorService.DeleteMonitor(c, id); err != nil {
			if errors.Is(err, apperrors.ErrMonitorNotFound) {
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Monitor not found",
				})
				return
			}
			err = fmt.Errorf("MonitorHandler.DeleteMonitor: %w", err)
			m.logger.LoggingError(c, err, "failed to delete monitor", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func (m *monitorHandler) GetMonitorHistory() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
		if err != nil || days < 1 || days > 365 {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Days must be an integer between 1 and 365",
			})
			return
		}
		if c.Query("group") == "day" {
			m.dailyHistory(c, id, days)
			return
		}
		since := time.Now().UTC().AddDate(0, 0, -days)
		results, err := m.monitorService.GetHistory(c, id, since)
		if err != nil {
			if errors.Is(err, apperrors.ErrMonitorNotFound) {
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Monitor not found",
				})
				return
			}
			err = fmt.Errorf("MonitorHandler.GetMonitorHistory: %w", err)
			m.logger.LoggingError(c, err, "failed to get monitor history", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		res := make([]response.CheckResultResponse, 0, len(results))
		for _, r := range results {
			res = append(res, toCheckResultResponse(r))
		}
		c.JSON(http.StatusOK, res)
	}
}

func (m *monitorHandler) GetMonitorDailyHistory() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
		if err != nil || days < 1 || days > 365 {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Days must be an integer between 1 and 365",
			})
			return
		}
		m.dailyHistory(c, id, days)
	}
}

func (m *monitorHandler) dailyHistory(c *gin.Context, id, days int) {
	aggregates, err := m.monitorService.GetDailyHistory(c, id, days)
	if err != nil {
		if errors.Is(err, apperrors.ErrMonitorNotFound) {
			c.JSON(http.StatusNotFound, response.Response{
				Message: "Monitor not found",
			})
			return
		}
		err = fmt.Errorf("MonitorHandler.dailyHistory: %w", err)
		m.logger.LoggingError(c, err, "failed to get daily history", zap.ErrorLevel)
		c.JSON(http.StatusInternalServerError, response.Response{
			Message: "Internal server error",
		})
		return
	}
	res := make([]response.DayAggregateResponse, 0, len(aggregates))
	for _, a := range aggregates {
		res = append(res, response.DayAggregateResponse{
			Day:           a.Day.Format("2006-01-02"),
			OnlineCount:   a.OnlineCount,
			TotalCount:    a.TotalCount,
			AvgResponseMs: a.AvgResponseMs,
		})
	}
	c.JSON(http.StatusOK, res)
}

func (m *monitorHandler) GetMonitorLatestResult() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		result, err := m.monitorService.GetLatestResult(c, id)
		if err != nil {
			if errors.Is(err, apperrors.ErrMonitorNotFound) {
				c.JSON(http.StatusNotFound, response.Response{
					Message: "No results for monitor",
				})
				return
			}
			err = fmt.Errorf("MonitorHandler.GetMonitorLatestResult: %w", err)
			m.logger.LoggingError(c, err, "failed to get latest result", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, toCheckResultResponse(result))
	}
}

func (m *monitorHandler) GetMonitorSSLInfo() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		info, err := m.monitorService.GetSSLInfo(c, id)
		if err != nil {
			if errors.Is(err, apperrors.ErrSSLInfoNotFound) {
				c.JSON(http.StatusNotFound, response.Response{
					Message: "No certificate info for monitor",
				})
				return
			}
			err = fmt.Errorf("MonitorHandler.GetMonitorSSLInfo: %w", err)
			m.logger.LoggingError(c, err, "failed to get ssl info", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, response.SSLInfoResponse{
			MonitorID: info.MonitorID,
			ExpiresAt: info.ExpiresAt,
			Issuer:    info.Issuer,
			DaysLeft:  info.DaysLeft,
		})
	}
}

func (m *monitorHandler) ExportMonitorsToExcelFile() gin.HandlerFunc {
	return func(c *gin.Context) {
		monitors, err := m.monitorService.ListMonitors(c)
		if err != nil {
			err = fmt.Errorf("MonitorHandler.ExportMonitorsToExcelFile: %w", err)
			m.logger.LoggingError(c, err, "failed to export monitors", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		file, err := m.generateExcelFile(monitors)
		if err != nil {
			err = fmt.Errorf("MonitorHandler.ExportMonitorsToExcelFile: %w", err)
			m.logger.LoggingError(c, err, "failed to export monitors", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		fileName := fmt.Sprintf("monitors-%s.xlsx", time.Now().Format("2006-01-02T15:04:05"))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", fileName))
		if err = file.Write(c.Writer); err != nil {
			err = fmt.Errorf("MonitorHandler.ExportMonitorsToExcelFile: %w", err)
			m.logger.LoggingError(c, err, "failed to export monitors", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.Status(http.StatusOK)
	}
}

func (m *monitorHandler) generateExcelFile(monitors []model.Monitor) (*excelize.File, error) {
	f := excelize.NewFile()
	sheetName := "Monitors"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	headers := []interface{}{"id", "name", "url", "method", "expected_status_min", "expected_status_max", "keyword", "interval_seconds", "last_online", "last_checked_at", "created_at"}
	if err = f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return nil, err
	}
	for i, monitor := range monitors {
		lastOnline := ""
		if monitor.LastOnline != nil {
			lastOnline = strconv.FormatBool(*monitor.LastOnline)
		}
		lastCheckedAt := ""
		if monitor.LastCheckedAt != nil {
			lastCheckedAt = monitor.LastCheckedAt.Format("2006-01-02 15:04:05")
		}
		rowData := []interface{}{
			monitor.ID,
			monitor.Name,
			monitor.URL,
			monitor.Method,
			monitor.ExpectedStatusMin,
			monitor.ExpectedStatusMax,
			monitor.Keyword,
			monitor.IntervalSeconds,
			lastOnline,
			lastCheckedAt,
			monitor.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		startCell := fmt.Sprintf("A%d", i+2)
		if err = f.SetSheetRow(sheetName, startCell, &rowData); err != nil {
			return nil, err
		}
	}
	f.SetActiveSheet(index)
	return f, nil
}

func NewMonitorHandler(logger Logger, monitorService service.MonitorService) MonitorHandler {
	return &monitorHandler{
		logger:         logger,
		monitorService: monitorService,
	}
}
