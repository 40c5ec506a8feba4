package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/sitepulse/sitepulse/internal/apperrors"
	"github.com/sitepulse/sitepulse/internal/model"
	"github.com/sitepulse/sitepulse/internal/repository"
)

// MonitorScheduler is the slice of the scheduler the service needs to keep
// probe loops in sync with monitor writes.
type MonitorScheduler interface {
	Apply(m model.Monitor)
	Remove(monitorID int)
}

type MonitorService interface {
	CreateMonitor(ctx context.Context, monitor model.Monitor) (model.Monitor, error)
	GetMonitorByID(ctx context.Context, monitorID int) (model.Monitor, error)
	ListMonitors(ctx context.Context) ([]model.Monitor, error)
	UpdateMonitor(ctx context.Context, monitor model.Monitor) (model.Monitor, error)
	DeleteMonitor(ctx context.Context, monitorID int) error
	GetLatestResult(ctx context.Context, monitorID int) (model.CheckResult, error)
	GetHistory(ctx context.Context, monitorID int, since time.Time) ([]model.CheckResult, error)
	GetDailyHistory(ctx context.Context, monitorID int, days int) ([]model.DayAggregate, error)
	GetSSLInfo(ctx context.Context, monitorID int) (model.SSLInfo, error)
	ExportMonitors(ctx context.Context, days int) ([]model.MonitorExport, error)
}

type monitorService struct {
	monitorRepository repository.MonitorRepository
	historyRepository repository.HistoryRepository
	sslRepository     repository.SSLRepository
	scheduler         MonitorScheduler
	minIntervalSecs   int
	defaultInterval   int
}

func (m *monitorService) validate(monitor model.Monitor) error {
	if strings.TrimSpace(monitor.Name) == "" {
		return fmt.Errorf("%w: name is required", apperrors.ErrInvalidMonitorConfig)
	}
	u, err := url.Parse(monitor.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: url must be http or https", apperrors.ErrInvalidMonitorConfig)
	}
	if monitor.ExpectedStatusMin > monitor.ExpectedStatusMax {
		return fmt.Errorf("%w: expected_status_min greater than expected_status_max", apperrors.ErrInvalidMonitorConfig)
	}
	if monitor.IntervalSeconds != 0 && monitor.IntervalSeconds < m.minIntervalSecs {
		return fmt.Errorf("%w: interval_seconds below minimum of %d", apperrors.ErrInvalidMonitorConfig, m.minIntervalSecs)
	}
	return nil
}

func applyDefaults(monitor *model.Monitor, defaultInterval int) {
	if monitor.Method == "" {
		monitor.Method = "GET"
	}
	if monitor.HeadersJSON == "" {
		monitor.HeadersJSON = "{}"
	}
	if monitor.ExpectedStatusMin == 0 && monitor.ExpectedStatusMax == 0 {
		monitor.ExpectedStatusMin = 200
		monitor.ExpectedStatusMax = 299
	}
	if monitor.IntervalSeconds == 0 {
		monitor.IntervalSeconds = defaultInterval
	}
}

func (m *monitorService) CreateMonitor(ctx context.Context, monitor model.Monitor) (model.Monitor, error) {
	applyDefaults(&monitor, m.defaultInterval)
	if err := m.validate(monitor); err != nil {
		return monitor, fmt.Errorf("MonitorService.CreateMonitor: %w", err)
	}
	created, err := m.monitorRepository.CreateMonitor(ctx, monitor)
	if err != nil {
		return created, fmt.Errorf("MonitorService.CreateMonitor: %w", err)
	}
	m.scheduler.Apply(created)
	return created, nil
}

func (m *monitorService) GetMonitorByID(ctx context.Context, monitorID int) (model.Monitor, error) {
	monitor, err := m.monitorRepository.GetMonitorByID(ctx, monitorID)
	if err != nil {
		return monitor, fmt.Errorf("MonitorService.GetMonitorByID: %w", err)
	}
	return monitor, nil
}

func (m *monitorService) ListMonitors(ctx context.Context) ([]model.Monitor, error) {
	monitors, err := m.monitorRepository.ListMonitors(ctx)
	if err != nil {
		return nil, fmt.Errorf("MonitorService.ListMonitors: %w", err)
	}
	return monitors, nil
}

func (m *monitorService) UpdateMonitor(ctx context.Context, monitor model.Monitor) (model.Monitor, error) {
	applyDefaults(&monitor, m.defaultInterval)
	if err := m.validate(monitor); err != nil {
		return monitor, fmt.Errorf("MonitorService.UpdateMonitor: %w", err)
	}
	updated, err := m.monitorRepository.UpdateMonitor(ctx, monitor)
	if err != nil {
		return updated, fmt.Errorf("MonitorService.UpdateMonitor: %w", err)
	}
	m.scheduler.Apply(updated)
	return updated, nil
}

func (m *monitorService) DeleteMonitor(ctx context.Context, monitorID int) error {
	if err := m.monitorRepository.DeleteMonitorByID(ctx, monitorID); err != nil {
		return fmt.Errorf("MonitorService.DeleteMonitor: %w", err)
	}
	m.scheduler.Remove(monitorID)
	return nil
}

func (m *monitorService) GetLatestResult(ctx context.Context, monitorID int) (model.CheckResult, error) {
	result, err := m.historyRepository.LatestByMonitor(ctx, monitorID)
	if err != nil {
		return result, fmt.Errorf("MonitorService.GetLatestResult: %w", err)
	}
	return result, nil
}

func (m *monitorService) GetHistory(ctx context.Context, monitorID int, since time.Time) ([]model.CheckResult, error) {
	if _, err := m.monitorRepository.GetMonitorByID(ctx, monitorID); err != nil {
		return nil, fmt.Errorf("MonitorService.GetHistory: %w", err)
	}
	results, err := m.historyRepository.QueryRange(ctx, monitorID, since)
	if err != nil {
		return nil, fmt.Errorf("MonitorService.GetHistory: %w", err)
	}
	return results, nil
}

func (m *monitorService) GetDailyHistory(ctx context.Context, monitorID int, days int) ([]model.DayAggregate, error) {
	if _, err := m.monitorRepository.GetMonitorByID(ctx, monitorID); err != nil {
		return nil, fmt.Errorf("MonitorService.GetDailyHistory: %w", err)
	}
	aggregates, err := m.historyRepository.QueryByDay(ctx, monitorID, days)
	if err != nil {
		return nil, fmt.Errorf("MonitorService.GetDailyHistory: %w", err)
	}
	return aggregates, nil
}

func (m *monitorService) ExportMonitors(ctx context.Context, days int) ([]model.MonitorExport, error) {
	monitors, err := m.monitorRepository.ListMonitors(ctx)
	if err != nil {
		return nil, fmt.Errorf("MonitorService.ExportMonitors: %w", err)
	}
	since := time.Now().AddDate(0, 0, -days)
	exports := make([]model.MonitorExport, 0, len(monitors))
	for _, monitor := range monitors {
		history, err := m.historyRepository.QueryRange(ctx, monitor.ID, since)
		if err != nil {
			return nil, fmt.Errorf("MonitorService.ExportMonitors: %w", err)
		}
		exports = append(exports, model.MonitorExport{
			Monitor: monitor,
			History: history,
		})
	}
	return exports, nil
}

func (m *monitorService) GetSSLInfo(ctx context.Context, monitorID int) (model.SSLInfo, error) {
	info, err := m.sslRepository.GetByMonitorID(ctx, monitorID)
	if err != nil {
		return info, fmt.Errorf("MonitorService.GetSSLInfo: %w", err)
	}
	return info, nil
}

func NewMonitorService(
	monitorRepository repository.MonitorRepository,
	historyRepository repository.HistoryRepository,
	sslRepository repository.SSLRepository,
	scheduler MonitorScheduler,
	minIntervalSecs int,
	defaultInterval int,
) MonitorService {
	return &monitorService{
		monitorRepository: monitorRepository,
		historyRepository: historyRepository,
		sslRepository:     sslRepository,
		scheduler:         scheduler,
		minIntervalSecs:   minIntervalSecs,
		defaultInterval:   defaultInterval,
	}
}
