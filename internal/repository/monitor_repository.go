package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sitepulse/sitepulse/internal/apperrors"
	"github.com/sitepulse/sitepulse/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MonitorRepository interface {
	CreateMonitor(ctx context.Context, monitor model.Monitor) (model.Monitor, error)
	GetMonitorByID(ctx context.Context, monitorID int) (model.Monitor, error)
	ListMonitors(ctx context.Context) ([]model.Monitor, error)
	UpdateMonitor(ctx context.Context, updatedData model.Monitor) (model.Monitor, error)
	DeleteMonitorByID(ctx context.Context, monitorID int) error
	UpdateLastState(ctx context.Context, monitorID int, online bool, checkedAt time.Time) error
}

type monitorRepository struct {
	db *gorm.DB
}

func (m *monitorRepository) CreateMonitor(ctx context.Context, monitor model.Monitor) (model.Monitor, error) {
	result := m.db.WithContext(ctx).Create(&monitor)
	if result.Error != nil {
		return monitor, fmt.Errorf("MonitorRepository.CreateMonitor: %w", result.Error)
	}
	return monitor, nil
}

func (m *monitorRepository) GetMonitorByID(ctx context.Context, monitorID int) (model.Monitor, error) {
	var monitor model.Monitor
	result := m.db.WithContext(ctx).First(&monitor, "id = ?", monitorID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return monitor, fmt.Errorf("MonitorRepository.GetMonitorByID: %w", apperrors.ErrMonitorNotFound)
		}
		return monitor, fmt.Errorf("MonitorRepository.GetMonitorByID: %w", result.Error)
	}
	return monitor, nil
}

func (m *monitorRepository) ListMonitors(ctx context.Context) ([]model.Monitor, error) {
	var monitors []model.Monitor
	result := m.db.WithContext(ctx).Order("id").Find(&monitors)
	if result.Error != nil {
		return nil, fmt.Errorf("MonitorRepository.ListMonitors: %w", result.Error)
	}
	return monitors, nil
}

func (m *monitorRepository) UpdateMonitor(ctx context.Context, updatedData model.Monitor) (model.Monitor, error) {
	var monitor model.Monitor
	result := m.db.WithContext(ctx).Model(&monitor).Clauses(clause.Returning{}).Where("id = ?", updatedData.ID).Updates(updatedData)
	if result.Error != nil {
		return monitor, fmt.Errorf("MonitorRepository.UpdateMonitor: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return monitor, fmt.Errorf("MonitorRepository.UpdateMonitor: %w", apperrors.ErrMonitorNotFound)
	}
	return monitor, nil
}

// DeleteMonitorByID removes the monitor and everything hanging off it:
// results, ssl info, notifications and subscriptions.
func (m *monitorRepository) DeleteMonitorByID(ctx context.Context, monitorID int) error {
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if res := tx.Where("monitor_id = ?", monitorID).Delete(&model.CheckResult{}); res.Error != nil {
			return res.Error
		}
		if res := tx.Where("monitor_id = ?", monitorID).Delete(&model.SSLInfo{}); res.Error != nil {
			return res.Error
		}
		if res := tx.Where("monitor_id = ?", monitorID).Delete(&model.Notification{}); res.Error != nil {
			return res.Error
		}
		if res := tx.Where("monitor_id = ?", monitorID).Delete(&model.Subscription{}); res.Error != nil {
			return res.Error
		}
		res := tx.Where("id = ?", monitorID).Delete(&model.Monitor{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrMonitorNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("MonitorRepository.DeleteMonitorByID: %w", err)
	}
	return nil
}

func (m *monitorRepository) UpdateLastState(ctx context.Context, monitorID int, online bool, checkedAt time.Time) error {
	result := m.db.WithContext(ctx).Model(&model.Monitor{}).Where("id = ?", monitorID).
		Updates(map[string]interface{}{"last_online": online, "last_checked_at": checkedAt})
	if result.Error != nil {
		return fmt.Errorf("MonitorRepository.UpdateLastState: %w", result.Error)
	}
	return nil
}

func NewMonitorRepository(db *gorm.DB) MonitorRepository {
	return &monitorRepository{
		db: db,
	}
}
