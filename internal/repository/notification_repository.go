package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sitepulse/sitepulse/internal/model"

	"gorm.io/gorm"
)

// NotificationRecord is a notification joined with its monitor name for
// display.
type NotificationRecord struct {
	model.Notification
	MonitorName string
}

type NotificationRepository interface {
	Create(ctx context.Context, notification model.Notification) (model.Notification, error)
	List(ctx context.Context, eventType string, direction string, limit int, offset int) ([]NotificationRecord, int64, error)
	LastOfType(ctx context.Context, monitorID int, eventType string) (*time.Time, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func (n *notificationRepository) Create(ctx context.Context, notification model.Notification) (model.Notification, error) {
	res := n.db.WithContext(ctx).Create(&notification)
	if res.Error != nil {
		return notification, fmt.Errorf("NotificationRepository.Create: %w", res.Error)
	}
	return notification, nil
}

func (n *notificationRepository) List(ctx context.Context, eventType string, direction string, limit int, offset int) ([]NotificationRecord, int64, error) {
	base := n.db.WithContext(ctx).Model(&model.Notification{})
	if eventType != "" {
		base = base.Where("notifications.type = ?", eventType)
	}
	if direction != "" {
		base = base.Where("notifications.direction = ?", direction)
	}

	var total int64
	if res := base.Session(&gorm.Session{}).Count(&total); res.Error != nil {
		return nil, 0, fmt.Errorf("NotificationRepository.List count: %w", res.Error)
	}

	var records []NotificationRecord
	res := base.
		Select("notifications.*, monitors.name AS monitor_name").
		Joins("JOIN monitors ON monitors.id = notifications.monitor_id").
		Order("notifications.created_at DESC").
		Limit(limit).Offset(offset).
		Scan(&records)
	if res.Error != nil {
		return nil, 0, fmt.Errorf("NotificationRepository.List: %w", res.Error)
	}
	return records, total, nil
}

// LastOfType returns the creation time of the newest notification of the
// given type for the monitor, or nil when none exists. Used for cooldown.
func (n *notificationRepository) LastOfType(ctx context.Context, monitorID int, eventType string) (*time.Time, error) {
	var notification model.Notification
	res := n.db.WithContext(ctx).
		Where("monitor_id = ? AND type = ?", monitorID, eventType).
		Order("created_at DESC").
		First(&notification)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("NotificationRepository.LastOfType: %w", res.Error)
	}
	t := notification.CreatedAt
	return &t, nil
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}
