package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sitepulse/sitepulse/internal/apperrors"
	"github.com/sitepulse/sitepulse/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type SubscriptionRepository interface {
	// Replace removes any unverified subscription for the same
	// monitor/email pair and inserts the new one.
	Replace(ctx context.Context, sub model.Subscription) (model.Subscription, error)
	VerifyByToken(ctx context.Context, token string, now time.Time) (model.Subscription, error)
	List(ctx context.Context) ([]SubscriptionRecord, error)
	ListVerified(ctx context.Context, monitorID int, event string) ([]model.Subscription, error)
	DeleteByID(ctx context.Context, id int64) error
}

// SubscriptionRecord carries the monitor name for the management listing.
type SubscriptionRecord struct {
	model.Subscription
	MonitorName string
}

type subscriptionRepository struct {
	db *gorm.DB
}

func (s *subscriptionRepository) Replace(ctx context.Context, sub model.Subscription) (model.Subscription, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Subscription
		res := tx.Where("monitor_id = ? AND email = ?", sub.MonitorID, sub.Email).First(&existing)
		if res.Error == nil {
			if existing.Verified {
				return apperrors.ErrDuplicateSubscriber
			}
			if r := tx.Delete(&existing); r.Error != nil {
				return r.Error
			}
		} else if !errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return res.Error
		}
		if err := tx.Create(&sub).Error; err != nil {
			// Concurrent subscribe can slip past the lookup above.
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return apperrors.ErrDuplicateSubscriber
			}
			return err
		}
		return nil
	})
	if err != nil {
		return sub, fmt.Errorf("SubscriptionRepository.Replace: %w", err)
	}
	return sub, nil
}

func (s *subscriptionRepository) VerifyByToken(ctx context.Context, token string, now time.Time) (model.Subscription, error) {
	var sub model.Subscription
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("verify_token = ?", token).First(&sub)
		if res.Error != nil {
			if errors.Is(res.Error, gorm.ErrRecordNotFound) {
				return apperrors.ErrSubscriptionNotFound
			}
			return res.Error
		}
		if sub.VerifyExpires != nil && sub.VerifyExpires.Before(now) {
			return apperrors.ErrTokenExpired
		}
		return tx.Model(&sub).Updates(map[string]interface{}{
			"verified":     true,
			"verify_token": "",
		}).Error
	})
	if err != nil {
		return sub, fmt.Errorf("SubscriptionRepository.VerifyByToken: %w", err)
	}
	sub.Verified = true
	return sub, nil
}

func (s *subscriptionRepository) List(ctx context.Context) ([]SubscriptionRecord, error) {
	var records []SubscriptionRecord
	res := s.db.WithContext(ctx).
		Model(&model.Subscription{}).
		Select("monitor_subscriptions.*, monitors.name AS monitor_name").
		Joins("JOIN monitors ON monitors.id = monitor_subscriptions.monitor_id").
		Order("monitor_subscriptions.created_at DESC").
		Scan(&records)
	if res.Error != nil {
		return nil, fmt.Errorf("SubscriptionRepository.List: %w", res.Error)
	}
	return records, nil
}

// ListVerified returns verified subscriptions for the monitor whose
// notify_events set contains the given event.
func (s *subscriptionRepository) ListVerified(ctx context.Context, monitorID int, event string) ([]model.Subscription, error) {
	var subs []model.Subscription
	res := s.db.WithContext(ctx).
		Where("monitor_id = ? AND verified = ?", monitorID, true).
		Find(&subs)
	if res.Error != nil {
		return nil, fmt.Errorf("SubscriptionRepository.ListVerified: %w", res.Error)
	}
	out := subs[:0]
	for _, sub := range subs {
		if subscribedTo(sub.NotifyEvents, event) {
			out = append(out, sub)
		}
	}
	return out, nil
}

func (s *subscriptionRepository) DeleteByID(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Subscription{})
	if res.Error != nil {
		return fmt.Errorf("SubscriptionRepository.DeleteByID: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("SubscriptionRepository.DeleteByID: %w", apperrors.ErrSubscriptionNotFound)
	}
	return nil
}

func subscribedTo(notifyEvents string, event string) bool {
	for _, e := range strings.Split(notifyEvents, ",") {
		if strings.EqualFold(strings.TrimSpace(e), event) {
			return true
		}
	}
	return false
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}
