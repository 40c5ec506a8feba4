package service

import (
	"context"
	"fmt"

	"github.com/sitepulse/sitepulse/internal/model"
	"github.com/sitepulse/sitepulse/internal/notifier"
	"github.com/sitepulse/sitepulse/internal/repository"
	"github.com/sitepulse/sitepulse/pkg/mail"
)

type NotificationService interface {
	// ListNotifications accepts the stored types plus the direction aliases
	// "offline", "online" and "recovery", which select one side of the
	// status changes.
	ListNotifications(ctx context.Context, filterType string, limit int, offset int) ([]repository.NotificationRecord, int64, error)
	// SendTestNotification mails the admin address to verify SMTP
	// credentials without waiting for an outage.
	SendTestNotification(ctx context.Context) error
}

type notificationService struct {
	notificationRepository repository.NotificationRepository
	mailSender             mail.Sender
	adminEmail             string
	siteName               string
}

func (n *notificationService) ListNotifications(ctx context.Context, filterType string, limit int, offset int) ([]repository.NotificationRecord, int64, error) {
	eventType, direction := filterType, ""
	switch filterType {
	case model.NotifyOffline:
		eventType, direction = model.EventStatusChange, model.NotifyOffline
	case model.NotifyOnline, "recovery":
		eventType, direction = model.EventStatusChange, model.NotifyOnline
	}
	records, total, err := n.notificationRepository.List(ctx, eventType, direction, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("NotificationService.ListNotifications: %w", err)
	}
	return records, total, nil
}

func (n *notificationService) SendTestNotification(ctx context.Context) error {
	if n.adminEmail == "" {
		return fmt.Errorf("NotificationService.SendTestNotification: no admin mail address configured")
	}
	subject, htmlBody, textBody := notifier.TestEmail(n.siteName)
	if err := n.mailSender.SendMail([]string{n.adminEmail}, subject, htmlBody, textBody, nil); err != nil {
		return fmt.Errorf("NotificationService.SendTestNotification: %w", err)
	}
	return nil
}

func NewNotificationService(
	notificationRepository repository.NotificationRepository,
	mailSender mail.Sender,
	adminEmail string,
	siteName string,
) NotificationService {
	return &notificationService{
		notificationRepository: notificationRepository,
		mailSender:             mailSender,
		adminEmail:             adminEmail,
		siteName:               siteName,
	}
}
