package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/sitepulse/sitepulse/internal/apperrors"
	"github.com/sitepulse/sitepulse/internal/model"
	"github.com/sitepulse/sitepulse/internal/notifier"
	"github.com/sitepulse/sitepulse/internal/repository"
	"github.com/sitepulse/sitepulse/pkg/mail"

	"github.com/google/uuid"
)

type SubscriptionService interface {
	// Subscribe stores an unverified subscription and emails a
	// confirmation link. It is the only write reachable without the admin
	// token.
	Subscribe(ctx context.Context, monitorID int, email string, events []string) error
	Verify(ctx context.Context, token string) (model.Subscription, error)
	ListSubscriptions(ctx context.Context) ([]repository.SubscriptionRecord, error)
	DeleteSubscription(ctx context.Context, id int64) error
}

type subscriptionService struct {
	subscriptionRepository repository.SubscriptionRepository
	monitorRepository      repository.MonitorRepository
	mailSender             mail.Sender
	publicURL              string
	siteName               string
	tokenTTL               time.Duration
	now                    func() time.Time
}

var validNotifyEvents = map[string]bool{
	model.NotifyOnline:    true,
	model.NotifyOffline:   true,
	model.NotifySSLExpiry: true,
}

func (s *subscriptionService) Subscribe(ctx context.Context, monitorID int, email string, events []string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("SubscriptionService.Subscribe: %w: invalid email", apperrors.ErrInvalidMonitorConfig)
	}
	if len(events) == 0 {
		events = []string{model.NotifyOnline, model.NotifyOffline, model.NotifySSLExpiry}
	}
	for _, e := range events {
		if !validNotifyEvents[e] {
			return fmt.Errorf("SubscriptionService.Subscribe: %w: unknown event %q", apperrors.ErrInvalidMonitorConfig, e)
		}
	}

	monitor, err := s.monitorRepository.GetMonitorByID(ctx, monitorID)
	if err != nil {
		return fmt.Errorf("SubscriptionService.Subscribe: %w", err)
	}

	expires := s.now().Add(s.tokenTTL)
	sub := model.Subscription{
		MonitorID:     monitorID,
		Email:         email,
		NotifyEvents:  strings.Join(events, ","),
		Verified:      false,
		VerifyToken:   uuid.NewString(),
		VerifyExpires: &expires,
	}
	if _, err := s.subscriptionRepository.Replace(ctx, sub); err != nil {
		return fmt.Errorf("SubscriptionService.Subscribe: %w", err)
	}

	verifyURL := fmt.Sprintf("%s/api/subscriptions/verify?token=%s",
		strings.TrimRight(s.publicURL, "/"), url.QueryEscape(sub.VerifyToken))
	subject, htmlBody, textBody := notifier.VerificationEmail(monitor.Name, verifyURL, s.siteName, int(s.tokenTTL.Hours()))
	if err := s.mailSender.SendMail([]string{email}, subject, htmlBody, textBody, nil); err != nil {
		return fmt.Errorf("SubscriptionService.Subscribe: %w", err)
	}
	return nil
}

func (s *subscriptionService) Verify(ctx context.Context, token string) (model.Subscription, error) {
	sub, err := s.subscriptionRepository.VerifyByToken(ctx, token, s.now())
	if err != nil {
		return sub, fmt.Errorf("SubscriptionService.Verify: %w", err)
	}
	return sub, nil
}

func (s *subscriptionService) ListSubscriptions(ctx context.Context) ([]repository.SubscriptionRecord, error) {
	subs, err := s.subscriptionRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("SubscriptionService.ListSubscriptions: %w", err)
	}
	return subs, nil
}

func (s *subscriptionService) DeleteSubscription(ctx context.Context, id int64) error {
	if err := s.subscriptionRepository.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("SubscriptionService.DeleteSubscription: %w", err)
	}
	return nil
}

func NewSubscriptionService(
	subscriptionRepository repository.SubscriptionRepository,
	monitorRepository repository.MonitorRepository,
	mailSender mail.Sender,
	publicURL string,
	siteName string,
	tokenTTL time.Duration,
) SubscriptionService {
	return &subscriptionService{
		subscriptionRepository: subscriptionRepository,
		monitorRepository:      monitorRepository,
		mailSender:             mailSender,
		publicURL:              publicURL,
		siteName:               siteName,
		tokenTTL:               tokenTTL,
		now:                    time.Now,
	}
}
