package notifier

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sitepulse/sitepulse/internal/events"
	mockrepository "github.com/sitepulse/sitepulse/internal/mocks/repository"
	"github.com/sitepulse/sitepulse/internal/model"
	"github.com/sitepulse/sitepulse/pkg/mail"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func defaultConfig() Config {
	return Config{
		Enabled:            true,
		Events:             []string{model.NotifyOnline, model.NotifyOffline, model.NotifySSLExpiry},
		SendRetries:        1,
		SendInitialBackoff: time.Millisecond,
		SiteName:           "SitePulse",
	}
}

func newDispatcherFixture(t *testing.T, cfg Config) (*Dispatcher, *mockrepository.MockSubscriptionRepository, *mail.MockSender) {
	ctrl := gomock.NewController(t)
	subs := mockrepository.NewMockSubscriptionRepository(ctrl)
	sender := mail.NewMockSender(ctrl)
	bus := events.NewBus(zap.NewNop(), 16)
	t.Cleanup(bus.Close)
	return NewDispatcher(zap.NewNop(), cfg, subs, sender, bus), subs, sender
}

func offlineEvent() events.Event {
	return events.Event{
		ID:          "ev-1",
		MonitorID:   3,
		CheckedAt:   time.Now(),
		Online:      false,
		StatusCode:  503,
		Error:       "status 503 outside expected range [200,299]",
		EventType:   model.EventStatusChange,
		Message:     "api is offline (status 503)",
		MonitorName: "api",
	}
}

func TestDispatcher_SendsToVerifiedSubscribers(t *testing.T) {
	d, subs, sender := newDispatcherFixture(t, defaultConfig())

	subs.EXPECT().ListVerified(gomock.Any(), 3, model.NotifyOffline).
		Return([]model.Subscription{
			{Email: "a@example.com"},
			{Email: "b@example.com"},
		}, nil)
	sender.EXPECT().SendMail([]string{"a@example.com"}, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	sender.EXPECT().SendMail([]string{"b@example.com"}, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	d.Handle(context.Background(), offlineEvent())
}

func TestDispatcher_IgnoresPlainUpdates(t *testing.T) {
	d, _, _ := newDispatcherFixture(t, defaultConfig())

	ev := offlineEvent()
	ev.EventType = ""
	d.Handle(context.Background(), ev)
}

func TestDispatcher_DisabledSendsNothing(t *testing.T) {
	cfg := defaultConfig()
	cfg.Enabled = false
	d, _, _ := newDispatcherFixture(t, cfg)

	d.Handle(context.Background(), offlineEvent())
}

func TestDispatcher_AllowListFiltersEventTypes(t *testing.T) {
	cfg := defaultConfig()
	cfg.Events = []string{model.NotifySSLExpiry}
	d, _, _ := newDispatcherFixture(t, cfg)

	// offline is not in the allow-list, nothing should be looked up or sent
	d.Handle(context.Background(), offlineEvent())
}

func TestDispatcher_DedupesByEventID(t *testing.T) {
	d, subs, sender := newDispatcherFixture(t, defaultConfig())

	subs.EXPECT().ListVerified(gomock.Any(), 3, model.NotifyOffline).
		Return([]model.Subscription{{Email: "a@example.com"}}, nil).Times(1)
	sender.EXPECT().SendMail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

	ev := offlineEvent()
	d.Handle(context.Background(), ev)
	d.Handle(context.Background(), ev)
}

func TestDispatcher_AdminAlwaysIncluded(t *testing.T) {
	cfg := defaultConfig()
	cfg.AdminEmail = "admin@example.com"
	d, subs, sender := newDispatcherFixture(t, cfg)

	subs.EXPECT().ListVerified(gomock.Any(), 3, model.NotifyOffline).
		Return([]model.Subscription{{Email: "admin@example.com"}}, nil)
	// the admin is not mailed twice even when also subscribed
	sender.EXPECT().SendMail([]string{"admin@example.com"}, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

	d.Handle(context.Background(), offlineEvent())
}

func TestDispatcher_RetriesFailedSend(t *testing.T) {
	cfg := defaultConfig()
	cfg.SendRetries = 3
	d, subs, sender := newDispatcherFixture(t, cfg)

	subs.EXPECT().ListVerified(gomock.Any(), 3, model.NotifyOffline).
		Return([]model.Subscription{{Email: "a@example.com"}}, nil)
	gomock.InOrder(
		sender.EXPECT().SendMail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp timeout")),
		sender.EXPECT().SendMail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
	)

	d.Handle(context.Background(), offlineEvent())
}

func TestDispatcher_GivesUpAfterRetriesExhausted(t *testing.T) {
	cfg := defaultConfig()
	cfg.SendRetries = 2
	d, subs, sender := newDispatcherFixture(t, cfg)

	subs.EXPECT().ListVerified(gomock.Any(), 3, model.NotifyOffline).
		Return([]model.Subscription{{Email: "a@example.com"}}, nil)
	sender.EXPECT().SendMail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("smtp down")).Times(2)

	d.Handle(context.Background(), offlineEvent())
}

func TestDispatcher_SSLExpiryUsesSSLTemplate(t *testing.T) {
	d, subs, sender := newDispatcherFixture(t, defaultConfig())

	ev := events.Event{
		ID:          "ev-ssl",
		MonitorID:   3,
		Online:      true,
		EventType:   model.EventSSLExpiry,
		Message:     "TLS certificate for api expires in 5 days (2025-09-04)",
		MonitorName: "api",
	}
	subs.EXPECT().ListVerified(gomock.Any(), 3, model.NotifySSLExpiry).
		Return([]model.Subscription{{Email: "a@example.com"}}, nil)
	sender.EXPECT().SendMail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(to []string, subject, htmlBody, textBody string, _ []mail.Attachment) error {
			assert.Contains(t, subject, "Certificate expiring")
			assert.Contains(t, textBody, "expires in 5 days")
			return nil
		})

	d.Handle(context.Background(), ev)
}

func TestDispatcher_RepositoryErrorStillMailsAdmin(t *testing.T) {
	cfg := defaultConfig()
	cfg.AdminEmail = "admin@example.com"
	d, subs, sender := newDispatcherFixture(t, cfg)

	subs.EXPECT().ListVerified(gomock.Any(), 3, model.NotifyOffline).
		Return(nil, errors.New("database down"))
	sender.EXPECT().SendMail([]string{"admin@example.com"}, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	d.Handle(context.Background(), offlineEvent())
}

func TestStatusChangeEmail_Subjects(t *testing.T) {
	ev := offlineEvent()
	subject, htmlBody, textBody := StatusChangeEmail(ev, "SitePulse")
	assert.Equal(t, "[SitePulse] api is offline", subject)
	assert.Contains(t, htmlBody, "api is offline")
	assert.Equal(t, ev.Message, textBody)

	ev.Online = true
	subject, _, _ = StatusChangeEmail(ev, "SitePulse")
	assert.Equal(t, "[SitePulse] api is back online", subject)
}

func TestVerificationEmail_ContainsLink(t *testing.T) {
	subject, htmlBody, textBody := VerificationEmail("api", "https://status.example.com/api/subscriptions/verify?token=abc", "SitePulse", 24)
	assert.Contains(t, subject, "Confirm your subscription")
	assert.Contains(t, htmlBody, "verify?token=abc")
	assert.Contains(t, textBody, "verify?token=abc")
}
