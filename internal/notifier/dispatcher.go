package notifier

import (
	"context"
	"time"

	"github.com/sitepulse/sitepulse/internal/events"
	"github.com/sitepulse/sitepulse/internal/model"
	"github.com/sitepulse/sitepulse/internal/repository"
	"github.com/sitepulse/sitepulse/pkg/mail"

	"go.uber.org/zap"
)

type Config struct {
	// Enabled is the global kill switch; when false no mail leaves the
	// process regardless of subscriptions.
	Enabled bool
	// Events is the global allow-list of notify event names.
	Events             []string
	SendRetries        int
	SendInitialBackoff time.Duration
	AdminEmail         string
	SiteName           string
}

// Dispatcher consumes events from the bus and fans notifiable ones out over
// email. It runs as a single goroutine; per-recipient retries happen inline
// because mail volume is tiny compared to check volume.
type Dispatcher struct {
	logger *zap.Logger
	cfg    Config
	subs   repository.SubscriptionRepository
	sender mail.Sender
	bus    *events.Bus

	allowed map[string]bool

	// dedupe by event ID, bounded FIFO
	seen      map[string]struct{}
	seenOrder []string
}

const seenLimit = 1024

func NewDispatcher(logger *zap.Logger, cfg Config, subs repository.SubscriptionRepository, sender mail.Sender, bus *events.Bus) *Dispatcher {
	if cfg.SendRetries < 1 {
		cfg.SendRetries = 1
	}
	if cfg.SendInitialBackoff <= 0 {
		cfg.SendInitialBackoff = 500 * time.Millisecond
	}
	allowed := make(map[string]bool, len(cfg.Events))
	for _, e := range cfg.Events {
		allowed[e] = true
	}
	return &Dispatcher{
		logger:  logger,
		cfg:     cfg,
		subs:    subs,
		sender:  sender,
		bus:     bus,
		allowed: allowed,
		seen:    make(map[string]struct{}),
	}
}

// Run subscribes to the bus and blocks until ctx is cancelled or the bus
// closes. Call it in its own goroutine.
func (d *Dispatcher) Run(ctx context.Context) {
	ch, cancel := d.bus.Subscribe()
	defer cancel()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-ch:
			if !ok {
				return
			}
			d.Handle(ctx, ev)
		}
	}
}

// Handle processes one event. Exported for tests and for the synthetic test
// notification endpoint.
func (d *Dispatcher) Handle(ctx context.Context, ev events.Event) {
	if !ev.Notifiable() || !d.cfg.Enabled {
		return
	}
	if ev.ID != "" && d.alreadySeen(ev.ID) {
		return
	}

	notifyEvent := notifyEventName(ev)
	if !d.allowed[notifyEvent] {
		d.logger.Debug("event type not in allow-list, skipping",
			zap.String("event", notifyEvent), zap.Int("monitor_id", ev.MonitorID))
		return
	}

	recipients := d.recipients(ctx, ev.MonitorID, notifyEvent)
	if len(recipients) == 0 {
		return
	}

	var subject, htmlBody, textBody string
	if ev.EventType == model.EventSSLExpiry {
		subject, htmlBody, textBody = SSLExpiryEmail(ev, d.cfg.SiteName)
	} else {
		subject, htmlBody, textBody = StatusChangeEmail(ev, d.cfg.SiteName)
	}

	for _, to := range recipients {
		d.sendWithRetry(to, subject, htmlBody, textBody)
	}
}

func (d *Dispatcher) alreadySeen(id string) bool {
	if _, ok := d.seen[id]; ok {
		return true
	}
	d.seen[id] = struct{}{}
	d.seenOrder = append(d.seenOrder, id)
	if len(d.seenOrder) > seenLimit {
		delete(d.seen, d.seenOrder[0])
		d.seenOrder = d.seenOrder[1:]
	}
	return false
}

func (d *Dispatcher) recipients(ctx context.Context, monitorID int, notifyEvent string) []string {
	var out []string
	if d.cfg.AdminEmail != "" {
		out = append(out, d.cfg.AdminEmail)
	}
	subs, err := d.subs.ListVerified(ctx, monitorID, notifyEvent)
	if err != nil {
		d.logger.Error("failed to load subscriptions", zap.Error(err), zap.Int("monitor_id", monitorID))
		return out
	}
	for _, sub := range subs {
		if sub.Email != d.cfg.AdminEmail {
			out = append(out, sub.Email)
		}
	}
	return out
}

func (d *Dispatcher) sendWithRetry(to, subject, htmlBody, textBody string) {
	backoff := d.cfg.SendInitialBackoff
	var err error
	for attempt := 1; attempt <= d.cfg.SendRetries; attempt++ {
		err = d.sender.SendMail([]string{to}, subject, htmlBody, textBody, nil)
		if err == nil {
			return
		}
		if attempt < d.cfg.SendRetries {
			time.Sleep(backoff)
			backoff *= 2
		}
	}
	d.logger.Error("failed to send notification mail, giving up",
		zap.Error(err),
		zap.String("to", to),
		zap.String("subject", subject),
		zap.Int("attempts", d.cfg.SendRetries))
}

func notifyEventName(ev events.Event) string {
	if ev.EventType == model.EventSSLExpiry {
		return model.NotifySSLExpiry
	}
	if ev.Online {
		return model.NotifyOnline
	}
	return model.NotifyOffline
}
