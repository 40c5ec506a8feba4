package scheduler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sitepulse/sitepulse/internal/apperrors"
	"github.com/sitepulse/sitepulse/internal/events"
	"github.com/sitepulse/sitepulse/internal/model"
	"github.com/sitepulse/sitepulse/internal/probe"
	"github.com/sitepulse/sitepulse/internal/repository"
	"github.com/sitepulse/sitepulse/internal/tracker"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Config struct {
	DefaultIntervalSeconds int
	MinIntervalSeconds     int
	MaxProbeTimeout        time.Duration
	CooldownMinutes        int
	SSLAlertBeforeDays     int
}

// Scheduler owns one goroutine per monitor. Each loop ticks on the monitor's
// own interval, aligned to the interval grid so two monitors with the same
// interval fire together, and skips a tick while the previous check for that
// monitor is still running. Monitors never share a timer; a slow target only
// delays itself.
type Scheduler struct {
	logger        *zap.Logger
	cfg           Config
	monitors      repository.MonitorRepository
	ssl           repository.SSLRepository
	notifications repository.NotificationRepository
	writer        *HistoryWriter
	tracker       *tracker.Tracker
	bus           *events.Bus
	prober        probe.Executor
	certs         probe.Inspector

	mu       sync.Mutex
	loops    map[int]*loop
	running  map[int]bool
	certSeen map[int]bool
	stopped  bool
	wg       sync.WaitGroup
}

type loop struct {
	interval time.Duration
	stop     chan struct{}
}

func NewScheduler(
	logger *zap.Logger,
	cfg Config,
	monitors repository.MonitorRepository,
	ssl repository.SSLRepository,
	notifications repository.NotificationRepository,
	writer *HistoryWriter,
	stateTracker *tracker.Tracker,
	bus *events.Bus,
	prober probe.Executor,
	certs probe.Inspector,
) *Scheduler {
	return &Scheduler{
		logger:        logger,
		cfg:           cfg,
		monitors:      monitors,
		ssl:           ssl,
		notifications: notifications,
		writer:        writer,
		tracker:       stateTracker,
		bus:           bus,
		prober:        prober,
		certs:         certs,
		loops:         make(map[int]*loop),
		running:       make(map[int]bool),
		certSeen:      make(map[int]bool),
	}
}

// Start loads all monitors, seeds the state tracker from their persisted
// last state and spins up one loop per monitor.
func (s *Scheduler) Start(ctx context.Context) error {
	monitors, err := s.monitors.ListMonitors(ctx)
	if err != nil {
		return fmt.Errorf("Scheduler.Start: %w", err)
	}
	for _, m := range monitors {
		if m.LastOnline != nil {
			s.tracker.Seed(m.ID, *m.LastOnline)
		}
		s.Apply(m)
	}
	s.logger.Info("scheduler started", zap.Int("monitors", len(monitors)))
	return nil
}

func (s *Scheduler) interval(m model.Monitor) time.Duration {
	secs := m.IntervalSeconds
	if secs <= 0 {
		secs = s.cfg.DefaultIntervalSeconds
	}
	if secs < s.cfg.MinIntervalSeconds {
		secs = s.cfg.MinIntervalSeconds
	}
	return time.Duration(secs) * time.Second
}

// Apply starts the loop for a new monitor or restarts it when the interval
// changed. Calling it with an unchanged interval is a no-op.
func (s *Scheduler) Apply(m model.Monitor) {
	interval := s.interval(m)

	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	if l, ok := s.loops[m.ID]; ok {
		if l.interval == interval {
			s.mu.Unlock()
			return
		}
		close(l.stop)
	}
	l := &loop{interval: interval, stop: make(chan struct{})}
	s.loops[m.ID] = l
	delete(s.certSeen, m.ID)
	s.wg.Add(1)
	s.mu.Unlock()

	go s.runLoop(m.ID, l)
}

// Remove stops the loop and drops tracker state. In-flight work for the
// monitor finishes but its result is discarded.
func (s *Scheduler) Remove(monitorID int) {
	s.mu.Lock()
	if l, ok := s.loops[monitorID]; ok {
		close(l.stop)
		delete(s.loops, monitorID)
	}
	delete(s.certSeen, monitorID)
	s.mu.Unlock()
	s.tracker.Forget(monitorID)
}

// Stop halts all loops and waits for in-flight checks to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	s.stopped = true
	for id, l := range s.loops {
		close(l.stop)
		delete(s.loops, id)
	}
	s.mu.Unlock()
	s.wg.Wait()
}

func (s *Scheduler) runLoop(monitorID int, l *loop) {
	defer s.wg.Done()

	// align the first tick to the interval grid so monitors sharing an
	// interval fire at the same instant
	delay := l.interval - time.Duration(time.Now().UnixNano())%l.interval
	timer := time.NewTimer(delay)
	select {
	case <-l.stop:
		timer.Stop()
		return
	case <-timer.C:
	}
	s.checkOnce(monitorID, l)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()
	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			s.checkOnce(monitorID, l)
		}
	}
}

// checkOnce runs a single probe cycle for the monitor. At most one cycle per
// monitor is ever in flight; a tick that lands while the previous cycle is
// still running is skipped.
func (s *Scheduler) checkOnce(monitorID int, l *loop) {
	s.mu.Lock()
	if s.running[monitorID] {
		s.mu.Unlock()
		s.logger.Warn("previous check still running, skipping tick", zap.Int("monitor_id", monitorID))
		return
	}
	s.running[monitorID] = true
	needCert := !s.certSeen[monitorID]
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.running, monitorID)
		s.mu.Unlock()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), l.interval+5*time.Second)
	defer cancel()

	m, err := s.monitors.GetMonitorByID(ctx, monitorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrMonitorNotFound) {
			s.Remove(monitorID)
			return
		}
		s.logger.Error("failed to load monitor", zap.Error(err), zap.Int("monitor_id", monitorID))
		return
	}

	timeout := l.interval
	if timeout > s.cfg.MaxProbeTimeout {
		timeout = s.cfg.MaxProbeTimeout
	}
	outcome := s.prober.Probe(ctx, probe.Request{
		URL:               m.URL,
		Method:            m.Method,
		HeadersJSON:       m.HeadersJSON,
		Body:              m.Body,
		ExpectedStatusMin: m.ExpectedStatusMin,
		ExpectedStatusMax: m.ExpectedStatusMax,
		Keyword:           m.Keyword,
		Timeout:           timeout,
	})
	checkedAt := time.Now().UTC()

	// the monitor may have been deleted while the probe was running
	if !s.isScheduled(monitorID) {
		return
	}

	s.writer.Enqueue(model.CheckResult{
		MonitorID:  monitorID,
		CheckedAt:  checkedAt,
		Online:     outcome.Online,
		StatusCode: outcome.StatusCode,
		ResponseMs: outcome.ResponseMs,
		Error:      outcome.Err,
	})
	if err := s.monitors.UpdateLastState(ctx, monitorID, outcome.Online, checkedAt); err != nil {
		s.logger.Error("failed to update last state", zap.Error(err), zap.Int("monitor_id", monitorID))
	}

	ev := events.Event{
		ID:         uuid.NewString(),
		MonitorID:  monitorID,
		CheckedAt:  checkedAt,
		Online:     outcome.Online,
		StatusCode: outcome.StatusCode,
		ResponseMs: outcome.ResponseMs,
		Error:      outcome.Err,
	}
	if tr := s.tracker.Observe(monitorID, outcome.Online); tr != nil && tr.Notify {
		direction := model.NotifyOffline
		if tr.Online {
			direction = model.NotifyOnline
		}
		if s.cooldownPassed(ctx, monitorID, model.EventStatusChange) {
			ev.EventType = model.EventStatusChange
			ev.MonitorName = m.Name
			ev.Message = statusChangeMessage(m.Name, outcome)
			s.recordNotification(ctx, monitorID, model.EventStatusChange, direction, ev.Message)
		}
	}
	s.bus.Publish(ev)

	if needCert {
		s.inspectCert(ctx, m)
		s.mu.Lock()
		s.certSeen[monitorID] = true
		s.mu.Unlock()
	}
}

func (s *Scheduler) isScheduled(monitorID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.loops[monitorID]
	return ok
}

// RunSSLSweep refreshes certificate info for every https monitor. Wired to
// the daily cron job.
func (s *Scheduler) RunSSLSweep(ctx context.Context) {
	monitors, err := s.monitors.ListMonitors(ctx)
	if err != nil {
		s.logger.Error("ssl sweep: failed to list monitors", zap.Error(err))
		return
	}
	for _, m := range monitors {
		if !strings.HasPrefix(strings.ToLower(m.URL), "https://") {
			continue
		}
		s.inspectCert(ctx, m)
	}
}

func (s *Scheduler) inspectCert(ctx context.Context, m model.Monitor) {
	info, err := s.certs.Inspect(ctx, m.URL)
	if err != nil {
		s.logger.Warn("cert inspection failed", zap.Error(err), zap.Int("monitor_id", m.ID), zap.String("url", m.URL))
		return
	}
	if info == nil {
		return
	}
	expiresAt := info.ExpiresAt
	daysLeft := info.DaysLeft
	if err := s.ssl.Upsert(ctx, model.SSLInfo{
		MonitorID: m.ID,
		ExpiresAt: &expiresAt,
		Issuer:    info.Issuer,
		DaysLeft:  &daysLeft,
	}); err != nil {
		s.logger.Error("failed to store ssl info", zap.Error(err), zap.Int("monitor_id", m.ID))
	}

	if !s.tracker.ObserveCert(m.ID, daysLeft, s.cfg.SSLAlertBeforeDays) {
		return
	}
	if !s.cooldownPassed(ctx, m.ID, model.EventSSLExpiry) {
		return
	}
	msg := sslExpiryMessage(m.Name, daysLeft, expiresAt)
	s.recordNotification(ctx, m.ID, model.EventSSLExpiry, "", msg)
	s.bus.Publish(events.Event{
		ID:          uuid.NewString(),
		MonitorID:   m.ID,
		CheckedAt:   time.Now().UTC(),
		Online:      true,
		EventType:   model.EventSSLExpiry,
		Message:     msg,
		MonitorName: m.Name,
	})
}

// cooldownPassed reports whether enough time passed since the last recorded
// notification of the same type for the monitor. A repository error fails
// open: better a duplicate notice than a silent outage.
func (s *Scheduler) cooldownPassed(ctx context.Context, monitorID int, notifyType string) bool {
	if s.cfg.CooldownMinutes <= 0 {
		return true
	}
	last, err := s.notifications.LastOfType(ctx, monitorID, notifyType)
	if err != nil {
		s.logger.Error("cooldown lookup failed", zap.Error(err), zap.Int("monitor_id", monitorID))
		return true
	}
	if last == nil {
		return true
	}
	return time.Since(*last) >= time.Duration(s.cfg.CooldownMinutes)*time.Minute
}

func (s *Scheduler) recordNotification(ctx context.Context, monitorID int, notifyType string, direction string, message string) {
	if _, err := s.notifications.Create(ctx, model.Notification{
		MonitorID: monitorID,
		Type:      notifyType,
		Direction: direction,
		Message:   message,
	}); err != nil {
		s.logger.Error("failed to record notification", zap.Error(err), zap.Int("monitor_id", monitorID))
	}
}

func statusChangeMessage(name string, outcome probe.Outcome) string {
	if outcome.Online {
		return fmt.Sprintf("%s is back online (status %d, %dms)", name, outcome.StatusCode, outcome.ResponseMs)
	}
	if outcome.StatusCode == 0 {
		return fmt.Sprintf("%s is offline: %s", name, outcome.Err)
	}
	return fmt.Sprintf("%s is offline (status %d): %s", name, outcome.StatusCode, outcome.Err)
}

func sslExpiryMessage(name string, daysLeft int, expiresAt time.Time) string {
	return fmt.Sprintf("TLS certificate for %s expires in %d days (%s)", name, daysLeft, expiresAt.Format("2006-01-02"))
}
