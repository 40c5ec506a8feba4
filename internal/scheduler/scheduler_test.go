package scheduler

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/sitepulse/sitepulse/internal/apperrors"
	"github.com/sitepulse/sitepulse/internal/events"
	mockrepository "github.com/sitepulse/sitepulse/internal/mocks/repository"
	"github.com/sitepulse/sitepulse/internal/model"
	"github.com/sitepulse/sitepulse/internal/probe"
	"github.com/sitepulse/sitepulse/internal/tracker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type stubProber struct {
	fn func(ctx context.Context, req probe.Request) probe.Outcome
}

func (s stubProber) Probe(ctx context.Context, req probe.Request) probe.Outcome {
	return s.fn(ctx, req)
}

type stubInspector struct {
	fn func(ctx context.Context, rawURL string) (*probe.CertInfo, error)
}

func (s stubInspector) Inspect(ctx context.Context, rawURL string) (*probe.CertInfo, error) {
	if s.fn == nil {
		return nil, nil
	}
	return s.fn(ctx, rawURL)
}

type schedulerFixture struct {
	scheduler     *Scheduler
	monitors      *mockrepository.MockMonitorRepository
	ssl           *mockrepository.MockSSLRepository
	notifications *mockrepository.MockNotificationRepository
	history       *mockrepository.MockHistoryRepository
	tracker       *tracker.Tracker
	bus           *events.Bus
}

func newFixture(t *testing.T, cfg Config, prober probe.Executor, certs probe.Inspector) *schedulerFixture {
	ctrl := gomock.NewController(t)
	monitors := mockrepository.NewMockMonitorRepository(ctrl)
	ssl := mockrepository.NewMockSSLRepository(ctrl)
	notifications := mockrepository.NewMockNotificationRepository(ctrl)
	history := mockrepository.NewMockHistoryRepository(ctrl)
	history.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	stateTracker := tracker.NewTracker(tracker.Config{}, zap.NewNop())
	bus := events.NewBus(zap.NewNop(), 16)
	writer := NewHistoryWriter(zap.NewNop(), history, 16, 1, time.Millisecond)
	writer.Start()
	t.Cleanup(writer.Stop)
	t.Cleanup(bus.Close)

	s := NewScheduler(zap.NewNop(), cfg, monitors, ssl, notifications, writer, stateTracker, bus, prober, certs)
	return &schedulerFixture{
		scheduler:     s,
		monitors:      monitors,
		ssl:           ssl,
		notifications: notifications,
		history:       history,
		tracker:       stateTracker,
		bus:           bus,
	}
}

func registerLoop(s *Scheduler, monitorID int) *loop {
	l := &loop{interval: time.Minute, stop: make(chan struct{})}
	s.mu.Lock()
	s.loops[monitorID] = l
	s.certSeen[monitorID] = true
	s.mu.Unlock()
	return l
}

func testMonitor() model.Monitor {
	return model.Monitor{
		ID:                1,
		Name:              "api",
		URL:               "http://example.com/health",
		Method:            "GET",
		ExpectedStatusMin: 200,
		ExpectedStatusMax: 299,
		IntervalSeconds:   60,
	}
}

func TestScheduler_CheckOncePublishesPlainUpdate(t *testing.T) {
	prober := stubProber{fn: func(ctx context.Context, req probe.Request) probe.Outcome {
		return probe.Outcome{Online: true, StatusCode: 200, ResponseMs: 12}
	}}
	f := newFixture(t, Config{MaxProbeTimeout: 5 * time.Second}, prober, stubInspector{})

	f.monitors.EXPECT().GetMonitorByID(gomock.Any(), 1).Return(testMonitor(), nil)
	f.monitors.EXPECT().UpdateLastState(gomock.Any(), 1, true, gomock.Any()).Return(nil)

	ch, cancel := f.bus.Subscribe()
	defer cancel()

	f.tracker.Seed(1, true)
	l := registerLoop(f.scheduler, 1)
	f.scheduler.checkOnce(1, l)

	ev := <-ch
	assert.Equal(t, 1, ev.MonitorID)
	assert.True(t, ev.Online)
	assert.Equal(t, 200, ev.StatusCode)
	assert.Empty(t, ev.EventType)
	assert.NotEmpty(t, ev.ID)
}

func TestScheduler_ConfirmedTransitionPublishesStatusChange(t *testing.T) {
	prober := stubProber{fn: func(ctx context.Context, req probe.Request) probe.Outcome {
		return probe.Outcome{Online: false, StatusCode: 503, ResponseMs: 40, Err: "status 503 outside expected range [200,299]"}
	}}
	f := newFixture(t, Config{MaxProbeTimeout: 5 * time.Second}, prober, stubInspector{})

	f.monitors.EXPECT().GetMonitorByID(gomock.Any(), 1).Return(testMonitor(), nil)
	f.monitors.EXPECT().UpdateLastState(gomock.Any(), 1, false, gomock.Any()).Return(nil)
	f.notifications.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, n model.Notification) (model.Notification, error) {
			assert.Equal(t, model.EventStatusChange, n.Type)
			assert.Equal(t, model.NotifyOffline, n.Direction)
			assert.Equal(t, 1, n.MonitorID)
			return n, nil
		})

	ch, cancel := f.bus.Subscribe()
	defer cancel()

	f.tracker.Seed(1, true)
	l := registerLoop(f.scheduler, 1)
	f.scheduler.checkOnce(1, l)

	ev := <-ch
	assert.Equal(t, model.EventStatusChange, ev.EventType)
	assert.Equal(t, "api", ev.MonitorName)
	assert.Contains(t, ev.Message, "offline")
	assert.Equal(t, 503, ev.StatusCode)
}

func TestScheduler_CooldownSuppressesRepeatNotification(t *testing.T) {
	prober := stubProber{fn: func(ctx context.Context, req probe.Request) probe.Outcome {
		return probe.Outcome{Online: false, StatusCode: 0, Err: "dial tcp: timeout"}
	}}
	f := newFixture(t, Config{MaxProbeTimeout: 5 * time.Second, CooldownMinutes: 60}, prober, stubInspector{})

	recent := time.Now().Add(-time.Minute)
	f.monitors.EXPECT().GetMonitorByID(gomock.Any(), 1).Return(testMonitor(), nil)
	f.monitors.EXPECT().UpdateLastState(gomock.Any(), 1, false, gomock.Any()).Return(nil)
	f.notifications.EXPECT().LastOfType(gomock.Any(), 1, model.EventStatusChange).Return(&recent, nil)

	ch, cancel := f.bus.Subscribe()
	defer cancel()

	f.tracker.Seed(1, true)
	l := registerLoop(f.scheduler, 1)
	f.scheduler.checkOnce(1, l)

	// the update still streams, but without the notifiable marker
	ev := <-ch
	assert.Empty(t, ev.EventType)
	assert.False(t, ev.Online)
}

func TestScheduler_AtMostOneCheckInFlight(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	probeCount := 0
	prober := stubProber{fn: func(ctx context.Context, req probe.Request) probe.Outcome {
		probeCount++
		close(started)
		<-release
		return probe.Outcome{Online: true, StatusCode: 200}
	}}
	f := newFixture(t, Config{MaxProbeTimeout: 5 * time.Second}, prober, stubInspector{})

	f.monitors.EXPECT().GetMonitorByID(gomock.Any(), 1).Return(testMonitor(), nil)
	f.monitors.EXPECT().UpdateLastState(gomock.Any(), 1, true, gomock.Any()).Return(nil)

	f.tracker.Seed(1, true)
	l := registerLoop(f.scheduler, 1)

	done := make(chan struct{})
	go func() {
		f.scheduler.checkOnce(1, l)
		close(done)
	}()
	<-started

	// a tick landing while the first check runs is skipped entirely
	f.scheduler.checkOnce(1, l)
	assert.Equal(t, 1, probeCount)

	close(release)
	<-done
}

func TestScheduler_DeletedMonitorStopsLoop(t *testing.T) {
	prober := stubProber{fn: func(ctx context.Context, req probe.Request) probe.Outcome {
		t.Fatal("probe must not run for a deleted monitor")
		return probe.Outcome{}
	}}
	f := newFixture(t, Config{MaxProbeTimeout: 5 * time.Second}, prober, stubInspector{})

	f.monitors.EXPECT().GetMonitorByID(gomock.Any(), 1).
		Return(model.Monitor{}, fmt.Errorf("MonitorRepository.GetMonitorByID: %w", apperrors.ErrMonitorNotFound))

	l := registerLoop(f.scheduler, 1)
	f.scheduler.checkOnce(1, l)

	assert.False(t, f.scheduler.isScheduled(1))
}

func TestScheduler_SSLSweepAlertsOnThresholdCrossing(t *testing.T) {
	expires := time.Now().Add(5 * 24 * time.Hour)
	certs := stubInspector{fn: func(ctx context.Context, rawURL string) (*probe.CertInfo, error) {
		return &probe.CertInfo{ExpiresAt: expires, Issuer: "R11", DaysLeft: 5}, nil
	}}
	f := newFixture(t, Config{SSLAlertBeforeDays: 14}, stubProber{}, certs)

	m := testMonitor()
	m.URL = "https://example.com"
	f.monitors.EXPECT().ListMonitors(gomock.Any()).Return([]model.Monitor{m}, nil)
	f.ssl.EXPECT().Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, info model.SSLInfo) error {
			require.NotNil(t, info.DaysLeft)
			assert.Equal(t, 5, *info.DaysLeft)
			assert.Equal(t, "R11", info.Issuer)
			return nil
		})
	f.notifications.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, n model.Notification) (model.Notification, error) {
			assert.Equal(t, model.EventSSLExpiry, n.Type)
			assert.Empty(t, n.Direction)
			return n, nil
		})

	ch, cancel := f.bus.Subscribe()
	defer cancel()

	f.scheduler.RunSSLSweep(context.Background())

	ev := <-ch
	assert.Equal(t, model.EventSSLExpiry, ev.EventType)
	assert.Contains(t, ev.Message, "expires in 5 days")
}

func TestScheduler_SSLSweepSkipsHTTPMonitors(t *testing.T) {
	certs := stubInspector{fn: func(ctx context.Context, rawURL string) (*probe.CertInfo, error) {
		t.Fatal("http monitor must not be inspected")
		return nil, nil
	}}
	f := newFixture(t, Config{SSLAlertBeforeDays: 14}, stubProber{}, certs)

	f.monitors.EXPECT().ListMonitors(gomock.Any()).Return([]model.Monitor{testMonitor()}, nil)

	f.scheduler.RunSSLSweep(context.Background())
}

func TestScheduler_SSLSweepNoAlertAboveThreshold(t *testing.T) {
	expires := time.Now().Add(60 * 24 * time.Hour)
	certs := stubInspector{fn: func(ctx context.Context, rawURL string) (*probe.CertInfo, error) {
		return &probe.CertInfo{ExpiresAt: expires, Issuer: "R11", DaysLeft: 60}, nil
	}}
	f := newFixture(t, Config{SSLAlertBeforeDays: 14}, stubProber{}, certs)

	m := testMonitor()
	m.URL = "https://example.com"
	f.monitors.EXPECT().ListMonitors(gomock.Any()).Return([]model.Monitor{m}, nil)
	f.ssl.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

	f.scheduler.RunSSLSweep(context.Background())
}

func TestScheduler_ApplyKeepsLoopWhenIntervalUnchanged(t *testing.T) {
	f := newFixture(t, Config{DefaultIntervalSeconds: 60, MinIntervalSeconds: 10, MaxProbeTimeout: 5 * time.Second}, stubProber{fn: func(ctx context.Context, req probe.Request) probe.Outcome {
		return probe.Outcome{Online: true, StatusCode: 200}
	}}, stubInspector{})
	defer f.scheduler.Stop()

	m := testMonitor()
	f.scheduler.Apply(m)
	f.scheduler.mu.Lock()
	first := f.scheduler.loops[m.ID]
	f.scheduler.mu.Unlock()

	f.scheduler.Apply(m)
	f.scheduler.mu.Lock()
	second := f.scheduler.loops[m.ID]
	f.scheduler.mu.Unlock()

	assert.Same(t, first, second)
}

func TestScheduler_ApplyRestartsLoopOnIntervalChange(t *testing.T) {
	f := newFixture(t, Config{DefaultIntervalSeconds: 60, MinIntervalSeconds: 10, MaxProbeTimeout: 5 * time.Second}, stubProber{fn: func(ctx context.Context, req probe.Request) probe.Outcome {
		return probe.Outcome{Online: true, StatusCode: 200}
	}}, stubInspector{})
	defer f.scheduler.Stop()

	m := testMonitor()
	f.scheduler.Apply(m)
	f.scheduler.mu.Lock()
	first := f.scheduler.loops[m.ID]
	f.scheduler.mu.Unlock()

	m.IntervalSeconds = 120
	f.scheduler.Apply(m)
	f.scheduler.mu.Lock()
	second := f.scheduler.loops[m.ID]
	f.scheduler.mu.Unlock()

	assert.NotSame(t, first, second)
	assert.Equal(t, 2*time.Minute, second.interval)
}

func TestScheduler_RemoveStopsLoop(t *testing.T) {
	f := newFixture(t, Config{DefaultIntervalSeconds: 60, MinIntervalSeconds: 10, MaxProbeTimeout: 5 * time.Second}, stubProber{fn: func(ctx context.Context, req probe.Request) probe.Outcome {
		return probe.Outcome{Online: true, StatusCode: 200}
	}}, stubInspector{})
	defer f.scheduler.Stop()

	f.scheduler.Apply(testMonitor())
	assert.True(t, f.scheduler.isScheduled(1))

	f.scheduler.Remove(1)
	assert.False(t, f.scheduler.isScheduled(1))
}

func TestScheduler_IntervalClampedToMinimum(t *testing.T) {
	f := newFixture(t, Config{DefaultIntervalSeconds: 60, MinIntervalSeconds: 10, MaxProbeTimeout: 5 * time.Second}, stubProber{}, stubInspector{})

	m := testMonitor()
	m.IntervalSeconds = 3
	assert.Equal(t, 10*time.Second, f.scheduler.interval(m))

	m.IntervalSeconds = 0
	assert.Equal(t, time.Minute, f.scheduler.interval(m))
}
