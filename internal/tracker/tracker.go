package tracker

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

type Config struct {
	// DebounceSeconds is how long a contradicting status must persist before
	// the state flips. 0 means the first contradicting result flips.
	DebounceSeconds int
	// FlapThreshold is the number of confirmed transitions inside FlapWindow
	// above which status-change notifications are muted until the window
	// drains. 0 disables flap suppression.
	FlapThreshold int
	FlapWindow    time.Duration
}

// Transition is a confirmed state change for one monitor.
type Transition struct {
	MonitorID int
	Online    bool
	// Notify is false when the transition should be recorded but not
	// announced: flap suppression is active, or this is a recovery for which
	// no offline notice was ever sent.
	Notify bool
	// Flapping reports that the monitor exceeded the flap threshold.
	Flapping bool
}

type monitorState struct {
	known  bool
	online bool

	hasCandidate   bool
	candidate      bool
	candidateSince time.Time

	transitions  []time.Time
	offlineSent  bool
	sslThreshold bool // at or below the alert threshold (edge-trigger latch)
}

// Tracker turns raw probe outcomes into confirmed transitions. It is an
// in-memory component; last-known state survives restarts via Seed.
type Tracker struct {
	cfg    Config
	logger *zap.Logger
	now    func() time.Time

	mu     sync.Mutex
	states map[int]*monitorState
}

func NewTracker(cfg Config, logger *zap.Logger) *Tracker {
	if cfg.FlapWindow <= 0 {
		cfg.FlapWindow = 10 * time.Minute
	}
	return &Tracker{
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
		states: make(map[int]*monitorState),
	}
}

func (t *Tracker) state(monitorID int) *monitorState {
	st, ok := t.states[monitorID]
	if !ok {
		st = &monitorState{}
		t.states[monitorID] = st
	}
	return st
}

// Seed sets the baseline state without emitting a transition, used at
// startup from the monitor's persisted last_online.
func (t *Tracker) Seed(monitorID int, online bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	st := t.state(monitorID)
	st.known = true
	st.online = online
	if !online {
		// a restart during an outage must not turn the eventual recovery
		// into a silent one
		st.offlineSent = true
	}
}

// Forget drops all state for a removed monitor.
func (t *Tracker) Forget(monitorID int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.states, monitorID)
}

// Observe feeds one probe outcome. It returns a non-nil Transition only when
// the state change is confirmed under the debounce policy.
func (t *Tracker) Observe(monitorID int, online bool) *Transition {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	st := t.state(monitorID)

	if !st.known {
		st.known = true
		st.online = online
		if !online {
			// first ever check found it down; announce like any transition
			return t.confirm(st, monitorID, online, now)
		}
		return nil
	}

	if online == st.online {
		st.hasCandidate = false
		return nil
	}

	if !st.hasCandidate || st.candidate != online {
		st.hasCandidate = true
		st.candidate = online
		st.candidateSince = now
	}

	debounce := time.Duration(t.cfg.DebounceSeconds) * time.Second
	if debounce > 0 && now.Sub(st.candidateSince) < debounce {
		return nil
	}
	return t.confirm(st, monitorID, online, now)
}

func (t *Tracker) confirm(st *monitorState, monitorID int, online bool, now time.Time) *Transition {
	st.online = online
	st.hasCandidate = false
	st.transitions = append(st.transitions, now)
	st.transitions = pruneOld(st.transitions, now.Add(-t.cfg.FlapWindow))

	flapping := t.cfg.FlapThreshold > 0 && len(st.transitions) > t.cfg.FlapThreshold
	notify := !flapping
	if online && !st.offlineSent {
		// never announce recovery for an outage nobody heard about
		notify = false
	}
	if notify && !online {
		st.offlineSent = true
	}
	if notify && online {
		st.offlineSent = false
	}
	if flapping {
		t.logger.Warn("flap suppression active",
			zap.Int("monitor_id", monitorID),
			zap.Int("transitions_in_window", len(st.transitions)),
			zap.Int("threshold", t.cfg.FlapThreshold))
	}
	return &Transition{
		MonitorID: monitorID,
		Online:    online,
		Notify:    notify,
		Flapping:  flapping,
	}
}

// ObserveCert implements the edge-triggered SSL expiry alert: it returns
// true exactly once per crossing of the threshold, not on every check while
// below it.
func (t *Tracker) ObserveCert(monitorID int, daysLeft int, alertBeforeDays int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	st := t.state(monitorID)

	if daysLeft > alertBeforeDays {
		st.sslThreshold = false
		return false
	}
	if st.sslThreshold {
		return false
	}
	st.sslThreshold = true
	return true
}

func pruneOld(ts []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for i < len(ts) && ts[i].Before(cutoff) {
		i++
	}
	return ts[i:]
}
