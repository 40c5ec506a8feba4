package events

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Event is the wire shape pushed to SSE clients and the notification
// dispatcher. Field names are PascalCase on the wire; both dashboard
// frontends depend on them exactly as written here.
type Event struct {
	ID          string    `json:"-"`
	MonitorID   int       `json:"MonitorID"`
	CheckedAt   time.Time `json:"CheckedAt"`
	Online      bool      `json:"Online"`
	StatusCode  int       `json:"StatusCode"`
	ResponseMs  int       `json:"ResponseMs"`
	Error       string    `json:"Error"`
	EventType   string    `json:"EventType,omitempty"`
	Message     string    `json:"Message,omitempty"`
	MonitorName string    `json:"MonitorName,omitempty"`
}

// Notifiable reports whether the event is notification-worthy or just a
// latest-value check update.
func (e Event) Notifiable() bool { return e.EventType != "" }

// Bus is an in-process broadcast channel: one writer (the scheduler
// pipeline), many readers (SSE connections plus the dispatcher). Subscribers
// only see events published after they subscribe; a stalled subscriber has
// its deliveries dropped, never the bus blocked.
type Bus struct {
	logger *zap.Logger
	bufLen int

	mu     sync.Mutex
	nextID int
	subs   map[int]chan Event
	closed bool
}

func NewBus(logger *zap.Logger, subscriberBuffer int) *Bus {
	if subscriberBuffer < 1 {
		subscriberBuffer = 16
	}
	return &Bus{
		logger: logger,
		bufLen: subscriberBuffer,
		subs:   make(map[int]chan Event),
	}
}

// Subscribe registers a reader and returns its channel together with a
// cancel func. The cancel func is idempotent and safe after Close.
func (b *Bus) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		ch := make(chan Event)
		close(ch)
		return ch, func() {}
	}
	b.nextID++
	id := b.nextID
	ch := make(chan Event, b.bufLen)
	b.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if c, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(c)
			}
		})
	}
	return ch, cancel
}

// Publish delivers the event to every live subscriber. Delivery to a full
// subscriber buffer is dropped so one slow SSE client cannot stall the
// scheduler.
func (b *Bus) Publish(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	for id, ch := range b.subs {
		select {
		case ch <- ev:
		default:
			b.logger.Warn("dropping event for slow subscriber",
				zap.Int("subscriber_id", id),
				zap.Int("monitor_id", ev.MonitorID),
				zap.String("event_type", ev.EventType))
		}
	}
}

// SubscriberCount is used by the SSE handler for connection logging.
func (b *Bus) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Close drops all subscribers; their channels are closed so readers exit.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}
