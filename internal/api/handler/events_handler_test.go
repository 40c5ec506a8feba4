package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sitepulse/sitepulse/internal/events"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupStreamContext(t *testing.T) (*httptest.ResponseRecorder, *gin.Context, context.CancelFunc) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	ctx, cancel := context.WithCancel(context.Background())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "/api/events", nil)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}
	c.Request = req
	return w, c, cancel
}

func TestEventsHandler_StreamEventsWritesFrames(t *testing.T) {
	gin.SetMode(gin.TestMode)

	bus := events.NewBus(zap.NewNop(), 16)
	defer bus.Close()
	handler := NewEventsHandler(zap.NewNop(), bus)

	w, c, cancel := setupStreamContext(t)

	done := make(chan struct{})
	go func() {
		handler.StreamEvents()(c)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return bus.SubscriberCount() == 1
	}, time.Second, 10*time.Millisecond)

	bus.Publish(events.Event{
		MonitorID:  7,
		CheckedAt:  time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		Online:     true,
		StatusCode: 200,
		ResponseMs: 42,
	})
	time.Sleep(200 * time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handler did not exit after client disconnect")
	}

	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	assert.Equal(t, "no", w.Header().Get("X-Accel-Buffering"))

	body := w.Body.String()
	assert.Contains(t, body, "data: ")
	assert.Contains(t, body, `"MonitorID":7`)
	assert.Contains(t, body, `"Online":true`)
	assert.Contains(t, body, `"StatusCode":200`)
	assert.NotContains(t, body, `"ID"`)
}

func TestEventsHandler_StreamEventsExitsOnBusClose(t *testing.T) {
	gin.SetMode(gin.TestMode)

	bus := events.NewBus(zap.NewNop(), 16)
	handler := NewEventsHandler(zap.NewNop(), bus)

	_, c, cancel := setupStreamContext(t)
	defer cancel()

	done := make(chan struct{})
	go func() {
		handler.StreamEvents()(c)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return bus.SubscriberCount() == 1
	}, time.Second, 10*time.Millisecond)

	bus.Close()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handler did not exit after bus close")
	}
}
