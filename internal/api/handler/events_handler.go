package handler

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/sitepulse/sitepulse/internal/events"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EventsHandler interface {
	StreamEvents() gin.HandlerFunc
}

type eventsHandler struct {
	log *zap.Logger
	bus *events.Bus
}

const pingInterval = 15 * time.Second

// StreamEvents is the SSE endpoint. Each connection gets its own bus
// subscription; dropped frames for a slow client are handled at the bus, the
// handler just writes what it receives. Comment pings keep proxies from
// closing idle connections.
func (e *eventsHandler) StreamEvents() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/event-stream")
		c.Header("Cache-Control", "no-cache")
		c.Header("Connection", "keep-alive")
		c.Header("X-Accel-Buffering", "no")
		c.Writer.Flush()

		ch, cancel := e.bus.Subscribe()
		defer cancel()
		e.log.Info("sse client connected", zap.Int("subscribers", e.bus.SubscriberCount()))
		defer e.log.Info("sse client disconnected")

		ping := time.NewTicker(pingInterval)
		defer ping.Stop()

		for {
			select {
			case <-c.Request.Context().Done():
				return
			case <-ping.C:
				fmt.Fprint(c.Writer, ": ping\n\n")
				c.Writer.Flush()
			case ev, ok := <-ch:
				if !ok {
					return
				}
				data, err := json.Marshal(ev)
				if err != nil {
					continue
				}
				fmt.Fprintf(c.Writer, "data: %s\n\n", data)
				c.Writer.Flush()
			}
		}
	}
}

func NewEventsHandler(log *zap.Logger, bus *events.Bus) EventsHandler {
	return &eventsHandler{
		log: log,
		bus: bus,
	}
}
