package sse

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/streamwire/ssekit/errors"
	"github.com/streamwire/ssekit/logger"
)

// connectedPayload is the body of the initial "connected" event.
type connectedPayload struct {
	ConnectionID uint64 `json:"connection_id"`
	RequestID    string `json:"request_id,omitempty"`
}

// responseTransport adapts a Gin response writer into a Transport. Send
// pushes bytes onto the open response and flushes so frames reach the peer
// immediately. Close releases the handler goroutine, which terminates the
// connection by returning from the handler.
type responseTransport struct {
	w    gin.ResponseWriter
	done chan struct{}
	once sync.Once
}

func newResponseTransport(w gin.ResponseWriter) *responseTransport {
	return &responseTransport{w: w, done: make(chan struct{})}
}

func (t *responseTransport) Send(p []byte) error {
	if _, err := t.w.Write(p); err != nil {
		return err
	}
	t.w.Flush()
	return nil
}

func (t *responseTransport) Close() error {
	t.once.Do(func() { close(t.done) })
	return nil
}

// Handler returns a Gin handler that upgrades the request into an SSE push
// stream registered with reg. The handler holds the connection open until
// the peer disconnects, the connection is closed server-side, or the
// registry shuts down; keep-alive comments are sent on the configured
// interval so proxies do not drop the idle stream.
func Handler(reg *Registry, cfg Config) gin.HandlerFunc {
	cfg.ApplyDefaults()
	log := logger.Get("sse")

	return func(c *gin.Context) {
		if !IsValidRequest(c.Request.Method, c.Request.Header) {
			log.Warn("rejecting invalid SSE request", logger.Fields(
				"method", c.Request.Method,
				"accept", c.Request.Header.Get("Accept"),
				logger.FieldRemoteAddr, c.Request.RemoteAddr,
			))
			appErr := errors.InvalidSseRequest("method must be GET and Accept must include text/event-stream")
			c.JSON(appErr.HTTPStatus, appErr.ToResponse())
			return
		}

		// SSE connections are long-lived and must not be cut by the
		// server's write timeout.
		rc := http.NewResponseController(c.Writer)
		if err := rc.SetWriteDeadline(time.Time{}); err != nil {
			log.Warn("could not disable write deadline", logger.ErrorFields("set_write_deadline", err))
		}

		c.Header("Content-Type", MimeEventStream)
		c.Header("Cache-Control", "no-cache")
		c.Header("Connection", "keep-alive")
		c.Header("X-Accel-Buffering", "no") // disable nginx buffering
		c.Writer.WriteHeader(http.StatusOK)
		c.Writer.Flush()

		transport := newResponseTransport(c.Writer)
		id := reg.Register(transport)
		if id == NoConnection {
			log.Warn("registration refused", logger.Fields(
				logger.FieldRemoteAddr, c.Request.RemoteAddr,
			))
			return
		}
		defer reg.CloseClient(id)

		if cfg.ConnectedEvent {
			payload, _ := json.Marshal(connectedPayload{
				ConnectionID: id,
				RequestID:    c.GetString("request_id"),
			})
			reg.SendToClient(id, Event{Type: EventTypeConnected, Data: string(payload)})
		}

		log.Debug("client connected", logger.Fields(
			logger.FieldConnectionID, id,
			logger.FieldRemoteAddr, c.Request.RemoteAddr,
		))

		keepAlive := time.NewTicker(cfg.keepAliveInterval())
		defer keepAlive.Stop()

		ctx := c.Request.Context()
		for {
			select {
			case <-ctx.Done():
				log.Debug("client disconnected", logger.Fields(
					logger.FieldConnectionID, id,
					"reason", ctx.Err().Error(),
				))
				return

			case <-transport.done:
				// Closed server-side (CloseClient, Shutdown, or send failure).
				return

			case <-keepAlive.C:
				w, ok := reg.Writer(id)
				if !ok {
					return
				}
				if err := w.Comment(fmt.Sprintf("keepalive %d", time.Now().Unix())); err != nil {
					reg.CloseClient(id)
					return
				}
			}
		}
	}
}
