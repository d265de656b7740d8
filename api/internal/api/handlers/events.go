package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/telemetry"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// The admin panel never sends data, only control frames.
	maxMessageSize = 512
)

// ChangeFeed is the subscription side of telemetry.Hub.
type ChangeFeed interface {
	Subscribe() chan telemetry.Event
	Unsubscribe(ch chan telemetry.Event)
}

// EventsHandler streams change events to open admin panels so previews reload
// after a save made in another tab.
type EventsHandler struct {
	Feed     ChangeFeed
	Logger   *slog.Logger
	upgrader websocket.Upgrader
}

// NewEventsHandler accepts upgrades from allowedOrigins, or from the same host
// when the list is empty.
func NewEventsHandler(feed ChangeFeed, allowedOrigins []string, logger *slog.Logger) *EventsHandler {
	h := &EventsHandler{Feed: feed, Logger: logger}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}
	if len(allowedOrigins) > 0 {
		allowed := make(map[string]struct{}, len(allowedOrigins))
		for _, o := range allowedOrigins {
			allowed[o] = struct{}{}
		}
		h.upgrader.CheckOrigin = func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				return true
			}
			_, ok := allowed[origin]
			return ok
		}
	}
	return h
}

// Stream handles GET /api/admin/events
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.Logger.Warn("Failed to upgrade WebSocket connection", slog.String("error", err.Error()))
		return
	}

	events := h.Feed.Subscribe()
	done := make(chan struct{})

	go h.readPump(ws, done)
	h.writePump(ws, events, done)
}

func (h *EventsHandler) writePump(ws *websocket.Conn, events chan telemetry.Event, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		h.Feed.Unsubscribe(events)
		ws.Close()
	}()

	for {
		select {
		case ev, ok := <-events:
			ws.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
				return
			}
			if err := ws.WriteJSON(ev); err != nil {
				h.Logger.Debug("Admin event write failed", slog.String("error", err.Error()))
				return
			}

		case <-ticker.C:
			ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-done:
			return
		}
	}
}

func (h *EventsHandler) readPump(ws *websocket.Conn, done chan<- struct{}) {
	defer close(done)

	ws.SetReadLimit(maxMessageSize)
	ws.SetReadDeadline(time.Now().Add(pongWait))
	ws.SetPongHandler(func(string) error {
		ws.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.Logger.Warn("Admin events socket closed unexpectedly", slog.String("error", err.Error()))
			}
			return
		}
	}
}
