package ws

import (
	"log/slog"
	"net/http"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/services"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// writeTimeout bounds how long a single frame write may block on a slow
// client before the connection is considered dead.
const writeTimeout = 10 * time.Second

// LocationMessage is the JSON frame pushed to tracking subscribers.
type LocationMessage struct {
	OrderID    string    `json:"order_id"`
	RiderID    string    `json:"rider_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Heading    float64   `json:"heading"`
	ReportedAt time.Time `json:"reported_at"`
}

// TrackHandler upgrades customer connections and streams the assigned
// rider's position samples for one order.
type TrackHandler struct {
	hub      *services.TrackingHub
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewTrackHandler creates a handler serving order tracking sessions from
// the given hub.
func NewTrackHandler(hub *services.TrackingHub, logger *slog.Logger) *TrackHandler {
	return &TrackHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger.With("component", "order_tracking_ws"),
	}
}

// Track handles GET /ws/orders/:orderId/track. The session stays open
// until the client disconnects or the hub closes the subscription, which
// happens when a newer session takes over or the sweeper removes a
// stalled one.
func (h *TrackHandler) Track(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	conn, err := h.upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	sessionID := kernel.NewUUID().String()
	sub, err := h.hub.Subscribe(orderID, sessionID)
	if err != nil {
		return err
	}
	defer h.hub.Unsubscribe(sub)

	h.logger.Info("tracking session opened",
		"order_id", orderID.String(),
		"session_id", sessionID,
	)

	// Drain incoming frames so close handshakes keep being processed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, readErr := conn.ReadMessage(); readErr != nil {
				return
			}
		}
	}()

	for {
		select {
		case event, ok := <-sub.Events():
			if !ok {
				deadline := time.Now().Add(writeTimeout)
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "subscription closed"),
					deadline)
				return nil
			}

			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if writeErr := conn.WriteJSON(toLocationMessage(event)); writeErr != nil {
				h.logger.Info("tracking session closed on write",
					"order_id", orderID.String(),
					"session_id", sessionID,
					"error", writeErr,
				)
				return nil
			}
		case <-done:
			return nil
		}
	}
}

func toLocationMessage(event services.LocationEvent) LocationMessage {
	return LocationMessage{
		OrderID:    event.OrderID.String(),
		RiderID:    event.RiderID,
		Latitude:   event.Point.Latitude(),
		Longitude:  event.Point.Longitude(),
		Heading:    event.Heading.Degrees(),
		ReportedAt: event.ReportedAt,
	}
}
