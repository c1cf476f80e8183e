package ws

import (
	"log/slog"
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// PositionReport is the inbound JSON frame on the rider feed. The order id
// is optional; untagged reports update the rider's last known location but
// reach no tracking room.
type PositionReport struct {
	RiderID   string  `json:"rider_id"`
	OrderID   *string `json:"order_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Heading   float64 `json:"heading"`
}

// FeedHandler ingests rider position reports over a long lived WebSocket
// connection. Reports arriving faster than the per-connection rate limit
// are dropped; the freshest position always comes next anyway.
type FeedHandler struct {
	handler  commands.PublishLocationCommandHandler
	upgrader websocket.Upgrader
	limit    rate.Limit
	burst    int
	logger   *slog.Logger
}

// NewFeedHandler creates a handler for the rider position feed. The limit
// and burst apply per connection.
func NewFeedHandler(
	handler commands.PublishLocationCommandHandler,
	limit rate.Limit,
	burst int,
	logger *slog.Logger,
) *FeedHandler {
	return &FeedHandler{
		handler: handler,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		limit:  limit,
		burst:  burst,
		logger: logger.With("component", "rider_feed_ws"),
	}
}

// Feed handles GET /ws/riders/feed. Each frame is one position report;
// malformed or invalid reports are logged and skipped without closing the
// connection.
func (h *FeedHandler) Feed(ctx echo.Context) error {
	conn, err := h.upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	limiter := rate.NewLimiter(h.limit, h.burst)
	reqCtx := ctx.Request().Context()

	for {
		var report PositionReport
		if err = conn.ReadJSON(&report); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Info("rider feed closed", "error", err)
			}
			return nil
		}

		if !limiter.Allow() {
			continue
		}

		cmd, cmdErr := h.buildCommand(report)
		if cmdErr != nil {
			h.logger.Warn("rejected position report",
				"rider_id", report.RiderID,
				"error", cmdErr,
			)
			continue
		}

		if handleErr := h.handler.Handle(reqCtx, cmd); handleErr != nil {
			h.logger.Warn("failed to process position report",
				"rider_id", report.RiderID,
				"error", handleErr,
			)
		}
	}
}

func (h *FeedHandler) buildCommand(report PositionReport) (commands.PublishLocationCommand, error) {
	var orderID *kernel.UUID
	if report.OrderID != nil && *report.OrderID != "" {
		id, err := kernel.UUIDFromString(*report.OrderID)
		if err != nil {
			return commands.PublishLocationCommand{}, err
		}
		orderID = &id
	}

	point, err := kernel.NewGeoPoint(report.Latitude, report.Longitude)
	if err != nil {
		return commands.PublishLocationCommand{}, err
	}

	heading, err := kernel.NewHeading(report.Heading)
	if err != nil {
		return commands.PublishLocationCommand{}, err
	}

	return commands.NewPublishLocationCommand(report.RiderID, orderID, point, heading)
}
