package services

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

const (
	// hubShardCount spreads order rooms over independent locks so
	// publishes for different orders never contend.
	hubShardCount = 16

	// DefaultChannelBuffer is the per-subscriber event buffer used when
	// the hub is created with a non-positive buffer size.
	DefaultChannelBuffer = 16
)

// LocationEvent is a single rider position sample fanned out to the
// subscribers of one order.
type LocationEvent struct {
	OrderID    kernel.UUID
	RiderID    string
	Point      kernel.GeoPoint
	Heading    kernel.Heading
	ReportedAt time.Time
}

// Subscription is one observer's attachment to an order's position feed.
// Events arrive on the channel returned by Events until Unsubscribe is
// called, after which the channel is closed.
type Subscription struct {
	orderID   kernel.UUID
	sessionID string
	events    chan LocationEvent

	// droppedStreak counts consecutive publishes lost because the
	// buffer was full; a successful delivery resets it. Swept
	// subscriptions with a long streak are presumed dead.
	droppedStreak atomic.Int64
}

// OrderID returns the order this subscription follows.
func (s *Subscription) OrderID() kernel.UUID {
	return s.orderID
}

// SessionID returns the subscriber's connection identity.
func (s *Subscription) SessionID() string {
	return s.sessionID
}

// Events returns the channel position samples arrive on. The channel is
// closed when the subscription is removed from the hub.
func (s *Subscription) Events() <-chan LocationEvent {
	return s.events
}

// DroppedStreak returns the current run of consecutive lost samples.
func (s *Subscription) DroppedStreak() int64 {
	return s.droppedStreak.Load()
}

type hubShard struct {
	mu sync.RWMutex

	// rooms maps order id to that order's subscribers by session id
	rooms map[string]map[string]*Subscription
}

// TrackingHub is the sharded in-memory registry routing rider position
// samples to per-order subscribers.
//
// Delivery is best effort: Publish never blocks and never waits for a slow
// subscriber. When a subscriber's buffer is full the sample is dropped for
// that subscriber only, and its dropped streak grows until a delivery
// succeeds or Sweep removes it.
//
// All methods are safe for concurrent use.
type TrackingHub struct {
	shards [hubShardCount]hubShard

	channelBuffer int
	subscribers   atomic.Int64
	dropped       atomic.Int64
}

// NewTrackingHub creates a hub whose subscriptions buffer up to
// channelBuffer undelivered samples each. A non-positive value falls back
// to DefaultChannelBuffer.
func NewTrackingHub(channelBuffer int) *TrackingHub {
	if channelBuffer <= 0 {
		channelBuffer = DefaultChannelBuffer
	}

	h := &TrackingHub{channelBuffer: channelBuffer}
	for i := range h.shards {
		h.shards[i].rooms = make(map[string]map[string]*Subscription)
	}
	return h
}

func (h *TrackingHub) shardFor(orderID string) *hubShard {
	f := fnv.New32a()
	_, _ = f.Write([]byte(orderID))
	return &h.shards[f.Sum32()%hubShardCount]
}

// Subscribe attaches a session to an order's position feed. Subscribing an
// already attached session replaces its previous subscription: the old
// channel is closed and a fresh one returned, so a reconnecting client
// never leaks a stale channel.
func (h *TrackingHub) Subscribe(orderID kernel.UUID, sessionID string) (*Subscription, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if sessionID == "" {
		return nil, errs.NewValueIsRequiredError("session_id")
	}

	sub := &Subscription{
		orderID:   orderID,
		sessionID: sessionID,
		events:    make(chan LocationEvent, h.channelBuffer),
	}

	key := orderID.String()
	shard := h.shardFor(key)

	shard.mu.Lock()
	room, ok := shard.rooms[key]
	if !ok {
		room = make(map[string]*Subscription)
		shard.rooms[key] = room
	}
	if previous, exists := room[sessionID]; exists {
		close(previous.events)
		h.subscribers.Add(-1)
	}
	room[sessionID] = sub
	shard.mu.Unlock()

	h.subscribers.Add(1)
	return sub, nil
}

// Unsubscribe detaches a subscription and closes its event channel. It is
// a no-op if the subscription was already removed or replaced.
func (h *TrackingHub) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}

	key := sub.orderID.String()
	shard := h.shardFor(key)

	shard.mu.Lock()
	defer shard.mu.Unlock()

	room, ok := shard.rooms[key]
	if !ok {
		return
	}
	current, exists := room[sub.sessionID]
	if !exists || current != sub {
		return
	}

	delete(room, sub.sessionID)
	if len(room) == 0 {
		delete(shard.rooms, key)
	}
	close(sub.events)
	h.subscribers.Add(-1)
}

// Publish fans a position sample out to every subscriber of its order and
// returns how many subscribers received it. Publishing to an order without
// subscribers is a valid no-op. Publish never blocks: subscribers whose
// buffer is full miss this sample.
func (h *TrackingHub) Publish(event LocationEvent) int {
	key := event.OrderID.String()
	shard := h.shardFor(key)

	shard.mu.RLock()
	defer shard.mu.RUnlock()

	room, ok := shard.rooms[key]
	if !ok {
		return 0
	}

	delivered := 0
	for _, sub := range room {
		select {
		case sub.events <- event:
			sub.droppedStreak.Store(0)
			delivered++
		default:
			sub.droppedStreak.Add(1)
			h.dropped.Add(1)
		}
	}
	return delivered
}

// Sweep removes every subscription whose dropped streak has reached
// maxDroppedStreak and returns how many were removed. It exists for a
// periodic job: a subscriber that misses that many consecutive samples is
// treated as dead even though its connection has not closed yet.
func (h *TrackingHub) Sweep(maxDroppedStreak int64) int {
	if maxDroppedStreak <= 0 {
		return 0
	}

	removed := 0
	for i := range h.shards {
		shard := &h.shards[i]

		shard.mu.Lock()
		for key, room := range shard.rooms {
			for sessionID, sub := range room {
				if sub.droppedStreak.Load() < maxDroppedStreak {
					continue
				}
				delete(room, sessionID)
				close(sub.events)
				h.subscribers.Add(-1)
				removed++
			}
			if len(room) == 0 {
				delete(shard.rooms, key)
			}
		}
		shard.mu.Unlock()
	}
	return removed
}

// SubscriberCount returns the number of subscribers currently attached to
// the given order.
func (h *TrackingHub) SubscriberCount(orderID kernel.UUID) int {
	key := orderID.String()
	shard := h.shardFor(key)

	shard.mu.RLock()
	defer shard.mu.RUnlock()
	return len(shard.rooms[key])
}

// TotalSubscribers returns the number of subscribers across all orders.
func (h *TrackingHub) TotalSubscribers() int64 {
	return h.subscribers.Load()
}

// TotalDropped returns how many individual deliveries were lost to full
// buffers since the hub was created.
func (h *TrackingHub) TotalDropped() int64 {
	return h.dropped.Load()
}
