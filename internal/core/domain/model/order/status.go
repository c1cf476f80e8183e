package order

import (
	"fooddelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order, exchanged on the wire
// as a fixed string enum.
//
// Lifecycle:
//
//	pending → preparing → ready → accepted → pickup_completed
//	        → delivery_started (≡ out_for_delivery) → delivered
//
// cancelled and failed are terminal and reachable from any non-terminal
// state. Validation is membership-only: any member of the enum is accepted
// as a new status regardless of the current one, which tolerates
// out-of-order operational corrections. Clients that predate the full
// enum send out_for_delivery where newer ones send delivery_started; both
// spellings are members of the valid set.
type Status string

const (
	// StatusPending is the initial status of every created order.
	StatusPending Status = "pending"

	// StatusPreparing means the restaurant is working the order.
	StatusPreparing Status = "preparing"

	// StatusReady means the order awaits rider pickup.
	StatusReady Status = "ready"

	// StatusAccepted means a rider has claimed the order.
	StatusAccepted Status = "accepted"

	// StatusPickupCompleted means the rider has collected the order.
	StatusPickupCompleted Status = "pickup_completed"

	// StatusDeliveryStarted means the rider is en route to the customer.
	StatusDeliveryStarted Status = "delivery_started"

	// StatusOutForDelivery is the legacy spelling of StatusDeliveryStarted.
	StatusOutForDelivery Status = "out_for_delivery"

	// StatusDelivered is the successful terminal status.
	StatusDelivered Status = "delivered"

	// StatusCancelled is the terminal status for withdrawn orders.
	StatusCancelled Status = "cancelled"

	// StatusFailed is the terminal status for undeliverable orders.
	StatusFailed Status = "failed"
)

// getValidStatuses returns the full membership set used by Validate.
func getValidStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		StatusPending:         {},
		StatusPreparing:       {},
		StatusReady:           {},
		StatusAccepted:        {},
		StatusPickupCompleted: {},
		StatusDeliveryStarted: {},
		StatusOutForDelivery:  {},
		StatusDelivered:       {},
		StatusCancelled:       {},
		StatusFailed:          {},
	}
}

// ActiveStatuses returns the set shown on restaurant dashboards:
// orders that still need restaurant or rider attention.
func ActiveStatuses() []Status {
	return []Status{StatusPending, StatusPreparing, StatusReady, StatusAccepted}
}

// TerminalStatuses returns the statuses after which no further work is
// expected. Terminality is advisory, not enforced (see package doc).
func TerminalStatuses() []Status {
	return []Status{StatusDelivered, StatusCancelled, StatusFailed}
}

// ClaimableStatuses returns the statuses in which an unassigned order
// appears in the rider-facing claim queue.
func ClaimableStatuses() []Status {
	return []Status{StatusPending, StatusPreparing, StatusReady}
}

// Validate checks membership in the fixed status enum.
// Returns a StatusNotAllowedError for anything outside the set.
func (s Status) Validate() error {
	if _, ok := getValidStatuses()[s]; !ok {
		return errs.NewStatusNotAllowedError(string(s))
	}
	return nil
}

// IsTerminal reports whether the status is delivered, cancelled, or failed.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled || s == StatusFailed
}

// IsActive reports whether the status belongs to the dashboard set.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusPreparing || s == StatusReady || s == StatusAccepted
}

// IsClaimable reports whether an unassigned order in this status may be
// claimed by a rider.
func (s Status) IsClaimable() bool {
	return s == StatusPending || s == StatusPreparing || s == StatusReady
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
