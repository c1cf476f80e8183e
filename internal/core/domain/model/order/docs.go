// Package order contains the Order aggregate and its value objects.
//
// An Order tracks a customer's request from creation through delivery.
// The aggregate owns the status lifecycle and the rider assignment: at most
// one rider may ever be bound to an order, enforced by AcceptBy in memory
// and by a compare-and-set in the persistence adapter. Items and the
// delivery address are captured at creation time and never change.
//
// Status values are exchanged as a fixed string enum. Status changes are
// validated for membership in that enum only, not for adjacency against the
// current status; operational corrections may therefore move an order
// backwards through the lifecycle.
package order
