// Package services contains domain services that do not belong to a single
// aggregate.
//
// TrackingHub is the in-process fan-out registry for live rider positions.
// Observers subscribe to an order and receive every position sample
// published for it while they stay connected. The hub deliberately holds no
// history: a subscriber sees only samples published after it joined, and a
// slow subscriber loses samples rather than slowing the publisher down.
package services
