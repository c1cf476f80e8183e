// Package rider contains the rider-side domain model: the last known
// location report of each rider.
//
// Riders are identities managed by the external auth gateway, so there is
// no rider aggregate with profile data here. What the system owns is the
// stream of position samples riders report while delivering, and only the
// latest sample per rider is kept. A new report replaces the previous one
// entirely (replace semantics), so the model is a snapshot, not a track
// history.
package rider
