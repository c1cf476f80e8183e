// Package kernel contains shared value objects used across all domain
// aggregates: validated identifiers and geographic primitives.
//
// All types in this package are immutable value objects constructed through
// factory functions. Zero values are invalid and fail Validate, which keeps
// improperly initialized identifiers and coordinates from leaking into
// aggregates or persistence.
package kernel
