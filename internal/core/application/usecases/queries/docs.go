// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the domain model and read projection rows straight
// from the database, returning plain response structs shaped for the API.
package queries
