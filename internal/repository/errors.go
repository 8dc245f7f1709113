// Package repository contains data access logic separated from HTTP
// handlers.  This file defines error values shared across repositories so
// that handlers can distinguish failure scenarios without inspecting
// driver-specific errors.
package repository

import "errors"

// ErrNotFound is returned when a lookup matches no row.  For the
// salesperson profile GET this is not surfaced as an HTTP error: an absent
// profile is reported as a successful response with a null payload.
var ErrNotFound = errors.New("not found")

// ErrEmailExists is returned when an insert violates the unique index on
// users.email.  The index is the source of truth for email uniqueness;
// there is no application-level pre-check, so two concurrent registrations
// with the same address race at the storage layer and exactly one wins.
var ErrEmailExists = errors.New("email already exists")
