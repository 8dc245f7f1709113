package handler

// Shared pieces for the HTTP handlers: the narrow store interfaces each
// handler depends on (satisfied by the repository types and mocked in
// tests), role names, and small context/JSON helpers.

import (
	"context"
	"database/sql"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/openlot/account-service/internal/middleware"
	"github.com/openlot/account-service/internal/queue"
	"github.com/openlot/account-service/internal/repository"
)

// Roles a user can hold.  Fixed at registration; asserted again at login.
const (
	RoleDealership  = "dealership"
	RoleSalesperson = "salesperson"
)

// ValidRole reports whether the given string is a known account role.
func ValidRole(role string) bool {
	return role == RoleDealership || role == RoleSalesperson
}

// UserStore is the slice of UserRepo the auth handlers need.
type UserStore interface {
	Create(ctx context.Context, email, password, role string, cost int) (uint64, error)
	GetByEmail(ctx context.Context, email string) (repository.User, error)
	GetByID(ctx context.Context, id uint64) (repository.User, error)
}

// DealershipStore persists dealership rows.
type DealershipStore interface {
	Create(ctx context.Context, d *repository.Dealership) error
}

// ProfileStore persists salesperson profiles.
type ProfileStore interface {
	GetByUserID(ctx context.Context, userID uint64) (repository.SalespersonProfile, error)
	Upsert(ctx context.Context, p *repository.SalespersonProfile) error
}

// SubscriptionStore persists billing subscriptions.
type SubscriptionStore interface {
	Create(ctx context.Context, s *repository.Subscription) error
}

// EventPublisher sends domain events to the broker.  Implemented by
// queue.Publisher; callers treat publish failures as non-fatal.
type EventPublisher interface {
	Publish(ctx context.Context, env queue.Envelope) error
}

// dbTimeout bounds every repository call made from a handler.
const dbTimeout = 5 * time.Second

func reqContext(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), dbTimeout)
}

// currentUserID pulls the authenticated subject stored by the JWT
// middleware.  Returns false when the route was registered without it.
func currentUserID(c echo.Context) (uint64, bool) {
	id, ok := c.Get(middleware.CtxUserID).(uint64)
	return id, ok
}

// nullString maps an optional request field onto its column: requests that
// omit the field store NULL, never "".
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// strPtr converts a nullable column back into the JSON shape the frontend
// expects (string or null).
func strPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
