// Package queue defines domain events exchanged over the message broker.
package queue

// Queue name shared by the publisher and the audit consumer.
const AccountEventsQueue = "account.events"

// Event types carried in the envelope.
const (
	TypeAccountRegistered = "account.registered"
	TypeDealershipCreated = "dealership.created"
)

// Envelope wraps every published event with its type and occurrence time so
// consumers can dispatch without sniffing payload fields.
type Envelope struct {
	Type       string `json:"type"`
	OccurredAt string `json:"occurred_at"`

	AccountRegistered *AccountRegisteredEvent `json:"account_registered,omitempty"`
	DealershipCreated *DealershipCreatedEvent `json:"dealership_created,omitempty"`
}

// AccountRegisteredEvent is published after a successful registration.  It
// carries enough for downstream consumers (audit, onboarding email) without
// querying the primary database.  The password hash is never included.
type AccountRegisteredEvent struct {
	UserID uint64 `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// DealershipCreatedEvent is published when a dealership row is created.
type DealershipCreatedEvent struct {
	DealershipID  uint64 `json:"dealership_id"`
	OwnerUserID   uint64 `json:"owner_user_id"`
	LegalName     string `json:"legal_name"`
	Province      string `json:"province"`
	LicenseStatus string `json:"license_status"`
}
