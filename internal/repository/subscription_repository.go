package repository

import (
	"context"
	"database/sql"
	"time"
)

// Subscription records a billing subscription created for a user.  The
// Stripe identifiers come from the billing provider (currently a stub) and
// status stays "pending" until the real webhook integration flips it.
type Subscription struct {
	ID                   uint64
	UserID               uint64
	PlanType             string
	Status               string
	StripeCustomerID     sql.NullString
	StripeSubscriptionID sql.NullString
	CreatedAt            time.Time
}

type SubscriptionRepo struct{ DB *sql.DB }

func NewSubscriptionRepo(db *sql.DB) *SubscriptionRepo { return &SubscriptionRepo{DB: db} }

// Create inserts a subscription row and populates its ID.
func (r *SubscriptionRepo) Create(ctx context.Context, s *Subscription) error {
	if s.Status == "" {
		s.Status = "pending"
	}
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO subscriptions (user_id, plan_type, status, stripe_customer_id, stripe_subscription_id)
		 VALUES (?,?,?,?,?)`,
		s.UserID, s.PlanType, s.Status, s.StripeCustomerID, s.StripeSubscriptionID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}
