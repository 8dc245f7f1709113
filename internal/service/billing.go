// Package service holds external integration contracts and business logic
// that does not belong to a single entity: billing subscription creation
// and provincial dealer-license verification.  Both ship with stub
// implementations so a real Stripe or registry client can be substituted
// without touching the handlers.
package service

import "context"

// BillingProvider creates billing customers and subscriptions for a user.
// The contract mirrors the payment processor's object model: one customer
// per account, one subscription per plan.
type BillingProvider interface {
	CreateCustomer(ctx context.Context, email string) (customerID string, err error)
	CreateSubscription(ctx context.Context, customerID, planID string) (subscriptionID string, err error)
}

// StubBilling is the placeholder implementation used until the Stripe
// integration lands.  It returns fixed test identifiers and never fails.
type StubBilling struct{}

func NewStubBilling() *StubBilling { return &StubBilling{} }

func (*StubBilling) CreateCustomer(_ context.Context, _ string) (string, error) {
	return "cus_test_123", nil
}

func (*StubBilling) CreateSubscription(_ context.Context, _ string, _ string) (string, error) {
	return "sub_test_123", nil
}
