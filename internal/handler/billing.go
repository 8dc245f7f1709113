package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openlot/account-service/internal/middleware"
	"github.com/openlot/account-service/internal/repository"
	"github.com/openlot/account-service/internal/service"
)

// BillingHandler starts a subscription for the authenticated account via
// the billing provider.  The provider is a stub today; the handler only
// depends on the capability contract.
type BillingHandler struct {
	Users   UserStore
	Subs    SubscriptionStore
	Billing service.BillingProvider
}

func NewBillingHandler(users UserStore, subs SubscriptionStore, billing service.BillingProvider) *BillingHandler {
	return &BillingHandler{Users: users, Subs: subs, Billing: billing}
}

// Subscribe creates a billing customer and subscription for the caller and
// records the pending subscription row.  The plan follows the account role.
func (h *BillingHandler) Subscribe(c echo.Context) error {
	uid, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	role, _ := c.Get(middleware.CtxRole).(string)

	ctx, cancel := reqContext(c)
	defer cancel()

	u, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load user failed"})
	}

	customerID, err := h.Billing.CreateCustomer(ctx, u.Email)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "billing unavailable"})
	}
	subscriptionID, err := h.Billing.CreateSubscription(ctx, customerID, "plan_"+role)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "billing unavailable"})
	}

	s := &repository.Subscription{
		UserID:               uid,
		PlanType:             role,
		Status:               "pending",
		StripeCustomerID:     nullString(customerID),
		StripeSubscriptionID: nullString(subscriptionID),
	}
	if err := h.Subs.Create(ctx, s); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save subscription failed"})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":         "Subscription created",
		"subscription_id": s.ID,
		"status":          s.Status,
	})
}
