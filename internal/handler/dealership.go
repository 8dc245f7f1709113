package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openlot/account-service/internal/queue"
	"github.com/openlot/account-service/internal/repository"
	"github.com/openlot/account-service/internal/service"
)

// DealershipHandler creates dealership records for owners with the
// dealership role.  Role gating happens in middleware; by the time Create
// runs the caller is a verified dealership account.
type DealershipHandler struct {
	Dealerships DealershipStore
	Verifier    service.LicenseVerifier
	Events      EventPublisher
}

func NewDealershipHandler(d DealershipStore, v service.LicenseVerifier, events EventPublisher) *DealershipHandler {
	return &DealershipHandler{Dealerships: d, Verifier: v, Events: events}
}

type createDealershipReq struct {
	LegalName           string `json:"legal_name"`
	Province            string `json:"province"`
	DealerLicenseNumber string `json:"dealer_license_number"`
	OperatingName       string `json:"operating_name"`
	BusinessType        string `json:"business_type"`
	PrimaryContactName  string `json:"primary_contact_name"`
	Phone               string `json:"phone"`
	Website             string `json:"website"`
	LogoURL             string `json:"logo_url"`
}

// Create inserts a dealership owned by the caller.  Multiple dealerships
// per owner are allowed; there is no existence check.  The dealer license
// is run through the verifier and the result is echoed in the response, but
// an unverified license does not block creation.
func (h *DealershipHandler) Create(c echo.Context) error {
	uid, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var req createDealershipReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.LegalName == "" || req.Province == "" || req.DealerLicenseNumber == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "legal_name, province, dealer_license_number are required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	verification, err := h.Verifier.VerifyDealerLicense(ctx, req.Province, req.DealerLicenseNumber)
	if err != nil {
		verification = service.VerificationResult{Status: "unverified", Reason: "verification_unavailable"}
	}

	d := &repository.Dealership{
		OwnerUserID:         uid,
		LegalName:           req.LegalName,
		Province:            req.Province,
		DealerLicenseNumber: req.DealerLicenseNumber,
		OperatingName:       nullString(req.OperatingName),
		BusinessType:        nullString(req.BusinessType),
		PrimaryContactName:  nullString(req.PrimaryContactName),
		Phone:               nullString(req.Phone),
		Website:             nullString(req.Website),
		LogoURL:             nullString(req.LogoURL),
	}
	if err := h.Dealerships.Create(ctx, d); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create dealership failed"})
	}

	_ = h.Events.Publish(ctx, queue.Envelope{
		Type: queue.TypeDealershipCreated,
		DealershipCreated: &queue.DealershipCreatedEvent{
			DealershipID:  d.ID,
			OwnerUserID:   uid,
			LegalName:     d.LegalName,
			Province:      d.Province,
			LicenseStatus: verification.Status,
		},
	})

	return c.JSON(http.StatusCreated, echo.Map{
		"message":              "Dealership created",
		"dealership_id":        d.ID,
		"license_verification": verification,
	})
}
