package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openlot/account-service/internal/repository"
)

// SalespersonHandler manages the 1:1 profile of salesperson accounts.
type SalespersonHandler struct {
	Profiles ProfileStore
}

func NewSalespersonHandler(p ProfileStore) *SalespersonHandler {
	return &SalespersonHandler{Profiles: p}
}

type upsertProfileReq struct {
	FullName         string `json:"full_name"`
	Province         string `json:"province"`
	IssuingAuthority string `json:"issuing_authority"`
	LicenseNumber    string `json:"license_number"`
	LicenseExpiry    string `json:"license_expiry"`
}

type profileResp struct {
	FullName         string  `json:"full_name"`
	Province         string  `json:"province"`
	IssuingAuthority *string `json:"issuing_authority"`
	LicenseNumber    *string `json:"license_number"`
	LicenseExpiry    *string `json:"license_expiry"`
}

// UpsertProfile creates the caller's profile on first save and overwrites
// it in place afterwards.  Replace semantics are full, not a merge: a
// request that omits an optional field clears it.  Clients must send the
// complete profile on every save.
func (h *SalespersonHandler) UpsertProfile(c echo.Context) error {
	uid, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var req upsertProfileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.FullName == "" || req.Province == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "full_name and province are required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	p := &repository.SalespersonProfile{
		UserID:           uid,
		FullName:         req.FullName,
		Province:         req.Province,
		IssuingAuthority: nullString(req.IssuingAuthority),
		LicenseNumber:    nullString(req.LicenseNumber),
		LicenseExpiry:    nullString(req.LicenseExpiry),
	}
	if err := h.Profiles.Upsert(ctx, p); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save profile failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Profile saved"})
}

// GetProfile returns the caller's profile, or a null payload when none has
// been saved yet.  Absence is not an error on this endpoint.
func (h *SalespersonHandler) GetProfile(c echo.Context) error {
	uid, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	p, err := h.Profiles.GetByUserID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusOK, echo.Map{"profile": nil})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load profile failed"})
	}

	return c.JSON(http.StatusOK, echo.Map{"profile": profileResp{
		FullName:         p.FullName,
		Province:         p.Province,
		IssuingAuthority: strPtr(p.IssuingAuthority),
		LicenseNumber:    strPtr(p.LicenseNumber),
		LicenseExpiry:    strPtr(p.LicenseExpiry),
	}})
}
