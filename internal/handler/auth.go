package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/openlot/account-service/internal/config"
	"github.com/openlot/account-service/internal/middleware"
	"github.com/openlot/account-service/internal/queue"
	"github.com/openlot/account-service/internal/repository"
	"github.com/openlot/account-service/internal/utils"
)

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
	Cfg      config.Config
	Users    UserStore
	Denylist *repository.TokenDenylist
	Events   EventPublisher
}

func NewAuthHandler(cfg config.Config, users UserStore, denylist *repository.TokenDenylist, events EventPublisher) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: users, Denylist: denylist, Events: events}
}

// ----- DTOs -----

type registerReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"` // dealership | salesperson
}
type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"` // declared account type, must match the stored role
}

// Register creates a user with a freshly hashed password.  The unique index
// on users.email decides conflicts; a duplicate insert comes back as
// ErrEmailExists no matter how close together two registrations land.
// Registration does not issue a token; clients log in afterwards.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = repository.NormalizeEmail(req.Email)
	if req.Email == "" || req.Password == "" || req.Role == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Email, password, and role are required"})
	}
	if !ValidRole(req.Role) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid role"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	uid, err := h.Users.Create(ctx, req.Email, req.Password, req.Role, h.Cfg.BcryptCost)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Email already registered"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}

	// Best-effort event for audit/onboarding consumers.
	_ = h.Events.Publish(ctx, queue.Envelope{
		Type: queue.TypeAccountRegistered,
		AccountRegistered: &queue.AccountRegisteredEvent{
			UserID: uid,
			Email:  req.Email,
			Role:   req.Role,
		},
	})

	return c.JSON(http.StatusCreated, echo.Map{"message": "User created"})
}

// Login verifies credentials and the declared account type, then issues an
// access token.  The role check runs after the password check: a correct
// password with the wrong declared role is 403, not 200.  Role re-assertion
// guards against client-side role confusion; authorization proper happens
// per-request from the token claim.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = repository.NormalizeEmail(req.Email)
	if req.Email == "" || req.Password == "" || req.Role == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Email, password, and role are required"})
	}
	if !ValidRole(req.Role) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid role"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid credentials"})
	}
	if u.Role != req.Role {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "Incorrect account type"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Role, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"access_token": access.Token})
}

// Me returns the identity asserted by the verified token.
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"id":   c.Get(middleware.CtxUserID),
		"role": c.Get(middleware.CtxRole),
	})
}

// Logout denylists the presented token's id until its natural expiry.  The
// route runs behind JWTAuth, so the claims in context are already verified.
func (h *AuthHandler) Logout(c echo.Context) error {
	jti, _ := c.Get(middleware.CtxTokenID).(string)
	exp, _ := c.Get(middleware.CtxTokenExp).(time.Time)

	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.Denylist.Revoke(ctx, jti, exp); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "logout failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
