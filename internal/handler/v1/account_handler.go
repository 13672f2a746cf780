package v1

import (
	"github.com/clinicbook/api/internal/domain"
	"github.com/clinicbook/api/internal/service"
	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	accounts   *service.AccountService
	authorizer *service.Authorizer
}

func NewAccountHandler(accounts *service.AccountService, authorizer *service.Authorizer) *AccountHandler {
	return &AccountHandler{accounts: accounts, authorizer: authorizer}
}

type signInRequest struct {
	Name string `json:"name"`
}

type signInResponse struct {
	User  *domain.User      `json:"user"`
	Token *domain.TokenPair `json:"token"`
}

// SignIn upserts the user named in the path and issues tokens for them.
// PUT /api/v1/users/:email
func (h *AccountHandler) SignIn(c *gin.Context) {
	var req signInRequest
	if !bindJSON(c, &req) {
		return
	}

	user, pair, err := h.accounts.SignIn(c.Request.Context(), c.Param("email"), req.Name, c.ClientIP())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, signInResponse{User: user, Token: pair})
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Refresh exchanges a refresh token for a fresh pair.
// POST /api/v1/auth/refresh
func (h *AccountHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if !bindJSON(c, &req) {
		return
	}

	pair, err := h.accounts.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, pair)
}

// ListUsers is admin-only (gated by RequireCapability in the router).
// GET /api/v1/users
func (h *AccountHandler) ListUsers(c *gin.Context) {
	users, err := h.accounts.ListUsers(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, users)
}

type adminCheckResponse struct {
	Admin bool `json:"admin"`
}

// IsAdmin reports whether the given email holds the admin role. Unknown
// emails read as false rather than 404.
// GET /api/v1/users/:email/admin
func (h *AccountHandler) IsAdmin(c *gin.Context) {
	isAdmin, err := h.authorizer.HasRole(c.Request.Context(), c.Param("email"), domain.RoleAdmin)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, adminCheckResponse{Admin: isAdmin})
}

// GrantAdmin promotes the target user; admin-only.
// PUT /api/v1/users/:email/admin
func (h *AccountHandler) GrantAdmin(c *gin.Context) {
	claims := callerClaims(c)

	if err := h.accounts.GrantAdmin(c.Request.Context(), c.Param("email"), claims.Email, c.ClientIP()); err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, gin.H{"email": c.Param("email"), "role": domain.RoleAdmin})
}
