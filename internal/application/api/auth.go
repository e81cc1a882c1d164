package api

import (
	"context"
	"encoding/json"

	"github.com/mydailybill/mdb-admin/internal/domain/entity"
	"github.com/mydailybill/mdb-admin/internal/infrastructure/gateway"
	"github.com/mydailybill/mdb-admin/pkg/logger"
)

// AuthAPI wraps the authentication endpoints.
type AuthAPI struct {
	gw  *gateway.Client
	log *logger.Logger
}

// Credentials is the login request payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the backend's login reply. Data carries the companies
// the admin can manage; Name/Username may both be empty.
type LoginResponse struct {
	Token    string           `json:"token"`
	UserType string           `json:"user_type"`
	Name     string           `json:"name"`
	Username string           `json:"username"`
	Data     []entity.Company `json:"data"`
}

// Login authenticates against POST /login.
func (a *AuthAPI) Login(ctx context.Context, creds Credentials) (*LoginResponse, error) {
	resp, err := a.gw.Post(ctx, "/login", creds)
	if err := normalize(resp, err, "Login failed"); err != nil {
		return nil, err
	}
	var out LoginResponse
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return nil, &Error{Message: "Login failed"}
	}
	return &out, nil
}

// Logout calls POST /logout best-effort. It never fails: local cleanup is
// the authoritative success criterion. When the remote call failed the
// returned warning is non-empty so the caller can log it.
func (a *AuthAPI) Logout(ctx context.Context) (warning string) {
	resp, err := a.gw.Post(ctx, "/logout", nil)
	if err := normalize(resp, err, "Logout API call failed, but local session cleared"); err != nil {
		return err.Error()
	}
	return ""
}

// RefreshToken exchanges the current token for a fresh one.
func (a *AuthAPI) RefreshToken(ctx context.Context) (string, error) {
	resp, err := a.gw.Post(ctx, "/refresh-token", nil)
	if err := normalize(resp, err, "Failed to refresh token"); err != nil {
		return "", err
	}
	var out struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(resp.Body, &out); err != nil || out.Token == "" {
		return "", &Error{Message: "Failed to refresh token"}
	}
	return out.Token, nil
}
