// Package api holds one facade per backend resource. Facades normalize
// every failure into a user-presentable error: structured backend messages
// pass through verbatim, anything else collapses to a resource-specific
// fallback. Nothing above the gateway sees a raw transport error.
package api

import (
	"encoding/json"
	"errors"

	"github.com/mydailybill/mdb-admin/internal/domain"
	"github.com/mydailybill/mdb-admin/internal/infrastructure/gateway"
	"github.com/mydailybill/mdb-admin/pkg/logger"
)

// API bundles the per-resource facades over a shared gateway.
type API struct {
	Auth      *AuthAPI
	Companies *CompaniesAPI
	Plans     *PlansAPI
	Users     *UsersAPI
	Analytics *AnalyticsAPI
	Uploads   *UploadsAPI
}

// New builds the facade set.
func New(gw *gateway.Client, log *logger.Logger) *API {
	return &API{
		Auth:      &AuthAPI{gw: gw, log: log},
		Companies: &CompaniesAPI{gw: gw},
		Plans:     &PlansAPI{gw: gw},
		Users:     &UsersAPI{gw: gw},
		Analytics: &AnalyticsAPI{gw: gw},
		Uploads:   &UploadsAPI{gw: gw},
	}
}

// Error is the normalized facade error. Message is safe to show as-is.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

// backendMessage extracts the structured message field from an error body,
// checking "message" then "error".
func backendMessage(body []byte) string {
	var env struct {
		Message string `json:"message"`
		Err     string `json:"error"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}
	if env.Message != "" {
		return env.Message
	}
	return env.Err
}

// normalize recovers a gateway outcome into the uniform facade error shape.
// A 401 is not a facade error: the gateway already wiped the session and
// the sentinel propagates untouched.
func normalize(resp *gateway.Response, err error, fallback string) error {
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return err
		}
		return &Error{Message: fallback}
	}
	if resp.OK() {
		return nil
	}
	if msg := backendMessage(resp.Body); msg != "" {
		return &Error{Message: msg}
	}
	return &Error{Message: fallback}
}
