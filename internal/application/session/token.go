package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry inspects a bearer token without verifying it. Tokens are
// opaque to the client, but when the backend hands out JWTs the expiry is
// worth displaying; anything that does not parse reports ok=false.
func TokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
