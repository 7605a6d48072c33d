// Package sessioncookie encodes the session token into its transport
// cookie. The cookie value is "<token>.<mac>" where mac is an HMAC-SHA256
// of the token under the configured session secret: the browser holds only
// the opaque token, and a tampered or hand-crafted value fails the MAC
// check before the session store is ever consulted.
package sessioncookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strings"
	"time"
)

// Name is the cookie the session token travels in.
const Name = "portfolio_session"

// Encode returns the signed cookie value for token.
func Encode(token string, secret []byte) string {
	return token + "." + sign(token, secret)
}

// Decode verifies a cookie value and returns the embedded token.
// The second return is false for malformed or tampered values.
func Decode(value string, secret []byte) (string, bool) {
	token, mac, ok := strings.Cut(value, ".")
	if !ok || token == "" {
		return "", false
	}
	if !hmac.Equal([]byte(mac), []byte(sign(token, secret))) {
		return "", false
	}
	return token, true
}

// New builds the session cookie for a freshly created token.
func New(token string, secret []byte, ttl time.Duration, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     Name,
		Value:    Encode(token, secret),
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// Expired builds a cookie that instructs the browser to drop the session.
func Expired(secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func sign(token string, secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(token))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
