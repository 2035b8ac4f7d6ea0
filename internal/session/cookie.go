package session

import (
	"net/http"
)

const CookieName = "session"

// NewCookie returns the session cookie carrying the given token.
func NewCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	}
}

// ClearedCookie returns a cookie that makes the client drop its session cookie.
// Same name, path and flags as the one issued on login; MaxAge < 0 is sent as Max-Age=0.
func ClearedCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	}
}

// TokenFromRequest extracts the session token from the request cookie header.
// Missing or malformed cookies yield an empty token.
func TokenFromRequest(r *http.Request) string {
	if r == nil {
		return ""
	}
	return TokenFromHeader(r.Header.Get("Cookie"))
}

// TokenFromHeader parses a raw Cookie header value and returns the session token.
// Malformed pairs are skipped; the first session cookie wins.
func TokenFromHeader(cookieHeader string) string {
	if cookieHeader == "" {
		return ""
	}

	req := &http.Request{Header: http.Header{"Cookie": {cookieHeader}}}
	c, err := req.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return c.Value
}
