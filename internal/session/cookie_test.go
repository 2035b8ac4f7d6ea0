package session

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCookie(t *testing.T) {
	rr := httptest.NewRecorder()
	http.SetCookie(rr, NewCookie("abc123"))

	setCookie := rr.Header().Get("Set-Cookie")
	assert.True(t, strings.HasPrefix(setCookie, "session=abc123"))
	assert.Contains(t, setCookie, "Path=/")
	assert.Contains(t, setCookie, "HttpOnly")
	assert.NotContains(t, setCookie, "Max-Age")
}

func TestClearedCookie(t *testing.T) {
	rr := httptest.NewRecorder()
	http.SetCookie(rr, ClearedCookie())

	setCookie := rr.Header().Get("Set-Cookie")
	assert.True(t, strings.HasPrefix(setCookie, "session="))
	assert.Contains(t, setCookie, "Max-Age=0")
	assert.Contains(t, setCookie, "Path=/")
	assert.Contains(t, setCookie, "HttpOnly")
}

func TestTokenFromHeader(t *testing.T) {
	for name, tc := range map[string]struct {
		header string
		want   string
	}{
		"empty":              {header: "", want: ""},
		"only session":       {header: "session=abc", want: "abc"},
		"among others":       {header: "theme=dark; session=abc; lang=en", want: "abc"},
		"other cookies only": {header: "theme=dark; lang=en", want: ""},
		"garbage":            {header: ";;;===", want: ""},
		"empty value":        {header: "session=", want: ""},
		"prefix lookalike":   {header: "session_id=abc", want: ""},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, TokenFromHeader(tc.header))
		})
	}
}

func TestTokenFromRequest(t *testing.T) {
	assert.Empty(t, TokenFromRequest(nil))

	req := httptest.NewRequest("GET", "/profile", nil)
	assert.Empty(t, TokenFromRequest(req))

	req.AddCookie(&http.Cookie{Name: CookieName, Value: "tkn"})
	assert.Equal(t, "tkn", TokenFromRequest(req))
}
