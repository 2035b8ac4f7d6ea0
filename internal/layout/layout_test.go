package layout

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/2beens/plainsite/internal/page"
	"github.com/2beens/plainsite/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Wrap_Anonymous(t *testing.T) {
	renderer := NewRenderer(session.NewMemoryRegistry(), "plainsite")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	html, err := renderer.Wrap(context.Background(), "<h1>Welcome</h1>", page.Meta{Title: "Home"}, req)
	require.NoError(t, err)

	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, "<title>Home | plainsite</title>")
	assert.Contains(t, html, `<link rel="stylesheet" href="/public/style.css">`)
	assert.Contains(t, html, `<a href="/login">Login</a> | <a href="/register">Register</a>`)
	assert.NotContains(t, html, "Logged in as")
	// body goes in unescaped
	assert.Contains(t, html, "<h1>Welcome</h1>")
}

func TestRenderer_Wrap_Authenticated(t *testing.T) {
	registry := session.NewMemoryRegistry()
	token, err := registry.Create(context.Background(), "alice")
	require.NoError(t, err)

	renderer := NewRenderer(registry, "plainsite")
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.AddCookie(session.NewCookie(token))

	html, err := renderer.Wrap(context.Background(), "<p>body</p>", page.Meta{Title: "Profile"}, req)
	require.NoError(t, err)
	assert.Contains(t, html, "Logged in as alice")
	assert.Contains(t, html, `Logged in as alice | <a href="/logout">Logout</a>`)
	assert.NotContains(t, html, `<a href="/register">Register</a>`)

	// wrapping is read-only against the registry
	assert.Equal(t, 1, registry.Count())
}

func TestRenderer_Wrap_UnknownTokenIsAnonymous(t *testing.T) {
	renderer := NewRenderer(session.NewMemoryRegistry(), "plainsite")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(session.NewCookie("deadbeef"))

	html, err := renderer.Wrap(context.Background(), "", page.Meta{Title: "Home"}, req)
	require.NoError(t, err)
	assert.Contains(t, html, `<a href="/login">Login</a>`)
}

func TestRenderer_Wrap_DefaultTitle(t *testing.T) {
	renderer := NewRenderer(session.NewMemoryRegistry(), "plainsite")
	html, err := renderer.Wrap(context.Background(), "", page.Meta{}, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Contains(t, html, "<title>Untitled | plainsite</title>")
}

func TestRenderer_Wrap_EscapesUsernameAndTitle(t *testing.T) {
	registry := session.NewMemoryRegistry()
	token, err := registry.Create(context.Background(), "<script>alert(1)</script>")
	require.NoError(t, err)

	renderer := NewRenderer(registry, "plainsite")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(session.NewCookie(token))

	html, err := renderer.Wrap(context.Background(), "", page.Meta{Title: "<b>t</b>"}, req)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "<b>t</b>")
	assert.Contains(t, html, "Logged in as &lt;script&gt;alert(1)&lt;/script&gt;")
	assert.Contains(t, html, "&lt;b&gt;t&lt;/b&gt;")
}
