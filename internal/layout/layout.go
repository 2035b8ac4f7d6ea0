package layout

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/http"

	"github.com/2beens/plainsite/internal/page"
	"github.com/2beens/plainsite/internal/session"
)

const (
	DefaultTitle   = "Untitled"
	StylesheetPath = "/public/style.css"
)

// html/template escapes the title and the username, the body is trusted as is.
var shell = template.Must(template.New("layout").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}} | {{.SiteName}}</title>
  <link rel="stylesheet" href="{{.Stylesheet}}">
</head>
<body>
  <header>
    <a href="/">{{.SiteName}}</a>
    <nav>
{{- if .Authenticated}}
      Logged in as {{.Username}} | <a href="/logout">Logout</a>
{{- else}}
      <a href="/login">Login</a> | <a href="/register">Register</a>
{{- end}}
    </nav>
  </header>
  <main>
{{.Body}}
  </main>
</body>
</html>
`))

type shellData struct {
	Title         string
	SiteName      string
	Stylesheet    string
	Authenticated bool
	Username      string
	Body          template.HTML
}

// Renderer wraps page bodies into the shared document shell with session aware navigation.
// It only ever reads from the session registry.
type Renderer struct {
	sessions session.Registry
	siteName string
}

func NewRenderer(sessions session.Registry, siteName string) *Renderer {
	return &Renderer{
		sessions: sessions,
		siteName: siteName,
	}
}

func (r *Renderer) Wrap(ctx context.Context, body string, meta page.Meta, req *http.Request) (string, error) {
	data := shellData{
		Title:      meta.Title,
		SiteName:   r.siteName,
		Stylesheet: StylesheetPath,
		Body:       template.HTML(body),
	}
	if data.Title == "" {
		data.Title = DefaultTitle
	}

	if username, ok := r.sessions.Lookup(ctx, session.TokenFromRequest(req)); ok {
		data.Authenticated = true
		data.Username = username
	}

	var buf bytes.Buffer
	if err := shell.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute layout template: %w", err)
	}

	return buf.String(), nil
}
