package page

import (
	"context"
)

var _ Page = (*Home)(nil)

type Home struct{}

func NewHome() *Home {
	return &Home{}
}

func (p *Home) Meta() Meta {
	return Meta{Title: "Home"}
}

func (p *Home) Render(_ context.Context, _ *Context) (string, error) {
	return `<h1>Welcome</h1>
<p>This is a small server-rendered site. <a href="/register">Register</a> an account or <a href="/login">log in</a> to see your <a href="/profile">profile</a>.</p>`, nil
}
