package page

import (
	"context"
	"fmt"

	"github.com/2beens/plainsite/internal/session"
	"github.com/2beens/plainsite/pkg"
)

var _ Page = (*Profile)(nil)

type Profile struct {
	sessions session.Registry
}

func NewProfile(sessions session.Registry) *Profile {
	return &Profile{
		sessions: sessions,
	}
}

func (p *Profile) Meta() Meta {
	return Meta{Title: "Profile"}
}

func (p *Profile) Render(ctx context.Context, pc *Context) (string, error) {
	username, ok := p.sessions.Lookup(ctx, session.TokenFromRequest(pc.Request))
	if !ok {
		return msgLoginPrompt, nil
	}

	// usernames come straight from the registration form, never trust them
	return fmt.Sprintf("<h1>Profile</h1>\n<p>Welcome, %s!</p>", pkg.EscapeHTML(username)), nil
}
