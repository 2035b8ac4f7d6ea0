package page

import (
	"context"

	"github.com/2beens/plainsite/internal/session"
	"github.com/2beens/plainsite/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

var _ Page = (*Logout)(nil)

type Logout struct {
	sessions session.Registry
	metrics  *metrics.Manager
}

func NewLogout(sessions session.Registry, metrics *metrics.Manager) *Logout {
	return &Logout{
		sessions: sessions,
		metrics:  metrics,
	}
}

func (p *Logout) Meta() Meta {
	return Meta{Title: "Logout"}
}

func (p *Logout) Render(ctx context.Context, pc *Context) (string, error) {
	if token := session.TokenFromRequest(pc.Request); token != "" {
		p.sessions.Delete(ctx, token)
		log.Trace("session deleted on logout")
	}

	pc.Response.SetCookie(session.ClearedCookie())
	if p.metrics != nil {
		p.metrics.CounterLogouts.Inc()
	}

	return msgLoggedOut, nil
}
