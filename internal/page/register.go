package page

import (
	"context"

	"github.com/2beens/plainsite/internal/session"
	"github.com/2beens/plainsite/internal/telemetry/metrics"
	"github.com/2beens/plainsite/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

var _ Page = (*Register)(nil)

type Register struct {
	users    userStore
	hasher   passwordHasher
	sessions session.Registry
	metrics  *metrics.Manager
}

func NewRegister(
	users userStore,
	hasher passwordHasher,
	sessions session.Registry,
	metrics *metrics.Manager,
) *Register {
	return &Register{
		users:    users,
		hasher:   hasher,
		sessions: sessions,
		metrics:  metrics,
	}
}

func (p *Register) Meta() Meta {
	return Meta{Title: "Register"}
}

func (p *Register) Render(ctx context.Context, pc *Context) (string, error) {
	if !pc.IsPost() {
		return credentialsForm("Register", "/register", "Register"), nil
	}

	ctx, span := tracing.GlobalTracer.Start(ctx, "page.register")
	defer span.End()

	params := FormParams(pc.Request)
	name, password := params.Get("name"), params.Get("password")
	if name == "" || password == "" {
		p.countRegistration(metrics.ResultFailed)
		span.SetStatus(codes.Error, "empty-credentials")
		return msgCredentialsRequired, nil
	}

	passwordHash, err := p.hasher.Hash(password)
	if err != nil {
		log.Errorf("register [%s], hash password: %s", name, err)
		p.countRegistration(metrics.ResultError)
		span.SetStatus(codes.Error, "hash-failed")
		span.RecordError(err)
		return msgServerError, nil
	}

	created, err := p.users.Insert(ctx, name, passwordHash)
	if err != nil {
		log.Errorf("register [%s], insert user: %s", name, err)
		p.countRegistration(metrics.ResultError)
		span.SetStatus(codes.Error, "insert-failed")
		span.RecordError(err)
		return msgServerError, nil
	}
	if !created {
		log.Tracef("register, username taken: %s", name)
		p.countRegistration(metrics.ResultConflict)
		span.SetStatus(codes.Error, "username-taken")
		return msgUsernameTaken, nil
	}

	token, err := p.sessions.Create(ctx, name)
	if err != nil {
		// the account exists, only the automatic login failed
		log.Errorf("register [%s], create session: %s", name, err)
		p.countRegistration(metrics.ResultError)
		span.SetStatus(codes.Error, "create-session-failed")
		span.RecordError(err)
		return msgServerError, nil
	}

	pc.Response.SetCookie(session.NewCookie(token))
	p.countRegistration(metrics.ResultSuccess)
	span.SetStatus(codes.Ok, "ok")

	log.Debugf("new user registered: %s", name)
	return msgRegistrationSuccessful, nil
}

func (p *Register) countRegistration(result string) {
	if p.metrics != nil {
		p.metrics.CounterRegistrations.WithLabelValues(result).Inc()
	}
}
