package page

import (
	"context"
	"errors"

	"github.com/2beens/plainsite/internal/session"
	"github.com/2beens/plainsite/internal/telemetry/metrics"
	"github.com/2beens/plainsite/internal/telemetry/tracing"
	"github.com/2beens/plainsite/internal/users"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var _ Page = (*Login)(nil)

type Login struct {
	users    userStore
	hasher   passwordHasher
	sessions session.Registry
	metrics  *metrics.Manager
}

func NewLogin(
	users userStore,
	hasher passwordHasher,
	sessions session.Registry,
	metrics *metrics.Manager,
) *Login {
	return &Login{
		users:    users,
		hasher:   hasher,
		sessions: sessions,
		metrics:  metrics,
	}
}

func (p *Login) Meta() Meta {
	return Meta{Title: "Login"}
}

func (p *Login) Render(ctx context.Context, pc *Context) (string, error) {
	if !pc.IsPost() {
		return credentialsForm("Login", "/login", "Login"), nil
	}

	ctx, span := tracing.GlobalTracer.Start(ctx, "page.login")
	defer span.End()

	params := FormParams(pc.Request)
	name, password := params.Get("name"), params.Get("password")
	if name == "" || password == "" {
		p.countLogin(metrics.ResultFailed)
		span.SetStatus(codes.Error, "empty-credentials")
		return msgLoginFailed, nil
	}

	user, err := p.users.FindByName(ctx, name)
	if errors.Is(err, users.ErrUserNotFound) {
		log.Tracef("[username] failed login attempt for user: %s", name)
		p.countLogin(metrics.ResultFailed)
		span.SetStatus(codes.Error, "login-failed")
		return msgLoginFailed, nil
	}
	if err != nil {
		log.Errorf("login, find user [%s]: %s", name, err)
		p.countLogin(metrics.ResultError)
		span.SetStatus(codes.Error, "find-user-failed")
		span.RecordError(err)
		return msgServerError, nil
	}

	if !p.hasher.Verify(password, user.PasswordHash) {
		log.Tracef("[password] failed login attempt for user: %s", name)
		p.countLogin(metrics.ResultFailed)
		span.SetStatus(codes.Error, "login-failed")
		return msgLoginFailed, nil
	}

	token, err := p.sessions.Create(ctx, user.Name)
	if err != nil {
		log.Errorf("login failed, create session for [%s]: %s", name, err)
		p.countLogin(metrics.ResultError)
		span.SetStatus(codes.Error, "create-session-failed")
		span.RecordError(err)
		return msgServerError, nil
	}

	pc.Response.SetCookie(session.NewCookie(token))
	p.countLogin(metrics.ResultSuccess)
	span.SetAttributes(attribute.String("user.name", user.Name))
	span.SetStatus(codes.Ok, "ok")

	log.Tracef("new login success: %s", user.Name)
	return msgLoginSuccessful, nil
}

func (p *Login) countLogin(result string) {
	if p.metrics != nil {
		p.metrics.CounterLogins.WithLabelValues(result).Inc()
	}
}
