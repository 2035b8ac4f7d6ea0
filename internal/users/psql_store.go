package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/plainsite/internal/telemetry/tracing"
	"github.com/2beens/plainsite/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var _ Store = (*PsqlStore)(nil)

const createUsersTableSQL = `
CREATE TABLE IF NOT EXISTS app_user (
	id            SERIAL PRIMARY KEY,
	name          TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`

type PsqlStore struct {
	db *pgxpool.Pool
}

func NewPsqlStore(db *pgxpool.Pool) *PsqlStore {
	return &PsqlStore{
		db: db,
	}
}

func (s *PsqlStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, createUsersTableSQL); err != nil {
		return fmt.Errorf("create app_user table: %w", err)
	}
	return nil
}

func (s *PsqlStore) FindByName(ctx context.Context, name string) (*User, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "usersRepo.findByName")
	defer span.End()

	var user User
	err := s.db.QueryRow(
		ctx,
		`SELECT name, password_hash, created_at FROM app_user WHERE name = $1;`,
		name,
	).Scan(&user.Name, &user.PasswordHash, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		span.SetAttributes(attribute.Bool("user.found", false))
		return nil, ErrUserNotFound
	}
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.Bool("user.found", true))
	return &user, nil
}

func (s *PsqlStore) Insert(ctx context.Context, name, passwordHash string) (bool, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "usersRepo.insert")
	defer span.End()

	_, err := s.db.Exec(
		ctx,
		`INSERT INTO app_user (name, password_hash, created_at) VALUES ($1, $2, $3);`,
		name, passwordHash, time.Now(),
	)
	if pkg.IsUniqueViolationError(err) {
		log.Tracef("user [%s] already exists", name)
		span.SetAttributes(attribute.Bool("user.taken", true))
		return false, nil
	}
	if err != nil {
		span.RecordError(err)
		return false, err
	}

	return true, nil
}
