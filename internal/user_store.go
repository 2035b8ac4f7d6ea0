package internal

import (
	"context"
	"fmt"
	"net"

	"github.com/2beens/plainsite/internal/config"
	"github.com/2beens/plainsite/internal/db"
	"github.com/2beens/plainsite/internal/users"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

// UserStoreBackend is the configured user store plus the connections it owns.
type UserStoreBackend struct {
	Store       users.Store
	DBPool      *pgxpool.Pool
	RedisClient *redis.Client
	// Collectors expose backend internals (e.g. pool stats) to prometheus
	Collectors []prometheus.Collector
}

type OpenUserStoreParams struct {
	Config           *config.Config
	PostgresPassword string
	RedisPassword    string
	TracingEnabled   bool
}

func OpenUserStore(ctx context.Context, params OpenUserStoreParams) (*UserStoreBackend, error) {
	cfg := params.Config
	backend := &UserStoreBackend{}

	switch cfg.UserStore {
	case config.UserStorePostgres:
		dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
			DBHost:         cfg.PostgresHost,
			DBPort:         cfg.PostgresPort,
			DBName:         cfg.PostgresDBName,
			DBUser:         cfg.PostgresUser,
			DBPassword:     params.PostgresPassword,
			TracingEnabled: params.TracingEnabled,
		})
		if err != nil {
			return nil, fmt.Errorf("new db pool: %w", err)
		}
		if err := dbPool.Ping(ctx); err != nil {
			log.Warnf("failed to ping db: %s", err)
		}

		psqlStore := users.NewPsqlStore(dbPool)
		if err := psqlStore.EnsureSchema(ctx); err != nil {
			log.Errorf("ensure users schema: %s", err)
		}

		backend.DBPool = dbPool
		backend.Store = psqlStore
		backend.Collectors = append(backend.Collectors, pgxpoolprometheus.NewCollector(
			dbPool,
			map[string]string{"db_name": cfg.PostgresDBName},
		))
	case config.UserStoreRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
			Password: params.RedisPassword,
			DB:       0, // use default DB
		})
		if params.TracingEnabled {
			rdb.AddHook(redisotel.NewTracingHook())
		}

		rdbStatus := rdb.Ping(ctx)
		if err := rdbStatus.Err(); err != nil {
			log.Errorf("--> failed to ping redis: %s", err)
		} else {
			log.Debugf("redis ping: %s", rdbStatus.Val())
		}

		backend.RedisClient = rdb
		backend.Store = users.NewRedisStore(rdb)
	case config.UserStoreMemory, "":
		log.Warnln("using in-memory user store, registered users are lost on restart")
		backend.Store = users.NewMemoryStore()
	default:
		return nil, fmt.Errorf("unknown user store: %s", cfg.UserStore)
	}

	return backend, nil
}

func (b *UserStoreBackend) Close() {
	if b.RedisClient != nil {
		if err := b.RedisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if b.DBPool != nil {
		log.Debugln("closing db pool ...")
		b.DBPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}
}
