package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"pet-api/internal/adapters/cache/rediscache"
	mem "pet-api/internal/adapters/storage/memory"
	"pet-api/internal/adapters/storage/sqlstore"
	"pet-api/internal/config"
	"pet-api/internal/domain/pets"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisPingTimeout = 2 * time.Second

// openSQL abre la base del driver configurado y, si corresponde, corre las migraciones.
func openSQL(ctx context.Context, cfg config.StoreConfig, log *zap.Logger, migrate bool) (*sql.DB, sqlstore.Dialect, error) {
	d, err := sqlstore.DialectFor(cfg.Driver)
	if err != nil {
		return nil, sqlstore.Dialect{}, err
	}

	db, err := sqlstore.Open(ctx, d, cfg.DSN)
	if err != nil {
		return nil, sqlstore.Dialect{}, err
	}

	if migrate {
		applied, err := sqlstore.Migrate(ctx, db, d, log)
		if err != nil {
			_ = db.Close()
			return nil, sqlstore.Dialect{}, err
		}
		log.Info("migrations done", zap.String("driver", d.Name), zap.Strings("applied", applied))
	}

	return db, d, nil
}

// openPetRepo arma el pets.Repository según la config: memory o SQL, con cache redis opcional.
// closeFn libera lo que se haya abierto.
func openPetRepo(ctx context.Context, cfg *config.Config, log *zap.Logger) (repo pets.Repository, closeFn func(), err error) {
	var closers []func()
	closeFn = func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	if cfg.Store.Driver == "memory" {
		log.Warn("using in-memory store, data is lost on restart")
		repo = mem.NewPetRepo()
	} else {
		db, d, err := openSQL(ctx, cfg.Store, log, cfg.Store.Migrate)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, func() { _ = db.Close() })
		repo = sqlstore.NewPetsRepo(db, d)
		log.Info("store opened", zap.String("driver", d.Name))
	}

	if cfg.Cache.RedisAddr == "" {
		return repo, closeFn, nil
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.Cache.RedisAddr})
	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		closeFn()
		return nil, nil, fmt.Errorf("redis ping %s: %w", cfg.Cache.RedisAddr, err)
	}
	closers = append(closers, func() { _ = client.Close() })

	log.Info("redis cache enabled", zap.String("addr", cfg.Cache.RedisAddr), zap.Duration("ttl", cfg.Cache.TTL))
	return rediscache.NewPetsRepo(repo, client, cfg.Cache.TTL, log), closeFn, nil
}
