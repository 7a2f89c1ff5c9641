package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Open abre un pool database/sql para el dialecto y hace ping.
func Open(ctx context.Context, d Dialect, dsn string) (*sql.DB, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("sqlstore: empty dsn for %s", d.Name)
	}

	db, err := openDialect(d, dsn)
	if err != nil {
		return nil, err
	}

	// defaults razonables (ajustables luego)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	// :memory: es una base distinta por conexión
	if d == SQLite && isSQLiteMemory(dsn) {
		db.SetMaxOpenConns(1)
		db.SetConnMaxIdleTime(0)
		db.SetConnMaxLifetime(0)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlstore: ping %s: %w", d.Name, err)
	}

	return db, nil
}

func openDialect(d Dialect, dsn string) (*sql.DB, error) {
	switch d {
	case Postgres:
		cfg, err := pgx.ParseConfig(dsn)
		if err != nil {
			return nil, fmt.Errorf("sqlstore: parse postgres dsn: %w", err)
		}
		return stdlib.OpenDB(*cfg), nil

	case MySQL:
		cfg, err := mysql.ParseDSN(dsn)
		if err != nil {
			return nil, fmt.Errorf("sqlstore: parse mysql dsn: %w", err)
		}
		// RowsAffected tiene que contar filas encontradas, no solo las modificadas:
		// Update usa 0 filas como "no existe".
		cfg.ClientFoundRows = true
		connector, err := mysql.NewConnector(cfg)
		if err != nil {
			return nil, fmt.Errorf("sqlstore: mysql connector: %w", err)
		}
		return sql.OpenDB(connector), nil

	case SQLite:
		db, err := sql.Open(d.DriverName, sqliteDSN(dsn))
		if err != nil {
			return nil, fmt.Errorf("sqlstore: open sqlite: %w", err)
		}
		return db, nil

	default:
		return nil, fmt.Errorf("sqlstore: unsupported dialect %q", d.Name)
	}
}

// sqliteDSN agrega los pragmas por conexión si el dsn no trae ninguno.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_pragma=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
}

func isSQLiteMemory(dsn string) bool {
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}
