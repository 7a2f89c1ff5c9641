package sqlstore

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
)

//go:embed migrations/*/*.sql
var migrationsFS embed.FS

const createSchemaMigrations = `
CREATE TABLE IF NOT EXISTS schema_migrations (
    version    VARCHAR(64) NOT NULL PRIMARY KEY,
    applied_at TIMESTAMP   NOT NULL
)`

// Migration es un archivo NNNN_nombre.sql; Version es el nombre sin extensión.
type Migration struct {
	Version    string
	Statements []string
}

// Migrations devuelve las migraciones embebidas del dialecto, ordenadas por versión.
func Migrations(d Dialect) ([]Migration, error) {
	dir := path.Join("migrations", d.Name)
	entries, err := fs.ReadDir(migrationsFS, dir)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: read migrations for %s: %w", d.Name, err)
	}

	out := make([]Migration, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		raw, err := fs.ReadFile(migrationsFS, path.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("sqlstore: read %s: %w", e.Name(), err)
		}
		out = append(out, Migration{
			Version:    strings.TrimSuffix(e.Name(), ".sql"),
			Statements: splitStatements(string(raw)),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Version < out[j].Version })
	return out, nil
}

// Migrate aplica en orden las migraciones pendientes y devuelve las versiones aplicadas.
// Se corre en cada arranque; las ya registradas en schema_migrations se saltean.
func Migrate(ctx context.Context, db *sql.DB, d Dialect, log *zap.Logger) ([]string, error) {
	if log == nil {
		log = zap.NewNop()
	}

	if _, err := db.ExecContext(ctx, createSchemaMigrations); err != nil {
		return nil, fmt.Errorf("sqlstore: create schema_migrations: %w", err)
	}

	done, err := appliedVersions(ctx, db)
	if err != nil {
		return nil, err
	}

	migrations, err := Migrations(d)
	if err != nil {
		return nil, err
	}

	applied := make([]string, 0)
	for _, m := range migrations {
		if _, ok := done[m.Version]; ok {
			continue
		}
		if err := apply(ctx, db, d, m); err != nil {
			return applied, err
		}
		log.Info("migration applied",
			zap.String("dialect", d.Name),
			zap.String("version", m.Version),
		)
		applied = append(applied, m.Version)
	}

	if len(applied) == 0 {
		log.Debug("schema up to date", zap.String("dialect", d.Name))
	}
	return applied, nil
}

func appliedVersions(ctx context.Context, db *sql.DB) (map[string]struct{}, error) {
	rows, err := db.QueryContext(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: read schema_migrations: %w", err)
	}
	defer rows.Close()

	out := map[string]struct{}{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("sqlstore: scan schema_migrations: %w", err)
		}
		out[v] = struct{}{}
	}
	return out, rows.Err()
}

func apply(ctx context.Context, db *sql.DB, d Dialect, m Migration) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlstore: begin migration %s: %w", m.Version, err)
	}
	defer tx.Rollback()

	for _, stmt := range m.Statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("sqlstore: migration %s: %w", m.Version, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		d.Rebind(`INSERT INTO schema_migrations (version, applied_at) VALUES (?, ?)`),
		m.Version, time.Now().UTC(),
	); err != nil {
		return fmt.Errorf("sqlstore: record migration %s: %w", m.Version, err)
	}

	return tx.Commit()
}

// splitStatements separa por ";" al final de línea.
// mysql sin multiStatements rechaza varias sentencias en un mismo Exec.
func splitStatements(src string) []string {
	var (
		out []string
		cur strings.Builder
	)
	for _, line := range strings.Split(src, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		cur.WriteString(line)
		cur.WriteByte('\n')
		if strings.HasSuffix(trimmed, ";") {
			stmt := strings.TrimSuffix(strings.TrimSpace(cur.String()), ";")
			out = append(out, stmt)
			cur.Reset()
		}
	}
	if rest := strings.TrimSpace(cur.String()); rest != "" {
		out = append(out, rest)
	}
	return out
}
