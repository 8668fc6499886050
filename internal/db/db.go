// internal/db/db.go
package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/unclebandit/campaign-admin/internal/config"
)

//go:embed migrations
var migrationsFS embed.FS

// Open connects to the configured database, pings it and applies pending
// migrations. The caller owns the handle and must Close it.
func Open(cfg config.DatabaseConfig) (*sql.DB, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return OpenSQLite(cfg.Path)
	case config.DriverPostgres:
		return OpenPostgres(cfg.PostgresDSN(), cfg.MaxOpenConns)
	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.Driver)
	}
}

// OpenSQLite opens the file at path with foreign keys enforced so that
// deletes cascade.
func OpenSQLite(dbPath string) (*sql.DB, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	dsn := "file:" + filepath.Clean(dbPath) +
		"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_time_format=sqlite"
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// one writer; pragmas are per connection
	conn.SetMaxOpenConns(1)

	if err := prepare(conn, config.DriverSQLite); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return conn, nil
}

func OpenPostgres(dsn string, maxOpenConns int) (*sql.DB, error) {
	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres db: %w", err)
	}
	if maxOpenConns > 0 {
		conn.SetMaxOpenConns(maxOpenConns)
		conn.SetMaxIdleConns(maxOpenConns)
	}
	conn.SetConnMaxLifetime(30 * time.Minute)

	if err := prepare(conn, config.DriverPostgres); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return conn, nil
}

func prepare(conn *sql.DB, driver string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := conn.PingContext(ctx); err != nil {
		return fmt.Errorf("ping %s db: %w", driver, err)
	}
	if err := Migrate(ctx, conn, driver); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// Migrate applies every embedded migration for driver that is not yet
// recorded in schema_migrations, in file name order.
func Migrate(ctx context.Context, conn *sql.DB, driver string) error {
	dir := path.Join("migrations", driver)
	entries, err := fs.ReadDir(migrationsFS, dir)
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	if _, err := conn.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			name TEXT PRIMARY KEY,
			applied_at TIMESTAMP NOT NULL
		)`); err != nil {
		return fmt.Errorf("ensure migration table: %w", err)
	}

	for _, name := range files {
		var n int
		if err := conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM schema_migrations WHERE name = $1`, name).Scan(&n); err != nil {
			return fmt.Errorf("check migration %s: %w", name, err)
		}
		if n > 0 {
			continue
		}

		content, err := fs.ReadFile(migrationsFS, path.Join(dir, name))
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if err := applyMigration(ctx, conn, name, string(content)); err != nil {
			return err
		}
	}
	return nil
}

func applyMigration(ctx context.Context, conn *sql.DB, name, content string) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration %s: %w", name, err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range splitStatements(content) {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO schema_migrations (name, applied_at) VALUES ($1, $2)`,
		name, time.Now().UTC(),
	); err != nil {
		return fmt.Errorf("record migration %s: %w", name, err)
	}
	return tx.Commit()
}

// splitStatements cuts a migration file on ";". Migrations here contain no
// literals with semicolons.
func splitStatements(content string) []string {
	var out []string
	for _, part := range strings.Split(content, ";") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}
