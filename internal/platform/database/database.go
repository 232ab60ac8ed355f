package database

import (
	"blogapi/internal/platform/config"
	"database/sql"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
)

// Connect opens the configured database and wraps it in a bun.DB.
// Postgres is the production driver; sqlite serves local development.
func Connect(cfg *config.Config) (*bun.DB, error) {
	var db *bun.DB

	switch cfg.DBDriver {
	case "sqlite":
		sqldb, err := sql.Open(sqliteshim.ShimName, "file:"+cfg.SQLitePath+"?_pragma=foreign_keys(1)")
		if err != nil {
			return nil, fmt.Errorf("opening sqlite database: %w", err)
		}
		sqldb.SetMaxOpenConns(1)
		db = bun.NewDB(sqldb, sqlitedialect.New())
	default:
		sqldb, err := sql.Open("pgx", cfg.DBConnStr)
		if err != nil {
			return nil, fmt.Errorf("opening postgres database: %w", err)
		}
		sqldb.SetMaxOpenConns(25)
		sqldb.SetMaxIdleConns(25)
		sqldb.SetConnMaxLifetime(5 * time.Minute)
		db = bun.NewDB(sqldb, pgdialect.New())
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	return db, nil
}
