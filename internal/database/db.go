// Package database opens the MySQL store of imported vocabulary entries.
package database

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/tango/internal/config"
	"github.com/at-ishikawa/tango/schemas"
)

// Open opens a MySQL connection using the provided config.
// Text columns hold Japanese and Chinese, so the connection always uses utf8mb4.
func Open(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	mysqlCfg := mysql.NewConfig()
	mysqlCfg.User = cfg.Username
	mysqlCfg.Passwd = cfg.Password
	mysqlCfg.Net = "tcp"
	mysqlCfg.Addr = fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	mysqlCfg.DBName = cfg.Database
	mysqlCfg.ParseTime = true
	mysqlCfg.MultiStatements = true
	mysqlCfg.Collation = "utf8mb4_bin"
	if cfg.TLS {
		mysqlCfg.TLSConfig = "true"
	}
	if len(cfg.Params) > 0 {
		mysqlCfg.Params = cfg.Params
	}

	db, err := sqlx.Open("mysql", mysqlCfg.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("sqlx.Open() > %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)
	}

	return db, nil
}

// Migrate applies every embedded migration in file name order.
// Migrations are written to be idempotent, so they are applied on every call.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	return migrate(ctx, db, schemas.Migrations)
}

func migrate(ctx context.Context, db *sqlx.DB, migrations fs.FS) error {
	names, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("fs.Glob > %w", err)
	}
	sort.Strings(names)

	for _, name := range names {
		statement, err := fs.ReadFile(migrations, name)
		if err != nil {
			return fmt.Errorf("fs.ReadFile(%s) > %w", name, err)
		}
		if _, err := db.ExecContext(ctx, string(statement)); err != nil {
			return fmt.Errorf("db.ExecContext(%s) > %w", name, err)
		}
	}
	return nil
}
