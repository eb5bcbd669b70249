package sqlite

import (
	"context"
	"fmt"
	"io/fs"
	"net/url"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"github.com/pressly/goose/v3/database"
	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

const DriverName = "sqlite"

type Config struct {
	Path string `yaml:"path" envconfig:"SQLITE_PATH" default:"catalog.db"`
}

// DSN turns on foreign keys for every pooled connection; sqlite leaves them off by default.
func (cfg Config) DSN() string {
	q := url.Values{}
	q.Add("_pragma", "foreign_keys(1)")
	q.Add("_pragma", "busy_timeout(5000)")
	q.Add("_pragma", "journal_mode(WAL)")
	return "file:" + cfg.Path + "?" + q.Encode()
}

func NewSQLiteDB(ctx context.Context, cfg Config, migrations fs.FS) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, DriverName, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("sqlx.Connect: %w", err)
	}
	if migrations != nil {
		if err := Migrate(ctx, db, migrations); err != nil {
			db.Close()
			return nil, err
		}
	}
	// single writer: transactions never interleave
	db.SetMaxOpenConns(1)
	return db, nil
}

func Migrate(ctx context.Context, db *sqlx.DB, migrations fs.FS) error {
	provider, err := goose.NewProvider(database.DialectSQLite3, db.DB, migrations)
	if err != nil {
		return fmt.Errorf("goose.NewProvider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
