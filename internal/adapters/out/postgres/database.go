package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"

	"github.com/lib/pq"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectionSettings describes how to reach the postgres server.
type ConnectionSettings struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN renders the settings as a connection URL for the given database.
func (s ConnectionSettings) DSN(dbName string) string {
	sslMode := s.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(s.User, s.Password),
		Host:     s.Host + ":" + s.Port,
		Path:     "/" + dbName,
		RawQuery: url.Values{"sslmode": []string{sslMode}}.Encode(),
	}
	return u.String()
}

// EnsureDatabase connects to the server's maintenance database and creates
// s.DBName when it is missing.
func EnsureDatabase(ctx context.Context, s ConnectionSettings) error {
	if s.DBName == "" {
		return errors.New("database name is required")
	}

	db, err := sql.Open("postgres", s.DSN("postgres"))
	if err != nil {
		return fmt.Errorf("open maintenance database: %w", err)
	}
	defer db.Close()

	var exists bool
	err = db.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)", s.DBName,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check database %q: %w", s.DBName, err)
	}
	if exists {
		return nil
	}

	if _, err = db.ExecContext(ctx, "CREATE DATABASE "+pq.QuoteIdentifier(s.DBName)); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "42P04" {
			return nil
		}
		return fmt.Errorf("create database %q: %w", s.DBName, err)
	}

	return nil
}

// Open ensures the database exists, connects gorm to it and migrates the schema.
func Open(ctx context.Context, s ConnectionSettings) (*gorm.DB, error) {
	if err := EnsureDatabase(ctx, s); err != nil {
		return nil, err
	}

	db, err := gorm.Open(postgresdriver.Open(s.DSN(s.DBName)), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect to %q: %w", s.DBName, err)
	}

	if err = Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}
