// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/mergington-activities/cliparse"
)

// Connection pool configuration for postgres
const (
	maxOpenConns    = 25
	maxIdleConns    = 5
	connMaxLifetime = time.Hour
)

// Open connects to the configured database and verifies the connection.
func Open(cfg cliparse.Config) (*sql.DB, error) {
	driver := cfg.DatabaseType
	if driver == "" {
		driver = cliparse.DatabaseSQLite
	}
	if driver != cliparse.DatabaseSQLite && driver != cliparse.DatabasePostgres {
		return nil, fmt.Errorf("unsupported database type %q", driver)
	}

	dsn := cfg.DatabaseURL
	if driver == cliparse.DatabaseSQLite {
		dsn = sqliteDSN(dsn)
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}

	if driver == cliparse.DatabaseSQLite {
		// One connection keeps writes serialized
		conn.SetMaxOpenConns(1)
	} else {
		conn.SetMaxOpenConns(maxOpenConns)
		conn.SetMaxIdleConns(maxIdleConns)
		conn.SetConnMaxLifetime(connMaxLifetime)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return conn, nil
}

// sqliteDSN adds the foreign_keys pragma to a sqlite URL. The driver applies
// DSN pragmas to every connection it opens, including replacements.
func sqliteDSN(url string) string {
	const pragma = "_pragma=foreign_keys(1)"
	if strings.Contains(url, pragma) {
		return url
	}
	if strings.Contains(url, "?") {
		return url + "&" + pragma
	}
	return url + "?" + pragma
}
