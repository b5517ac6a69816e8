package cliparse

import (
	"errors"
	"flag"
	"io"
	"os"
	"strconv"
)

const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"

	defaultSQLiteURL    = "file:mergington.db"
	defaultSchoolDomain = "mergington.edu"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	SchoolDomain string
	StaffKeySalt string
}

// ParseFlags validates flags and sets port number. Usage and parse errors
// go to output (os.Stderr when nil); -h returns flag.ErrHelp.
func ParseFlags(args []string, output io.Writer) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("mergington serve", flag.ContinueOnError)
	if output == nil {
		output = os.Stderr
	}
	fs.SetOutput(output)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.SchoolDomain, "domain", "", "Email domain students sign up with")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.StaffKeySalt, "staff-salt", "", "Staff key salt (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabaseSQLite
		}
	}
	if cfg.DatabaseType != DatabaseSQLite && cfg.DatabaseType != DatabasePostgres {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == DatabasePostgres {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = defaultSQLiteURL
	}

	if cfg.SchoolDomain == "" {
		cfg.SchoolDomain = os.Getenv("SCHOOL_DOMAIN")
		if cfg.SchoolDomain == "" {
			cfg.SchoolDomain = defaultSchoolDomain
		}
	}

	// Optional: without a salt, staff operations are disabled
	if cfg.StaffKeySalt == "" {
		cfg.StaffKeySalt = os.Getenv("STAFF_KEY_SALT")
	}

	return cfg, nil
}
