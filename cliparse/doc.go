// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	_ = cliparse.LoadEnvFile(".env")
	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: connection string (default: formula-zero.db for SQLite, required for PostgreSQL)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - SeasonFile: YAML season used to seed an empty database (default: embedded season)
  - AdminPassword: plaintext admin password (default: admin123)
  - AdminPasswordHash: bcrypt hash, replaces AdminPassword when set
  - JWTSecret: token signing secret (default: random per process)
  - TokenTTL: admin token lifetime (default: 12h)
  - Debug: debug logging

# CLI Flags

	-p               Server port
	-d               Database URL
	-t               Database type
	-season          Season YAML file
	-admin-password  Admin password
	-admin-hash      Admin password bcrypt hash
	-jwt-secret      Token signing secret
	-token-ttl       Token lifetime (Go duration)
	-debug           Debug logging

# Environment Variables

Flags fall back to environment variables:

	PORT, DATABASE_URL, DATABASE_TYPE, SEASON_FILE, ADMIN_PASSWORD,
	ADMIN_PASSWORD_HASH, JWT_SECRET, TOKEN_TTL, LOG_LEVEL=debug

LoadEnvFile fills the environment from a .env file first. Real environment
variables win over the file, and CLI flags win over both.
*/
package cliparse
