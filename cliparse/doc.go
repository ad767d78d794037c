// Copyright (c) 2026 The lunchvote Authors. MIT License; see LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8000)
  - DatabaseType: "sqlite" (default) or "postgres"
  - DatabaseURL: connection string; defaults to file:lunchvote.db for
    sqlite, required for postgres
  - TokenSalt: secret for hashing auth tokens at rest (required)

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	--token-salt  Auth token salt

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	TOKEN_SALT    → --token-salt

CLI flags take precedence over environment variables. main loads a
.env file via godotenv before parsing, so a local .env works for all
of the above.
*/
package cliparse
