// Package config manages application configuration for the Source API.
//
// Configuration comes from environment variables. A .env file in the working
// directory is read first when present; variables already set in the process
// environment take precedence over it.
//
//	cfg, err := config.Load()
//	if err != nil { ... }
//	if err := cfg.Validate(); err != nil { ... }
//
// # Configuration Groups
//
//   - ServerConfig: HTTP port, timeouts, CORS origins, log level
//   - DatabaseConfig: SurrealDB connection settings and schema location
//   - QueryConfig: default/maximum page size and strict sort-key checking
//
// # Environment Variables
//
//	SERVER_PORT          - HTTP server port (default: 8080)
//	SERVER_ENV           - development, production or test
//	LOG_LEVEL            - debug, info, warn, error
//	DB_HOST / DB_PORT    - SurrealDB address
//	DB_NAMESPACE         - SurrealDB namespace
//	DB_DATABASE          - SurrealDB database
//	DB_SCHEMA_PATH       - directory of .surql schema files applied at startup
//	QUERY_DEFAULT_LIMIT  - page size when limit is absent (default: 100)
//	QUERY_MAX_LIMIT      - upper bound on limit (default: 100)
//	QUERY_STRICT_SORT    - reject unknown sortBy keys instead of ignoring them
package config
