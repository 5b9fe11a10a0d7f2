package db

import "errors"

var (
	ErrMissingURL        = errors.New("db: DATABASE_URL is not set")
	ErrInvalidURL        = errors.New("db: invalid connection string")
	ErrUnreachable       = errors.New("db: database is unreachable")
	ErrHealthcheckFailed = errors.New("db: healthcheck failed")
	ErrMigrate           = errors.New("db: migration failed")
)
