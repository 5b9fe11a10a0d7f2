package redis

import "errors"

var (
	ErrMissingURL        = errors.New("redis: REDIS_URL is not set")
	ErrInvalidURL        = errors.New("redis: URL must use the redis:// or rediss:// scheme")
	ErrUnreachable       = errors.New("redis: server did not answer PING")
	ErrHealthcheckFailed = errors.New("redis: healthcheck failed")
)
