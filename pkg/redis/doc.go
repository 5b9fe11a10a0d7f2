// Package redis opens and supervises the go-redis client backing the
// shared bundle cache: configuration from the environment, connection
// retries, a readiness check and a shutdown hook.
package redis
