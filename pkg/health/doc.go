// Package health provides liveness and readiness HTTP handlers.
//
// Readiness runs named checks in parallel under a shared timeout:
//
//	var gate health.Gate
//	mux.Handle("/health/ready", health.ReadinessHandler(health.Checks{
//		"translations": gate.Check,
//		"postgres":     db.Healthcheck(pool),
//	}))
//
// Responses are plain text unless the client asks for JSON with
// "?format=json" or an Accept header containing "application/json".
package health
