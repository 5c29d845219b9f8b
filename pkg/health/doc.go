// Package health serves liveness and readiness probes.
//
// Liveness always answers 200. Readiness runs every registered [CheckFunc]
// concurrently under a shared timeout and answers 503 when any fails. Both
// respond with a JSON [Response].
package health
