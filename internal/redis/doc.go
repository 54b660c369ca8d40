// Package redis wraps the go-redis client used for signup debouncing.
//
// All commands run through a circuit breaker hook so a dead Redis degrades
// the newsletter form instead of hanging it. The debounce path itself is
// fail-open: callers treat breaker errors as "allowed".
package redis
