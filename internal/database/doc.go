// Package database provides the Postgres connection pool, schema migrations,
// and the repositories for subscribers and testimonials.
package database
