// Package domain defines the core domain types and interfaces.
//
// Concept-oriented files (errors.go, subscriber.go, slides.go) hold shared
// types and cross-cutting interfaces. No implementation code - just contracts.
// Keeping interfaces here prevents circular imports between the adapters.
package domain
