package domain

import "context"

// Testimonial is one panel in the carousel rotation. The sequence is fixed at
// startup and never mutated while the rotator runs.
type Testimonial struct {
	Quote  string `db:"quote"`
	Author string `db:"author"`
	Origin string `db:"origin"`
}

// SlideFrame is one rotation update pushed to connected pages.
type SlideFrame struct {
	Index int `json:"index"`
	Total int `json:"total"`
}

// TestimonialSource loads the fixed panel sequence at startup.
type TestimonialSource interface {
	ListTestimonials(ctx context.Context) ([]Testimonial, error)
}

// SlidePublisher receives slide transitions as they happen.
type SlidePublisher interface {
	PublishSlide(frame SlideFrame)
}
