package domain

import "errors"

var (
	ErrAlreadySubscribed = errors.New("address already subscribed")
	ErrNoPanels          = errors.New("testimonial sequence is empty")
)
