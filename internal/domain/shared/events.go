// Package shared holds domain building blocks used by every aggregate.
package shared

import "time"

// DomainEvent represents an event that has occurred in the domain.
type DomainEvent interface {
	EventName() string
	OccurredAt() time.Time
}

// EventHandler handles domain events.
type EventHandler func(event DomainEvent) error

// EventDispatcher dispatches domain events to registered handlers.
type EventDispatcher interface {
	Dispatch(event DomainEvent) error
	Register(eventName string, handler EventHandler)
}
