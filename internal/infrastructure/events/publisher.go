package events

import (
	"context"
	"time"
)

// Subjects published by the application services.
const (
	SubjectUserDeleted = "user.deleted"
	SubjectTaskCreated = "task.created"
	SubjectTaskUpdated = "task.updated"
	SubjectTaskDeleted = "task.deleted"
)

// Event is the JSON envelope sent on every subject.
type Event struct {
	Subject    string    `json:"subject"`
	ID         string    `json:"id"`
	OccurredAt time.Time `json:"occurredAt"`
	Data       any       `json:"data,omitempty"`
}

type Publisher interface {
	Publish(ctx context.Context, subject, id string, data any) error
	Close()
}

// NoopPublisher drops every event. It is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, string, any) error { return nil }

func (NoopPublisher) Close() {}
