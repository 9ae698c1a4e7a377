package repositories

import (
	"context"

	"task-service/internal/domain/entities"
)

// TaskFilter narrows Find and Count. Zero fields match everything.
type TaskFilter struct {
	AssignedTo string
	Status     entities.TaskStatus

	// Limit caps the rows Find returns, newest first. Count ignores it.
	Limit int
}

type TaskRepository interface {
	Create(ctx context.Context, task *entities.Task) (*entities.Task, error)
	FindById(ctx context.Context, id string) (*entities.Task, error)
	Find(ctx context.Context, filter TaskFilter) ([]*entities.Task, error)
	Count(ctx context.Context, filter TaskFilter) (int64, error)
	Update(ctx context.Context, task *entities.Task) (*entities.Task, error)
	Delete(ctx context.Context, id string) error
}
