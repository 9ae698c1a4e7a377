package interfaces

import (
	"context"

	"task-service/internal/application/command"
	"task-service/internal/application/query"
	"task-service/internal/domain/entities"
)

// TaskService operations take the resolved caller. Members only see and
// change tasks assigned to them.
type TaskService interface {
	CreateTask(ctx context.Context, caller *entities.User, createCommand *command.CreateTaskCommand) (*command.TaskCommandResult, error)
	GetTask(ctx context.Context, caller *entities.User, id string) (*query.TaskQueryResult, error)
	ListTasks(ctx context.Context, caller *entities.User, listQuery query.TaskListQuery) (*query.TaskQueryListResult, error)
	Dashboard(ctx context.Context, caller *entities.User) (*query.DashboardQueryResult, error)
	UpdateStatus(ctx context.Context, caller *entities.User, statusCommand *command.UpdateTaskStatusCommand) (*command.TaskCommandResult, error)
	UpdateChecklist(ctx context.Context, caller *entities.User, checklistCommand *command.UpdateTaskChecklistCommand) (*command.TaskCommandResult, error)
	DeleteTask(ctx context.Context, caller *entities.User, id string) (*command.DeleteTaskCommandResult, error)
}
