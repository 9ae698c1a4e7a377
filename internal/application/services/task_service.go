package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"task-service/internal/application/command"
	"task-service/internal/application/common"
	"task-service/internal/application/interfaces"
	"task-service/internal/application/mapper"
	"task-service/internal/application/query"
	"task-service/internal/domain"
	"task-service/internal/domain/entities"
	"task-service/internal/domain/repositories"
	"task-service/internal/infrastructure/events"
)

// recentTaskLimit caps the task list on the dashboard.
const recentTaskLimit = 10

type TaskService struct {
	taskRepo  repositories.TaskRepository
	userRepo  repositories.UserRepository
	publisher events.Publisher
}

func NewTaskService(
	taskRepo repositories.TaskRepository,
	userRepo repositories.UserRepository,
	publisher events.Publisher,
) interfaces.TaskService {
	return &TaskService{
		taskRepo:  taskRepo,
		userRepo:  userRepo,
		publisher: publisher,
	}
}

func (s *TaskService) CreateTask(ctx context.Context, caller *entities.User, createCommand *command.CreateTaskCommand) (*command.TaskCommandResult, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	task := entities.NewTask(
		createCommand.Title,
		createCommand.Description,
		entities.TaskPriority(createCommand.Priority),
		createCommand.AssignedTo,
		caller.Id,
		createCommand.DueDate,
		mapper.NewTodoItemsFromCommon(createCommand.TodoChecklist),
	)
	if err := task.Validate(); err != nil {
		return nil, err
	}

	assignee, err := s.userRepo.FindById(ctx, task.AssignedTo)
	if err != nil {
		return nil, fmt.Errorf("find assignee: %w", err)
	}
	if assignee == nil {
		return nil, domain.Invalid("assignedTo %q does not reference a user", task.AssignedTo)
	}

	createdTask, err := s.taskRepo.Create(ctx, task)
	if err != nil {
		return nil, err
	}

	result := mapper.NewTaskResultFromEntity(createdTask)
	publish(ctx, s.publisher, events.SubjectTaskCreated, createdTask.Id, result)

	return &command.TaskCommandResult{Message: "Task created successfully", Task: result}, nil
}

func (s *TaskService) GetTask(ctx context.Context, caller *entities.User, id string) (*query.TaskQueryResult, error) {
	task, err := s.loadAuthorized(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	return &query.TaskQueryResult{Result: mapper.NewTaskResultFromEntity(task)}, nil
}

// ListTasks returns the caller's scope, optionally narrowed by status. The
// status counts always cover the whole scope.
func (s *TaskService) ListTasks(ctx context.Context, caller *entities.User, listQuery query.TaskListQuery) (*query.TaskQueryListResult, error) {
	scope := scopeFor(caller)

	filter := scope
	if listQuery.Status != "" {
		status, err := entities.ParseTaskStatus(listQuery.Status)
		if err != nil {
			return nil, err
		}
		filter.Status = status
	}

	tasks, err := s.taskRepo.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find tasks: %w", err)
	}

	counts, err := s.countByStatus(ctx, scope)
	if err != nil {
		return nil, err
	}

	return &query.TaskQueryListResult{
		Result:       mapper.NewTaskResultsFromEntities(tasks),
		StatusCounts: counts,
	}, nil
}

func (s *TaskService) Dashboard(ctx context.Context, caller *entities.User) (*query.DashboardQueryResult, error) {
	scope := scopeFor(caller)

	counts, err := s.countByStatus(ctx, scope)
	if err != nil {
		return nil, err
	}

	recent := scope
	recent.Limit = recentTaskLimit
	tasks, err := s.taskRepo.Find(ctx, recent)
	if err != nil {
		return nil, fmt.Errorf("find tasks: %w", err)
	}

	return &query.DashboardQueryResult{
		StatusCounts: counts,
		RecentTasks:  mapper.NewTaskResultsFromEntities(tasks),
	}, nil
}

func (s *TaskService) UpdateStatus(ctx context.Context, caller *entities.User, statusCommand *command.UpdateTaskStatusCommand) (*command.TaskCommandResult, error) {
	status, err := entities.ParseTaskStatus(statusCommand.Status)
	if err != nil {
		return nil, err
	}

	task, err := s.loadAuthorized(ctx, caller, statusCommand.TaskId)
	if err != nil {
		return nil, err
	}
	if err := task.SetStatus(status); err != nil {
		return nil, err
	}

	return s.save(ctx, task, "Task status updated")
}

func (s *TaskService) UpdateChecklist(ctx context.Context, caller *entities.User, checklistCommand *command.UpdateTaskChecklistCommand) (*command.TaskCommandResult, error) {
	task, err := s.loadAuthorized(ctx, caller, checklistCommand.TaskId)
	if err != nil {
		return nil, err
	}
	task.SetChecklist(mapper.NewTodoItemsFromCommon(checklistCommand.TodoChecklist))

	return s.save(ctx, task, "Task checklist updated")
}

func (s *TaskService) DeleteTask(ctx context.Context, caller *entities.User, id string) (*command.DeleteTaskCommandResult, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	task, err := s.taskRepo.FindById(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find task: %w", err)
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}

	if err := s.taskRepo.Delete(ctx, task.Id); err != nil {
		return nil, err
	}
	publish(ctx, s.publisher, events.SubjectTaskDeleted, task.Id, nil)

	return &command.DeleteTaskCommandResult{Message: "Task deleted successfully"}, nil
}

func (s *TaskService) save(ctx context.Context, task *entities.Task, message string) (*command.TaskCommandResult, error) {
	updatedTask, err := s.taskRepo.Update(ctx, task)
	if err != nil {
		return nil, err
	}

	result := mapper.NewTaskResultFromEntity(updatedTask)
	publish(ctx, s.publisher, events.SubjectTaskUpdated, updatedTask.Id, result)

	return &command.TaskCommandResult{Message: message, Task: result}, nil
}

// loadAuthorized fetches a task the caller may see. Members only see tasks
// assigned to them.
func (s *TaskService) loadAuthorized(ctx context.Context, caller *entities.User, id string) (*entities.Task, error) {
	task, err := s.taskRepo.FindById(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find task: %w", err)
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}
	if !caller.IsAdmin() && task.AssignedTo != caller.Id {
		return nil, domain.ErrForbidden
	}
	return task, nil
}

func (s *TaskService) countByStatus(ctx context.Context, scope repositories.TaskFilter) (common.TaskStatusCounts, error) {
	var counts common.TaskStatusCounts
	targets := []struct {
		status entities.TaskStatus
		dst    *int64
	}{
		{"", &counts.All},
		{entities.StatusPending, &counts.PendingTasks},
		{entities.StatusInProgress, &counts.InProgressTasks},
		{entities.StatusCompleted, &counts.CompletedTasks},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, target := range targets {
		target := target
		g.Go(func() error {
			filter := scope
			filter.Status = target.status
			n, err := s.taskRepo.Count(gctx, filter)
			if err != nil {
				return fmt.Errorf("count tasks: %w", err)
			}
			*target.dst = n
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return common.TaskStatusCounts{}, err
	}
	return counts, nil
}

func scopeFor(caller *entities.User) repositories.TaskFilter {
	if caller.IsAdmin() {
		return repositories.TaskFilter{}
	}
	return repositories.TaskFilter{AssignedTo: caller.Id}
}
