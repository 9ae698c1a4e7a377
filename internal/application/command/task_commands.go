package command

import (
	"time"

	"task-service/internal/application/common"
)

type CreateTaskCommand struct {
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	Priority      string            `json:"priority"`
	DueDate       *time.Time        `json:"dueDate,omitempty"`
	AssignedTo    string            `json:"assignedTo"`
	TodoChecklist []common.TodoItem `json:"todoChecklist"`
}

type UpdateTaskStatusCommand struct {
	TaskId string `json:"-"`
	Status string `json:"status"`
}

type UpdateTaskChecklistCommand struct {
	TaskId        string            `json:"-"`
	TodoChecklist []common.TodoItem `json:"todoChecklist"`
}

type TaskCommandResult struct {
	Message string             `json:"message"`
	Task    *common.TaskResult `json:"task"`
}

type DeleteTaskCommandResult struct {
	Message string `json:"message"`
}
