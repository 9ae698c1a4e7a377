package mapper

import (
	"task-service/internal/application/common"
	"task-service/internal/domain/entities"
)

func NewTaskResultFromEntity(task *entities.Task) *common.TaskResult {
	checklist := make([]common.TodoItem, 0, len(task.TodoChecklist))
	for _, item := range task.TodoChecklist {
		checklist = append(checklist, common.TodoItem{Text: item.Text, Completed: item.Completed})
	}
	return &common.TaskResult{
		Id:            task.Id,
		Title:         task.Title,
		Description:   task.Description,
		Priority:      string(task.Priority),
		Status:        string(task.Status),
		DueDate:       task.DueDate,
		AssignedTo:    task.AssignedTo,
		CreatedBy:     task.CreatedBy,
		TodoChecklist: checklist,
		Progress:      task.Progress,
		CreatedAt:     task.CreatedAt,
		UpdatedAt:     task.UpdatedAt,
	}
}

func NewTaskResultsFromEntities(tasks []*entities.Task) []*common.TaskResult {
	results := make([]*common.TaskResult, 0, len(tasks))
	for _, t := range tasks {
		results = append(results, NewTaskResultFromEntity(t))
	}
	return results
}

func NewTodoItemsFromCommon(items []common.TodoItem) []entities.TodoItem {
	out := make([]entities.TodoItem, 0, len(items))
	for _, item := range items {
		out = append(out, entities.TodoItem{Text: item.Text, Completed: item.Completed})
	}
	return out
}
