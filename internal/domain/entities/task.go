package entities

import (
	"strings"
	"time"

	"task-service/internal/domain"
)

type TaskStatus string

const (
	StatusPending    TaskStatus = "Pending"
	StatusInProgress TaskStatus = "In progress"
	StatusCompleted  TaskStatus = "Completed"
)

// TaskStatuses lists every status in board order.
var TaskStatuses = []TaskStatus{StatusPending, StatusInProgress, StatusCompleted}

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// ParseTaskStatus accepts the canonical spelling case-insensitively.
func ParseTaskStatus(raw string) (TaskStatus, error) {
	for _, s := range TaskStatuses {
		if strings.EqualFold(strings.TrimSpace(raw), string(s)) {
			return s, nil
		}
	}
	return "", domain.Invalid("unknown task status %q", raw)
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "Low"
	PriorityMedium TaskPriority = "Medium"
	PriorityHigh   TaskPriority = "High"
)

func (p TaskPriority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

type TodoItem struct {
	Text      string `json:"text" bson:"text"`
	Completed bool   `json:"completed" bson:"completed"`
}

// Task is a unit of work assigned to one user. AssignedTo may reference a
// user that no longer exists.
type Task struct {
	Id            string       `json:"_id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Priority      TaskPriority `json:"priority"`
	Status        TaskStatus   `json:"status"`
	DueDate       *time.Time   `json:"dueDate,omitempty"`
	AssignedTo    string       `json:"assignedTo"`
	CreatedBy     string       `json:"createdBy"`
	TodoChecklist []TodoItem   `json:"todoChecklist"`
	Progress      int          `json:"progress"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

func NewTask(title, description string, priority TaskPriority, assignedTo, createdBy string, dueDate *time.Time, checklist []TodoItem) *Task {
	now := time.Now().UTC()
	if priority == "" {
		priority = PriorityMedium
	}
	if checklist == nil {
		checklist = []TodoItem{}
	}
	t := &Task{
		Title:         strings.TrimSpace(title),
		Description:   strings.TrimSpace(description),
		Priority:      priority,
		Status:        StatusPending,
		DueDate:       dueDate,
		AssignedTo:    assignedTo,
		CreatedBy:     createdBy,
		TodoChecklist: checklist,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	t.recomputeProgress()
	return t
}

func (t *Task) Validate() error {
	if t.Title == "" {
		return domain.Invalid("title must not be empty")
	}
	if !t.Priority.Valid() {
		return domain.Invalid("unknown priority %q", t.Priority)
	}
	if !t.Status.Valid() {
		return domain.Invalid("unknown task status %q", t.Status)
	}
	if t.AssignedTo == "" {
		return domain.Invalid("assignedTo must not be empty")
	}
	return nil
}

// SetStatus moves the task to status. Completing a task ticks every
// checklist item.
func (t *Task) SetStatus(status TaskStatus) error {
	if !status.Valid() {
		return domain.Invalid("unknown task status %q", status)
	}
	t.Status = status
	if status == StatusCompleted {
		for i := range t.TodoChecklist {
			t.TodoChecklist[i].Completed = true
		}
		t.Progress = 100
	}
	t.UpdatedAt = time.Now().UTC()
	return nil
}

// SetChecklist replaces the checklist and derives progress and status from it.
func (t *Task) SetChecklist(items []TodoItem) {
	if items == nil {
		items = []TodoItem{}
	}
	t.TodoChecklist = items
	t.recomputeProgress()

	switch {
	case len(items) > 0 && t.Progress == 100:
		t.Status = StatusCompleted
	case t.Progress > 0:
		t.Status = StatusInProgress
	default:
		t.Status = StatusPending
	}
	t.UpdatedAt = time.Now().UTC()
}

func (t *Task) recomputeProgress() {
	total := len(t.TodoChecklist)
	if total == 0 {
		t.Progress = 0
		return
	}
	done := 0
	for _, item := range t.TodoChecklist {
		if item.Completed {
			done++
		}
	}
	t.Progress = done * 100 / total
}
