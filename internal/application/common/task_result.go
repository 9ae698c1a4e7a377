package common

import "time"

type TodoItem struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

type TaskResult struct {
	Id            string     `json:"_id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Priority      string     `json:"priority"`
	Status        string     `json:"status"`
	DueDate       *time.Time `json:"dueDate,omitempty"`
	AssignedTo    string     `json:"assignedTo"`
	CreatedBy     string     `json:"createdBy"`
	TodoChecklist []TodoItem `json:"todoChecklist"`
	Progress      int        `json:"progress"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type TaskStatusCounts struct {
	All             int64 `json:"all"`
	PendingTasks    int64 `json:"pendingTasks"`
	InProgressTasks int64 `json:"inProgressTasks"`
	CompletedTasks  int64 `json:"completedTasks"`
}
