package query

import "task-service/internal/application/common"

// TaskListQuery scopes a listing. Status is optional.
type TaskListQuery struct {
	Status string
}

type TaskQueryResult struct {
	Result *common.TaskResult `json:"result"`
}

type TaskQueryListResult struct {
	Result       []*common.TaskResult    `json:"result"`
	StatusCounts common.TaskStatusCounts `json:"statusCounts"`
}

type DashboardQueryResult struct {
	StatusCounts common.TaskStatusCounts `json:"statusCounts"`
	RecentTasks  []*common.TaskResult    `json:"recentTasks"`
}
