package relational

import (
	"time"

	"task-service/internal/domain/entities"
)

type UserModel struct {
	Id              string `gorm:"type:varchar(36);primaryKey"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Name            string `gorm:"not null"`
	Email           string `gorm:"uniqueIndex;not null"`
	Password        string `gorm:"not null"`
	ProfileImageURL string
	Role            string `gorm:"not null;default:member"`
}

func (UserModel) TableName() string {
	return "users"
}

type TaskModel struct {
	Id            string `gorm:"type:varchar(36);primaryKey"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Title         string `gorm:"not null"`
	Description   string
	Priority      string `gorm:"not null;default:Medium"`
	Status        string `gorm:"not null;default:Pending;index:idx_tasks_assignee_status,priority:2"`
	DueDate       *time.Time
	AssignedTo    string              `gorm:"type:varchar(36);not null;index:idx_tasks_assignee_status,priority:1"`
	CreatedBy     string              `gorm:"type:varchar(36)"`
	TodoChecklist []entities.TodoItem `gorm:"serializer:json;type:text"`
	Progress      int
}

func (TaskModel) TableName() string {
	return "tasks"
}

func (m *UserModel) toEntity() *entities.User {
	return &entities.User{
		Id:              m.Id,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
		Name:            m.Name,
		Email:           m.Email,
		Password:        m.Password,
		ProfileImageURL: m.ProfileImageURL,
		Role:            entities.Role(m.Role),
	}
}

func newTaskModel(t *entities.Task) *TaskModel {
	return &TaskModel{
		Id:            t.Id,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
		Title:         t.Title,
		Description:   t.Description,
		Priority:      string(t.Priority),
		Status:        string(t.Status),
		DueDate:       t.DueDate,
		AssignedTo:    t.AssignedTo,
		CreatedBy:     t.CreatedBy,
		TodoChecklist: t.TodoChecklist,
		Progress:      t.Progress,
	}
}

func (m *TaskModel) toEntity() *entities.Task {
	checklist := m.TodoChecklist
	if checklist == nil {
		checklist = []entities.TodoItem{}
	}
	return &entities.Task{
		Id:            m.Id,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		Title:         m.Title,
		Description:   m.Description,
		Priority:      entities.TaskPriority(m.Priority),
		Status:        entities.TaskStatus(m.Status),
		DueDate:       m.DueDate,
		AssignedTo:    m.AssignedTo,
		CreatedBy:     m.CreatedBy,
		TodoChecklist: checklist,
		Progress:      m.Progress,
	}
}
