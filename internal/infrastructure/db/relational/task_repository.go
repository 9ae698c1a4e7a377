package relational

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"task-service/internal/domain"
	"task-service/internal/domain/entities"
	"task-service/internal/domain/repositories"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) scoped(ctx context.Context, filter repositories.TaskFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&TaskModel{})
	if filter.AssignedTo != "" {
		q = q.Where("assigned_to = ?", filter.AssignedTo)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", string(filter.Status))
	}
	return q
}

func (r *TaskRepository) Create(ctx context.Context, task *entities.Task) (*entities.Task, error) {
	model := newTaskModel(task)
	model.Id = uuid.NewString()

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	return r.FindById(ctx, model.Id)
}

func (r *TaskRepository) FindById(ctx context.Context, id string) (*entities.Task, error) {
	var model TaskModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return model.toEntity(), nil
}

func (r *TaskRepository) Find(ctx context.Context, filter repositories.TaskFilter) ([]*entities.Task, error) {
	var models []TaskModel
	tx := r.scoped(ctx, filter).Order("created_at desc")
	if filter.Limit > 0 {
		tx = tx.Limit(filter.Limit)
	}
	if err := tx.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("find tasks: %w", err)
	}

	tasks := make([]*entities.Task, 0, len(models))
	for i := range models {
		tasks = append(tasks, models[i].toEntity())
	}
	return tasks, nil
}

func (r *TaskRepository) Count(ctx context.Context, filter repositories.TaskFilter) (int64, error) {
	var n int64
	if err := r.scoped(ctx, filter).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count tasks: %w", err)
	}
	return n, nil
}

func (r *TaskRepository) Update(ctx context.Context, task *entities.Task) (*entities.Task, error) {
	model := newTaskModel(task)

	res := r.db.WithContext(ctx).Model(&TaskModel{}).Where("id = ?", model.Id).Select("*").Omit("id", "created_at").Updates(model)
	if res.Error != nil {
		return nil, fmt.Errorf("update task: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrTaskNotFound
	}
	return r.FindById(ctx, model.Id)
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&TaskModel{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete task: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}
