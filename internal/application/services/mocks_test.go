package services

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"task-service/internal/domain/entities"
	"task-service/internal/domain/repositories"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	args := m.Called(ctx, user)
	if u := args.Get(0); u != nil {
		return u.(*entities.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) FindById(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*entities.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) FindByRole(ctx context.Context, role entities.Role) ([]*entities.User, error) {
	args := m.Called(ctx, role)
	if u := args.Get(0); u != nil {
		return u.([]*entities.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) FindByEmailWithCredential(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*entities.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockTaskRepository struct {
	mock.Mock
}

func (m *mockTaskRepository) Create(ctx context.Context, task *entities.Task) (*entities.Task, error) {
	args := m.Called(ctx, task)
	if t := args.Get(0); t != nil {
		return t.(*entities.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTaskRepository) FindById(ctx context.Context, id string) (*entities.Task, error) {
	args := m.Called(ctx, id)
	if t := args.Get(0); t != nil {
		return t.(*entities.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTaskRepository) Find(ctx context.Context, filter repositories.TaskFilter) ([]*entities.Task, error) {
	args := m.Called(ctx, filter)
	if t := args.Get(0); t != nil {
		return t.([]*entities.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTaskRepository) Count(ctx context.Context, filter repositories.TaskFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTaskRepository) Update(ctx context.Context, task *entities.Task) (*entities.Task, error) {
	args := m.Called(ctx, task)
	if t := args.Get(0); t != nil {
		return t.(*entities.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTaskRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockProfileCache struct {
	mock.Mock
}

func (m *mockProfileCache) GetProfile(ctx context.Context, userID string) (*entities.User, error) {
	args := m.Called(ctx, userID)
	if u := args.Get(0); u != nil {
		return u.(*entities.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProfileCache) SetProfile(ctx context.Context, user *entities.User, ttl time.Duration) error {
	return m.Called(ctx, user, ttl).Error(0)
}

func (m *mockProfileCache) DeleteProfile(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, subject, id string, data any) error {
	return m.Called(ctx, subject, id, data).Error(0)
}

func (m *mockPublisher) Close() {}

type mockLoginLimiter struct {
	mock.Mock
}

func (m *mockLoginLimiter) Allow(key string) bool {
	return m.Called(key).Bool(0)
}

func (m *mockLoginLimiter) Reset(key string) {
	m.Called(key)
}

func member(id, name string) *entities.User {
	return &entities.User{Id: id, Name: name, Email: name + "@example.com", Role: entities.RoleMember}
}

func admin(id string) *entities.User {
	return &entities.User{Id: id, Name: "admin", Email: "admin@example.com", Role: entities.RoleAdmin}
}
