package relational

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"task-service/internal/application/services"
	"task-service/internal/domain"
	"task-service/internal/domain/entities"
	"task-service/internal/domain/repositories"
	"task-service/internal/infrastructure"
	"task-service/internal/infrastructure/events"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := Open("sqlite", filepath.Join(t.TempDir(), "tasks.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func createUser(t *testing.T, repo repositories.UserRepository, name string, role entities.Role) *entities.User {
	t.Helper()

	validated, err := entities.NewValidatedUser(entities.NewUser(name, name+"@example.com", "pw123456", role))
	require.NoError(t, err)

	user, err := repo.Create(context.Background(), validated)
	require.NoError(t, err)
	return user
}

func createTask(t *testing.T, repo repositories.TaskRepository, assignedTo string, status entities.TaskStatus) *entities.Task {
	t.Helper()

	task := entities.NewTask("task", "", entities.PriorityLow, assignedTo, "admin", nil, nil)
	task.Status = status

	created, err := repo.Create(context.Background(), task)
	require.NoError(t, err)
	return created
}

func TestUserReadsExcludeCredential(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))
	ctx := context.Background()

	user := createUser(t, repo, "ann", entities.RoleMember)
	assert.NotEmpty(t, user.Id)
	assert.Empty(t, user.Password, "create reads back through the public projection")

	found, err := repo.FindById(ctx, user.Id)
	require.NoError(t, err)
	assert.Empty(t, found.Password)

	members, err := repo.FindByRole(ctx, entities.RoleMember)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Empty(t, members[0].Password)

	withCredential, err := repo.FindByEmailWithCredential(ctx, "ANN@example.com")
	require.NoError(t, err)
	require.NotNil(t, withCredential)
	assert.NoError(t, withCredential.CheckPassword("pw123456"))
}

func TestUserDuplicateEmail(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))

	createUser(t, repo, "ann", entities.RoleMember)

	validated, err := entities.NewValidatedUser(entities.NewUser("other", "ann@example.com", "pw", entities.RoleMember))
	require.NoError(t, err)

	_, err = repo.Create(context.Background(), validated)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestUserLookupsMiss(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))
	ctx := context.Background()

	user, err := repo.FindById(ctx, "does-not-exist")
	assert.NoError(t, err)
	assert.Nil(t, user)

	user, err = repo.FindByEmailWithCredential(ctx, "nobody@example.com")
	assert.NoError(t, err)
	assert.Nil(t, user)

	assert.ErrorIs(t, repo.Delete(ctx, "does-not-exist"), domain.ErrUserNotFound)
}

func TestFindByRoleFiltersAdmins(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))

	ann := createUser(t, repo, "ann", entities.RoleMember)
	createUser(t, repo, "root", entities.RoleAdmin)
	bob := createUser(t, repo, "bob", entities.RoleMember)

	members, err := repo.FindByRole(context.Background(), entities.RoleMember)
	require.NoError(t, err)

	var ids []string
	for _, m := range members {
		ids = append(ids, m.Id)
	}
	assert.ElementsMatch(t, []string{ann.Id, bob.Id}, ids)
}

func TestTaskCountsByAssigneeAndStatus(t *testing.T) {
	repo := NewTaskRepository(openTestDB(t))
	ctx := context.Background()

	createTask(t, repo, "u1", entities.StatusPending)
	createTask(t, repo, "u1", entities.StatusPending)
	createTask(t, repo, "u1", entities.StatusCompleted)
	createTask(t, repo, "u2", entities.StatusPending)

	n, err := repo.Count(ctx, repositories.TaskFilter{AssignedTo: "u1", Status: entities.StatusPending})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = repo.Count(ctx, repositories.TaskFilter{AssignedTo: "u1"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	n, err = repo.Count(ctx, repositories.TaskFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)

	tasks, err := repo.Find(ctx, repositories.TaskFilter{Status: entities.StatusPending})
	require.NoError(t, err)
	assert.Len(t, tasks, 3)
}

func TestTaskFindLimit(t *testing.T) {
	repo := NewTaskRepository(openTestDB(t))
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		createTask(t, repo, "u1", entities.StatusPending)
	}
	createTask(t, repo, "u2", entities.StatusPending)

	tasks, err := repo.Find(ctx, repositories.TaskFilter{AssignedTo: "u1", Limit: 3})
	require.NoError(t, err)
	assert.Len(t, tasks, 3)

	n, err := repo.Count(ctx, repositories.TaskFilter{AssignedTo: "u1", Limit: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
}

func TestTaskUpdateChecklist(t *testing.T) {
	repo := NewTaskRepository(openTestDB(t))
	ctx := context.Background()

	task := createTask(t, repo, "u1", entities.StatusPending)
	task.SetChecklist([]entities.TodoItem{{Text: "a", Completed: true}, {Text: "b"}})

	updated, err := repo.Update(ctx, task)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusInProgress, updated.Status)
	assert.Equal(t, 50, updated.Progress)
	assert.Equal(t, []entities.TodoItem{{Text: "a", Completed: true}, {Text: "b"}}, updated.TodoChecklist)

	missing := *task
	missing.Id = "does-not-exist"
	_, err = repo.Update(ctx, &missing)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	require.NoError(t, repo.Delete(ctx, task.Id))
	assert.ErrorIs(t, repo.Delete(ctx, task.Id), domain.ErrTaskNotFound)
}

func TestListMembersAgainstSQLite(t *testing.T) {
	db := openTestDB(t)
	userRepo := NewUserRepository(db)
	taskRepo := NewTaskRepository(db)
	svc := services.NewUserService(userRepo, taskRepo, infrastructure.NewRedisServiceFromClient(nil), events.NoopPublisher{}, "")
	ctx := context.Background()

	createUser(t, userRepo, "root", entities.RoleAdmin)
	members := []*entities.User{
		createUser(t, userRepo, "ann", entities.RoleMember),
		createUser(t, userRepo, "bob", entities.RoleMember),
		createUser(t, userRepo, "cid", entities.RoleMember),
	}

	want := map[string][3]int{
		members[0].Id: {2, 0, 1},
		members[1].Id: {1, 3, 0},
		members[2].Id: {0, 1, 0},
	}
	for id, counts := range want {
		for i, status := range entities.TaskStatuses {
			for n := 0; n < counts[i]; n++ {
				createTask(t, taskRepo, id, status)
			}
		}
	}

	result, err := svc.ListMembers(ctx)
	require.NoError(t, err)
	require.Len(t, result.Result, 3)

	for i, got := range result.Result {
		require.Equal(t, members[i].Id, got.Id, "members keep insertion order")
		counts := want[got.Id]
		assert.EqualValues(t, counts[0], got.PendingTasks)
		assert.EqualValues(t, counts[1], got.InProgressTasks)
		assert.EqualValues(t, counts[2], got.CompletedTasks)
	}
}

func TestDeleteMemberLeavesDanglingTask(t *testing.T) {
	db := openTestDB(t)
	userRepo := NewUserRepository(db)
	taskRepo := NewTaskRepository(db)
	svc := services.NewUserService(userRepo, taskRepo, infrastructure.NewRedisServiceFromClient(nil), events.NoopPublisher{}, "")
	ctx := context.Background()

	ann := createUser(t, userRepo, "ann", entities.RoleMember)
	task := createTask(t, taskRepo, ann.Id, entities.StatusInProgress)

	_, err := svc.DeleteMember(ctx, ann.Id)
	require.NoError(t, err)

	_, err = svc.GetMember(ctx, ann.Id)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	orphan, err := taskRepo.FindById(ctx, task.Id)
	require.NoError(t, err)
	require.NotNil(t, orphan)
	assert.Equal(t, ann.Id, orphan.AssignedTo)
}
