package mongodb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"task-service/internal/domain"
	"task-service/internal/domain/entities"
	"task-service/internal/domain/repositories"
)

func userDoc(id primitive.ObjectID, name, role string) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "name", Value: name},
		{Key: "email", Value: name + "@example.com"},
		{Key: "role", Value: role},
		{Key: "createdAt", Value: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{Key: "updatedAt", Value: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
}

func TestUserRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("find by id projects out the credential", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		ns := mt.DB.Name() + "." + usersCollection
		id := primitive.NewObjectID()

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, userDoc(id, "ann", "member")))

		user, err := repo.FindById(context.Background(), id.Hex())
		require.NoError(mt, err)
		require.NotNil(mt, user)
		assert.Equal(mt, id.Hex(), user.Id)
		assert.Equal(mt, entities.RoleMember, user.Role)
		assert.Empty(mt, user.Password)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "find", started.CommandName)
		projection, ok := started.Command.Lookup("projection").DocumentOK()
		require.True(mt, ok, "find must carry a projection")
		assert.Equal(mt, int64(0), projection.Lookup("password").AsInt64())
	})

	mt.Run("find by id misses", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		ns := mt.DB.Name() + "." + usersCollection

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		user, err := repo.FindById(context.Background(), primitive.NewObjectID().Hex())
		assert.NoError(mt, err)
		assert.Nil(mt, user)
	})

	mt.Run("malformed id is not found without a round trip", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)

		user, err := repo.FindById(context.Background(), "not-an-object-id")
		assert.NoError(mt, err)
		assert.Nil(mt, user)
		assert.ErrorIs(mt, repo.Delete(context.Background(), "not-an-object-id"), domain.ErrUserNotFound)
		assert.Nil(mt, mt.GetStartedEvent())
	})

	mt.Run("find by role", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		ns := mt.DB.Name() + "." + usersCollection
		ann, bob := primitive.NewObjectID(), primitive.NewObjectID()

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			userDoc(ann, "ann", "member"),
			userDoc(bob, "bob", "member"),
		))

		users, err := repo.FindByRole(context.Background(), entities.RoleMember)
		require.NoError(mt, err)
		require.Len(mt, users, 2)
		assert.Equal(mt, ann.Hex(), users[0].Id)
		assert.Equal(mt, bob.Hex(), users[1].Id)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "member", started.Command.Lookup("filter", "role").StringValue())
	})

	mt.Run("duplicate email", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)

		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: users index: email_1",
		}))

		validated, err := entities.NewValidatedUser(entities.NewUser("ann", "ann@example.com", "pw123456", entities.RoleMember))
		require.NoError(mt, err)

		_, err = repo.Create(context.Background(), validated)
		assert.ErrorIs(mt, err, domain.ErrEmailTaken)
	})

	mt.Run("delete", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)

		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
		)

		id := primitive.NewObjectID().Hex()
		assert.NoError(mt, repo.Delete(context.Background(), id))
		assert.ErrorIs(mt, repo.Delete(context.Background(), id), domain.ErrUserNotFound)
	})
}

func TestTaskRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("count by assignee and status", func(mt *mtest.T) {
		repo := NewTaskRepository(mt.DB)
		ns := mt.DB.Name() + "." + tasksCollection
		assignee := primitive.NewObjectID()

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "n", Value: int32(3)}}))

		n, err := repo.Count(context.Background(), repositories.TaskFilter{
			AssignedTo: assignee.Hex(),
			Status:     entities.StatusInProgress,
		})
		require.NoError(mt, err)
		assert.Equal(mt, int64(3), n)
	})

	mt.Run("count for malformed assignee matches nothing", func(mt *mtest.T) {
		repo := NewTaskRepository(mt.DB)

		n, err := repo.Count(context.Background(), repositories.TaskFilter{AssignedTo: "u1"})
		require.NoError(mt, err)
		assert.Zero(mt, n)
		assert.Nil(mt, mt.GetStartedEvent())
	})

	mt.Run("create rejects malformed assignee", func(mt *mtest.T) {
		repo := NewTaskRepository(mt.DB)

		task := entities.NewTask("t", "", entities.PriorityLow, "u1", "", nil, nil)
		_, err := repo.Create(context.Background(), task)
		assert.ErrorIs(mt, err, domain.ErrValidation)
	})

	mt.Run("create assigns an id", func(mt *mtest.T) {
		repo := NewTaskRepository(mt.DB)

		mt.AddMockResponses(mtest.CreateSuccessResponse())

		task := entities.NewTask("t", "", entities.PriorityLow, primitive.NewObjectID().Hex(), "", nil, nil)
		created, err := repo.Create(context.Background(), task)
		require.NoError(mt, err)
		assert.True(mt, primitive.IsValidObjectID(created.Id))
		assert.Equal(mt, entities.StatusPending, created.Status)
	})

	mt.Run("update missing task", func(mt *mtest.T) {
		repo := NewTaskRepository(mt.DB)

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		task := entities.NewTask("t", "", entities.PriorityLow, primitive.NewObjectID().Hex(), "", nil, nil)
		task.Id = primitive.NewObjectID().Hex()

		_, err := repo.Update(context.Background(), task)
		assert.ErrorIs(mt, err, domain.ErrTaskNotFound)
	})

	mt.Run("find passes the limit", func(mt *mtest.T) {
		repo := NewTaskRepository(mt.DB)
		ns := mt.DB.Name() + "." + tasksCollection

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.Find(context.Background(), repositories.TaskFilter{Limit: 10})
		require.NoError(mt, err)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, int64(10), started.Command.Lookup("limit").AsInt64())
	})

	mt.Run("find decodes checklist", func(mt *mtest.T) {
		repo := NewTaskRepository(mt.DB)
		ns := mt.DB.Name() + "." + tasksCollection
		id, assignee := primitive.NewObjectID(), primitive.NewObjectID()

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "title", Value: "write report"},
			{Key: "priority", Value: "High"},
			{Key: "status", Value: "In progress"},
			{Key: "assignedTo", Value: assignee},
			{Key: "todoChecklist", Value: bson.A{
				bson.D{{Key: "text", Value: "outline"}, {Key: "completed", Value: true}},
				bson.D{{Key: "text", Value: "draft"}, {Key: "completed", Value: false}},
			}},
			{Key: "progress", Value: 50},
		}))

		tasks, err := repo.Find(context.Background(), repositories.TaskFilter{AssignedTo: assignee.Hex()})
		require.NoError(mt, err)
		require.Len(mt, tasks, 1)
		assert.Equal(mt, id.Hex(), tasks[0].Id)
		assert.Equal(mt, assignee.Hex(), tasks[0].AssignedTo)
		assert.Equal(mt, entities.StatusInProgress, tasks[0].Status)
		assert.Equal(mt, 50, tasks[0].Progress)
		assert.Equal(mt, []entities.TodoItem{{Text: "outline", Completed: true}, {Text: "draft"}}, tasks[0].TodoChecklist)
	})
}
