package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"task-service/internal/domain"
	"task-service/internal/domain/entities"
	"task-service/internal/domain/repositories"
)

type TaskRepository struct {
	collection *mongo.Collection
}

func NewTaskRepository(db *mongo.Database) repositories.TaskRepository {
	return &TaskRepository{collection: db.Collection(tasksCollection)}
}

// taskQuery translates a filter. ok is false when the filter references an
// id that cannot exist, in which case nothing matches.
func taskQuery(filter repositories.TaskFilter) (query bson.M, ok bool) {
	query = bson.M{}
	if filter.AssignedTo != "" {
		oid, err := primitive.ObjectIDFromHex(filter.AssignedTo)
		if err != nil {
			return nil, false
		}
		query["assignedTo"] = oid
	}
	if filter.Status != "" {
		query["status"] = string(filter.Status)
	}
	return query, true
}

func (r *TaskRepository) Create(ctx context.Context, task *entities.Task) (*entities.Task, error) {
	doc, err := newTaskDocument(task)
	if err != nil {
		return nil, domain.Invalid("malformed user reference: %v", err)
	}
	doc.Id = primitive.NewObjectID()

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	return doc.toEntity(), nil
}

func (r *TaskRepository) FindById(ctx context.Context, id string) (*entities.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var doc taskDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return doc.toEntity(), nil
}

func (r *TaskRepository) Find(ctx context.Context, filter repositories.TaskFilter) ([]*entities.Task, error) {
	tasks := make([]*entities.Task, 0)
	query, ok := taskQuery(filter)
	if !ok {
		return tasks, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("find tasks: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var doc taskDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode task: %w", err)
		}
		tasks = append(tasks, doc.toEntity())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepository) Count(ctx context.Context, filter repositories.TaskFilter) (int64, error) {
	query, ok := taskQuery(filter)
	if !ok {
		return 0, nil
	}
	n, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("count tasks: %w", err)
	}
	return n, nil
}

func (r *TaskRepository) Update(ctx context.Context, task *entities.Task) (*entities.Task, error) {
	doc, err := newTaskDocument(task)
	if err != nil {
		return nil, domain.Invalid("malformed task: %v", err)
	}

	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": doc.Id}, doc)
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrTaskNotFound
	}
	return doc.toEntity(), nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrTaskNotFound
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}
