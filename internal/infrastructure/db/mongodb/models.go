package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"task-service/internal/domain/entities"
)

type userDocument struct {
	Id              primitive.ObjectID `bson:"_id,omitempty"`
	Name            string             `bson:"name"`
	Email           string             `bson:"email"`
	Password        string             `bson:"password,omitempty"`
	ProfileImageURL string             `bson:"profileImageUrl,omitempty"`
	Role            string             `bson:"role"`
	CreatedAt       time.Time          `bson:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt"`
}

type taskDocument struct {
	Id            primitive.ObjectID  `bson:"_id,omitempty"`
	Title         string              `bson:"title"`
	Description   string              `bson:"description"`
	Priority      string              `bson:"priority"`
	Status        string              `bson:"status"`
	DueDate       *time.Time          `bson:"dueDate,omitempty"`
	AssignedTo    primitive.ObjectID  `bson:"assignedTo"`
	CreatedBy     primitive.ObjectID  `bson:"createdBy,omitempty"`
	TodoChecklist []entities.TodoItem `bson:"todoChecklist"`
	Progress      int                 `bson:"progress"`
	CreatedAt     time.Time           `bson:"createdAt"`
	UpdatedAt     time.Time           `bson:"updatedAt"`
}

func (d *userDocument) toEntity() *entities.User {
	return &entities.User{
		Id:              d.Id.Hex(),
		Name:            d.Name,
		Email:           d.Email,
		Password:        d.Password,
		ProfileImageURL: d.ProfileImageURL,
		Role:            entities.Role(d.Role),
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

func newTaskDocument(t *entities.Task) (*taskDocument, error) {
	assignedTo, err := primitive.ObjectIDFromHex(t.AssignedTo)
	if err != nil {
		return nil, err
	}
	doc := &taskDocument{
		Title:         t.Title,
		Description:   t.Description,
		Priority:      string(t.Priority),
		Status:        string(t.Status),
		DueDate:       t.DueDate,
		AssignedTo:    assignedTo,
		TodoChecklist: t.TodoChecklist,
		Progress:      t.Progress,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
	if t.CreatedBy != "" {
		if doc.CreatedBy, err = primitive.ObjectIDFromHex(t.CreatedBy); err != nil {
			return nil, err
		}
	}
	if t.Id != "" {
		if doc.Id, err = primitive.ObjectIDFromHex(t.Id); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func (d *taskDocument) toEntity() *entities.Task {
	t := &entities.Task{
		Id:            d.Id.Hex(),
		Title:         d.Title,
		Description:   d.Description,
		Priority:      entities.TaskPriority(d.Priority),
		Status:        entities.TaskStatus(d.Status),
		DueDate:       d.DueDate,
		AssignedTo:    d.AssignedTo.Hex(),
		TodoChecklist: d.TodoChecklist,
		Progress:      d.Progress,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
	if !d.CreatedBy.IsZero() {
		t.CreatedBy = d.CreatedBy.Hex()
	}
	if t.TodoChecklist == nil {
		t.TodoChecklist = []entities.TodoItem{}
	}
	return t
}
