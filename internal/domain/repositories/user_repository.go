package repositories

import (
	"context"

	"task-service/internal/domain/entities"
)

// UserRepository persists users. Unless a method says otherwise, reads
// exclude the credential hash at the query level. Lookups that find nothing
// return (nil, nil).
type UserRepository interface {
	Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error)
	FindById(ctx context.Context, id string) (*entities.User, error)
	FindByRole(ctx context.Context, role entities.Role) ([]*entities.User, error)
	// FindByEmailWithCredential is the only read that returns the hash; it
	// backs login.
	FindByEmailWithCredential(ctx context.Context, email string) (*entities.User, error)
	Delete(ctx context.Context, id string) error
}
