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

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

// public limits a query to the columns that may reach a response.
func (r *UserRepository) public(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Omit("password")
}

func (r *UserRepository) Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	userEntity := user.GetUser()

	if err := userEntity.HashPassword(); err != nil {
		return nil, err
	}

	userModel := UserModel{
		Id:              uuid.NewString(),
		CreatedAt:       userEntity.CreatedAt,
		UpdatedAt:       userEntity.UpdatedAt,
		Name:            userEntity.Name,
		Email:           userEntity.Email,
		Password:        userEntity.Password,
		ProfileImageURL: userEntity.ProfileImageURL,
		Role:            string(userEntity.Role),
	}

	if err := r.db.WithContext(ctx).Create(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	// Read back through the public projection
	return r.FindById(ctx, userModel.Id)
}

func (r *UserRepository) FindById(ctx context.Context, id string) (*entities.User, error) {
	var userModel UserModel
	if err := r.public(ctx).Where("id = ?", id).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	return userModel.toEntity(), nil
}

func (r *UserRepository) FindByRole(ctx context.Context, role entities.Role) ([]*entities.User, error) {
	var userModels []UserModel
	if err := r.public(ctx).Where("role = ?", string(role)).Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}

	users := make([]*entities.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, userModels[i].toEntity())
	}
	return users, nil
}

func (r *UserRepository) FindByEmailWithCredential(ctx context.Context, email string) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.WithContext(ctx).Where("email = ?", entities.NormalizeEmail(email)).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	return userModel.toEntity(), nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&UserModel{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
