package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"task-service/internal/application/command"
	"task-service/internal/application/common"
	"task-service/internal/application/interfaces"
	"task-service/internal/application/mapper"
	"task-service/internal/application/query"
	"task-service/internal/domain"
	"task-service/internal/domain/entities"
	"task-service/internal/domain/repositories"
	"task-service/internal/infrastructure/events"
)

// maxConcurrentCounts bounds the count queries ListMembers keeps in flight.
const maxConcurrentCounts = 32

// ProfileCache is the identity cache. *infrastructure.RedisService
// satisfies it.
type ProfileCache interface {
	GetProfile(ctx context.Context, userID string) (*entities.User, error)
	SetProfile(ctx context.Context, user *entities.User, ttl time.Duration) error
	DeleteProfile(ctx context.Context, userID string) error
}

type UserService struct {
	userRepo         repositories.UserRepository
	taskRepo         repositories.TaskRepository
	profileCache     ProfileCache
	publisher        events.Publisher
	adminInviteToken string
}

func NewUserService(
	userRepo repositories.UserRepository,
	taskRepo repositories.TaskRepository,
	profileCache ProfileCache,
	publisher events.Publisher,
	adminInviteToken string,
) interfaces.UserService {
	return &UserService{
		userRepo:         userRepo,
		taskRepo:         taskRepo,
		profileCache:     profileCache,
		publisher:        publisher,
		adminInviteToken: adminInviteToken,
	}
}

// ListMembers returns every member with their task counts per status. The
// counts are issued concurrently and the first failure discards the whole
// result.
func (s *UserService) ListMembers(ctx context.Context) (*query.MemberQueryListResult, error) {
	members, err := s.userRepo.FindByRole(ctx, entities.RoleMember)
	if err != nil {
		return nil, fmt.Errorf("find members: %w", err)
	}

	summaries := make([]*entities.MemberSummary, len(members))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentCounts)

	for i, member := range members {
		summary := &entities.MemberSummary{User: member.Public()}
		summaries[i] = summary

		for _, status := range entities.TaskStatuses {
			memberID, status := member.Id, status
			g.Go(func() error {
				n, err := s.taskRepo.Count(gctx, repositories.TaskFilter{AssignedTo: memberID, Status: status})
				if err != nil {
					return fmt.Errorf("count %s tasks of %s: %w", status, memberID, err)
				}
				summary.SetCount(status, n)
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := query.MemberQueryListResult{Result: make([]*common.MemberResult, 0, len(summaries))}
	for _, summary := range summaries {
		results.Result = append(results.Result, mapper.NewMemberResultFromSummary(summary))
	}
	return &results, nil
}

func (s *UserService) GetMember(ctx context.Context, id string) (*query.UserQueryResult, error) {
	user, err := s.userRepo.FindById(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	return &query.UserQueryResult{Result: mapper.NewUserResultFromEntity(user)}, nil
}

// DeleteMember removes the user record only. Tasks assigned to the user keep
// their reference.
func (s *UserService) DeleteMember(ctx context.Context, id string) (*command.DeleteUserCommandResult, error) {
	user, err := s.userRepo.FindById(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if err := s.userRepo.Delete(ctx, user.Id); err != nil {
		return nil, err
	}

	if err := s.profileCache.DeleteProfile(ctx, user.Id); err != nil {
		log.Printf("failed to evict cached profile %s: %v", user.Id, err)
	}
	publish(ctx, s.publisher, events.SubjectUserDeleted, user.Id, mapper.NewUserResultFromEntity(user))

	return &command.DeleteUserCommandResult{Message: "User deleted successfully"}, nil
}

// CreateUser registers a member, or an admin when the command carries the
// configured invite token.
func (s *UserService) CreateUser(ctx context.Context, createCommand *command.CreateUserCommand) (*command.CreateUserCommandResult, error) {
	role := entities.RoleMember
	if s.adminInviteToken != "" && createCommand.AdminInviteToken == s.adminInviteToken {
		role = entities.RoleAdmin
	}

	newUser := entities.NewUser(createCommand.Name, createCommand.Email, createCommand.Password, role)
	newUser.ProfileImageURL = createCommand.ProfileImageURL

	validatedUser, err := entities.NewValidatedUser(newUser)
	if err != nil {
		return nil, err
	}

	existingUser, err := s.userRepo.FindByEmailWithCredential(ctx, newUser.Email)
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	if existingUser != nil {
		return nil, domain.ErrEmailTaken
	}

	createdUser, err := s.userRepo.Create(ctx, validatedUser)
	if err != nil {
		return nil, err
	}

	return &command.CreateUserCommandResult{Result: mapper.NewUserResultFromEntity(createdUser)}, nil
}

func publish(ctx context.Context, publisher events.Publisher, subject, id string, data any) {
	if err := publisher.Publish(ctx, subject, id, data); err != nil {
		log.Printf("failed to publish %s for %s: %v", subject, id, err)
	}
}
