package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"task-service/internal/application/command"
	"task-service/internal/application/interfaces"
	"task-service/internal/application/mapper"
	"task-service/internal/domain"
	"task-service/internal/domain/entities"
	"task-service/internal/domain/repositories"
	"task-service/internal/infrastructure"
)

// LoginLimiter throttles login attempts per client. *infrastructure.RateLimiter
// satisfies it.
type LoginLimiter interface {
	Allow(key string) bool
	Reset(key string)
}

type AuthService struct {
	userRepo     repositories.UserRepository
	userService  interfaces.UserService
	jwtService   *infrastructure.JWTService
	profileCache ProfileCache
	profileTTL   time.Duration
	loginLimiter LoginLimiter
}

func NewAuthService(
	userRepo repositories.UserRepository,
	userService interfaces.UserService,
	jwtService *infrastructure.JWTService,
	profileCache ProfileCache,
	profileTTL time.Duration,
	loginLimiter LoginLimiter,
) interfaces.AuthService {
	return &AuthService{
		userRepo:     userRepo,
		userService:  userService,
		jwtService:   jwtService,
		profileCache: profileCache,
		profileTTL:   profileTTL,
		loginLimiter: loginLimiter,
	}
}

func (s *AuthService) Register(ctx context.Context, createCommand *command.CreateUserCommand) (*command.CreateUserCommandResult, error) {
	result, err := s.userService.CreateUser(ctx, createCommand)
	if err != nil {
		return nil, err
	}

	token, err := s.jwtService.GenerateToken(result.Result.Id)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	result.Token = token
	return result, nil
}

func (s *AuthService) Login(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error) {
	if s.loginLimiter != nil && loginCommand.ClientKey != "" {
		if !s.loginLimiter.Allow(loginCommand.ClientKey) {
			return nil, domain.ErrTooManyRequests
		}
	}

	user, err := s.userRepo.FindByEmailWithCredential(ctx, entities.NormalizeEmail(loginCommand.Email))
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	// Unknown email and wrong password look the same to the caller
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := user.CheckPassword(loginCommand.Password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.Id)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	if s.loginLimiter != nil && loginCommand.ClientKey != "" {
		s.loginLimiter.Reset(loginCommand.ClientKey)
	}

	return &command.LoginUserCommandResult{
		Token: token,
		User:  mapper.NewUserResultFromEntity(user.Public()),
	}, nil
}

func (s *AuthService) ResolveIdentity(ctx context.Context, token string) (*entities.User, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: no token", domain.ErrUnauthorized)
	}

	userID, err := s.jwtService.ParseToken(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}

	cachedUser, err := s.profileCache.GetProfile(ctx, userID)
	if err != nil {
		log.Printf("identity cache read failed for %s: %v", userID, err)
	}
	if cachedUser != nil {
		return cachedUser.Public(), nil
	}

	user, err := s.userRepo.FindById(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s no longer exists", domain.ErrUnauthorized, userID)
	}

	if err := s.profileCache.SetProfile(ctx, user, s.profileTTL); err != nil {
		log.Printf("failed to cache profile %s: %v", userID, err)
	}
	return user.Public(), nil
}
