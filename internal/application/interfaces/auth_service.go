package interfaces

import (
	"context"

	"task-service/internal/application/command"
	"task-service/internal/domain/entities"
)

type AuthService interface {
	Register(ctx context.Context, createCommand *command.CreateUserCommand) (*command.CreateUserCommandResult, error)
	Login(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error)
	// ResolveIdentity maps a bearer token to a user without its credential.
	// Every failure is reported as domain.ErrUnauthorized.
	ResolveIdentity(ctx context.Context, token string) (*entities.User, error)
}
