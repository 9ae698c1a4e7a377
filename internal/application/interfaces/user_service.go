package interfaces

import (
	"context"

	"task-service/internal/application/command"
	"task-service/internal/application/query"
)

type UserService interface {
	ListMembers(ctx context.Context) (*query.MemberQueryListResult, error)
	GetMember(ctx context.Context, id string) (*query.UserQueryResult, error)
	DeleteMember(ctx context.Context, id string) (*command.DeleteUserCommandResult, error)
	CreateUser(ctx context.Context, createCommand *command.CreateUserCommand) (*command.CreateUserCommandResult, error)
}
