package command

import "task-service/internal/application/common"

type CreateUserCommand struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	ProfileImageURL  string `json:"profileImageUrl,omitempty"`
	AdminInviteToken string `json:"adminInviteToken,omitempty"`
}

type CreateUserCommandResult struct {
	Token  string             `json:"token,omitempty"`
	Result *common.UserResult `json:"result"`
}

type DeleteUserCommandResult struct {
	Message string `json:"message"`
}
