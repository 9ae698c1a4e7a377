package mapper

import (
	"task-service/internal/application/common"
	"task-service/internal/domain/entities"
)

// NewUserResultFromEntity copies the public fields of user. The credential
// has no field in the result.
func NewUserResultFromEntity(user *entities.User) *common.UserResult {
	return &common.UserResult{
		Id:              user.Id,
		Name:            user.Name,
		Email:           user.Email,
		ProfileImageURL: user.ProfileImageURL,
		Role:            string(user.Role),
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}
}

func NewMemberResultFromSummary(summary *entities.MemberSummary) *common.MemberResult {
	return &common.MemberResult{
		UserResult:      NewUserResultFromEntity(summary.User),
		PendingTasks:    summary.PendingTasks,
		InProgressTasks: summary.InProgressTasks,
		CompletedTasks:  summary.CompletedTasks,
	}
}
