package query

import "task-service/internal/application/common"

type UserQueryResult struct {
	Result *common.UserResult `json:"result"`
}

type MemberQueryListResult struct {
	Result []*common.MemberResult `json:"result"`
}
