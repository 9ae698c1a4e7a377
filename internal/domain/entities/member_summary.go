package entities

// MemberSummary is a member merged with the number of tasks assigned to them
// in each status. It is derived on every read and never stored.
type MemberSummary struct {
	*User
	PendingTasks    int64 `json:"pendingTasks"`
	InProgressTasks int64 `json:"inProgressTasks"`
	CompletedTasks  int64 `json:"completedTasks"`
}

// SetCount stores n in the bucket for status.
func (m *MemberSummary) SetCount(status TaskStatus, n int64) {
	switch status {
	case StatusPending:
		m.PendingTasks = n
	case StatusInProgress:
		m.InProgressTasks = n
	case StatusCompleted:
		m.CompletedTasks = n
	}
}
