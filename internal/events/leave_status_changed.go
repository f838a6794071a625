package events

import "time"

const (
	LeaveStatusChangedTopic = "cuti.leave.status.v1"
	LeaveStatusChangedType  = "leave.status_changed"
	LeaveAggregateType      = "leave_request"
)

// LeaveStatusChangedEvent is emitted once per committed Pending -> Approved/Rejected transition.
type LeaveStatusChangedEvent struct {
	EventType      string    `json:"event_type"`
	LeaveID        string    `json:"leave_id"`
	UserID         string    `json:"user_id"`
	PreviousStatus string    `json:"previous_status"`
	Status         string    `json:"status"`
	StartDate      string    `json:"start_date"`
	EndDate        string    `json:"end_date"`
	Duration       int       `json:"duration"`
	Year           int       `json:"year"`
	ChangedBy      string    `json:"changed_by"`
	OccurredAt     time.Time `json:"occurred_at"`
}
