package leave

type CreateLeaveRequest struct {
	Title     string `json:"title" validate:"required,min=3,max=255"`
	Reason    string `json:"reason" validate:"required,min=10"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type LeaveResponse struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	Title        string `json:"title"`
	Reason       string `json:"reason"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Duration     int    `json:"duration"`
	Status       string `json:"status"`
	IsReadByUser bool   `json:"is_read_by_user"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`

	RequesterName      string  `json:"requester_name,omitempty"`
	RequesterIDPJLP    string  `json:"requester_id_pjlp,omitempty"`
	RequesterAvatarURL *string `json:"requester_avatar_url,omitempty"`
}

// Notification outcome statuses.
const (
	NotificationSent    = "sent"
	NotificationSkipped = "skipped"
	NotificationFailed  = "failed"
)

type NotificationOutcome struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type StatusUpdateResult struct {
	Leave        LeaveResponse       `json:"leave"`
	Notification NotificationOutcome `json:"notification"`
	Message      string              `json:"message"`
}

type HistoryResponse struct {
	Year           int             `json:"year"`
	Leaves         []LeaveResponse `json:"leaves"`
	AvailableYears []int           `json:"available_years"`
}

type ListFilter struct {
	Status   string
	Page     int
	PageSize int
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}
