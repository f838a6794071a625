package report

import "time"

type MonthlyBucket struct {
	Month    string `json:"month"`
	Label    string `json:"label"`
	Year     int    `json:"year"`
	Pending  int    `json:"Menunggu"`
	Approved int    `json:"Disetujui"`
	Rejected int    `json:"Ditolak"`
}

type RecentRequest struct {
	ID        string    `json:"id" gorm:"column:id"`
	Title     string    `json:"title" gorm:"column:title"`
	Name      string    `json:"name" gorm:"column:name"`
	AvatarURL *string   `json:"avatar_url" gorm:"column:avatar_url"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
}

type DashboardResponse struct {
	TotalMembers     int64           `json:"total_members"`
	MonthlyRequests  int64           `json:"monthly_requests"`
	ApprovedRequests int64           `json:"approved_requests"`
	RecentRequests   []RecentRequest `json:"recent_requests"`
	MonthlyStats     []MonthlyBucket `json:"monthly_stats"`
	GeneratedAt      time.Time       `json:"generated_at"`
}

type AnnualFilter struct {
	Year     int
	Query    string
	Page     int
	PageSize int
}

type AnnualRow struct {
	UserID        string  `json:"user_id" gorm:"column:user_id"`
	Name          string  `json:"name" gorm:"column:name"`
	IDPJLP        string  `json:"id_pjlp" gorm:"column:id_pjlp"`
	AvatarURL     *string `json:"avatar_url" gorm:"column:avatar_url"`
	TotalDays     int     `json:"total_days" gorm:"column:total_days"`
	UsedDays      int     `json:"used_days" gorm:"column:used_days"`
	RemainingDays int     `json:"remaining_days" gorm:"-"`
	ApprovedCount int     `json:"approved_count" gorm:"column:approved_count"`
}

type AnnualReportResponse struct {
	Year           int         `json:"year"`
	Query          string      `json:"query"`
	Rows           []AnnualRow `json:"rows"`
	AvailableYears []int       `json:"available_years"`
}
