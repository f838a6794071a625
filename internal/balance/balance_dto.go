package balance

type BalanceResponse struct {
	Year          int `json:"year"`
	TotalDays     int `json:"total_days"`
	UsedDays      int `json:"used_days"`
	RemainingDays int `json:"remaining_days"`
}

type ReconcileResult struct {
	UserID   string `json:"user_id"`
	Year     int    `json:"year"`
	UsedDays int    `json:"used_days"`
}
