package domain

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Resources and actions checked by the RBAC enforcer.
const (
	ResourceLeave   = "leave"
	ResourceBalance = "balance"
	ResourceReport  = "report"
	ResourceProfile = "profile"

	ActionCreate  = "create"
	ActionReadOwn = "read_own"
	ActionReadAll = "read_all"
	ActionApprove = "approve"
	ActionRead    = "read"
	ActionUpdate  = "update"
)

type EnforceRequest struct {
	Role     string `json:"role" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}
