package domain

// Leave request statuses, persisted with their Indonesian labels.
const (
	LeaveStatusPending  = "Menunggu"
	LeaveStatusApproved = "Disetujui"
	LeaveStatusRejected = "Ditolak"
)

const DefaultAnnualLeaveDays = 12

func IsTerminalLeaveStatus(status string) bool {
	return status == LeaveStatusApproved || status == LeaveStatusRejected
}
