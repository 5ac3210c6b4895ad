package dto

const (
	StatActiveRequests          = "active_requests"
	StatTotalBookings           = "total_bookings"
	StatPendingPayments         = "pending_payments"
	StatAssignedRequests        = "assigned_requests"
	StatDraftQuotations         = "draft_quotations"
	StatPendingApprovals        = "pending_approvals"
	StatPendingApprovalRequests = "pending_approval_requests"
	StatConfirmedBookings       = "confirmed_bookings"
	StatTotalRequests           = "total_requests"
	StatTotalQuotations         = "total_quotations"
)

type StatsResponse struct {
	Role  string         `json:"role"`
	Stats map[string]int `json:"stats"`
}
