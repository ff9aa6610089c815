package status

const ReasonCustomerAlwaysActive = "customer accounts are always active"

type ResultDTO struct {
	UserID   string `json:"user_id"`
	IsActive bool   `json:"is_active"`
	Applied  bool   `json:"applied"`
	Reason   string `json:"reason,omitempty"`
}
