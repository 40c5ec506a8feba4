package request

type SubscribeRequest struct {
	MonitorID int      `json:"monitor_id" binding:"required,gte=1" validate:"required,gte=1"`
	Email     string   `json:"email" binding:"required,email" validate:"required,email"`
	Events    []string `json:"events"`
}
