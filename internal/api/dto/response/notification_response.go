package response

import "time"

type NotificationResponse struct {
	ID          int64     `json:"id"`
	MonitorID   int       `json:"monitor_id"`
	MonitorName string    `json:"monitor_name"`
	CreatedAt   time.Time `json:"created_at"`
	Type        string    `json:"type"`
	Direction   string    `json:"direction,omitempty"`
	Message     string    `json:"message"`
}

type NotificationListResponse struct {
	Items []NotificationResponse `json:"items"`
	Total int64                  `json:"total"`
}

type SubscriptionResponse struct {
	ID           int64     `json:"id"`
	MonitorID    int       `json:"monitor_id"`
	MonitorName  string    `json:"monitor_name"`
	Email        string    `json:"email"`
	NotifyEvents string    `json:"notify_events"`
	Verified     bool      `json:"verified"`
	CreatedAt    time.Time `json:"created_at"`
}
