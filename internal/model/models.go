package model

import "time"

const (
	// Persisted notification types. Status changes in both directions share
	// one type; the direction column tells them apart.
	EventStatusChange = "status_change"
	EventSSLExpiry    = "ssl_expiry"

	// Subscription event vocabulary and notification directions.
	NotifyOnline    = "online"
	NotifyOffline   = "offline"
	NotifySSLExpiry = "ssl_expiry"
)

// MonitorGroup is a pure tag; monitors reference it weakly.
type MonitorGroup struct {
	ID    int    `gorm:"primaryKey" json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

type Monitor struct {
	ID                int        `gorm:"primaryKey" json:"id"`
	Name              string     `json:"name"`
	URL               string     `json:"url"`
	Method            string     `gorm:"default:GET" json:"method"`
	HeadersJSON       string     `gorm:"column:headers;default:'{}'" json:"headers_json"`
	Body              string     `json:"body"`
	ExpectedStatusMin int        `gorm:"default:200" json:"expected_status_min"`
	ExpectedStatusMax int        `gorm:"default:299" json:"expected_status_max"`
	Keyword           string     `json:"keyword"`
	GroupID           *int       `json:"group_id"`
	IntervalSeconds   int        `gorm:"default:60" json:"interval_seconds"`
	LastOnline        *bool      `json:"last_online"`
	LastCheckedAt     *time.Time `json:"last_checked_at"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// CheckResult is one probe outcome. Rows are append-only and pruned by
// retention, never updated.
type CheckResult struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	MonitorID  int       `gorm:"index:idx_results_monitor_time,priority:1" json:"monitor_id"`
	CheckedAt  time.Time `gorm:"index:idx_results_monitor_time,priority:2" json:"checked_at"`
	Online     bool      `json:"online"`
	StatusCode int       `json:"status_code"`
	ResponseMs int       `json:"response_ms"`
	Error      string    `json:"error"`
}

func (CheckResult) TableName() string { return "monitor_results" }

// DayAggregate is derived from CheckResult and must always equal a fresh
// aggregation over the same day's rows.
type DayAggregate struct {
	MonitorID     int       `json:"monitor_id"`
	Day           time.Time `json:"day"`
	OnlineCount   int       `json:"online_count"`
	TotalCount    int       `json:"total_count"`
	AvgResponseMs float64   `json:"avg_response_ms"`
}

// MonitorExport pairs a monitor's configuration with its recent results
// for the data export endpoints.
type MonitorExport struct {
	Monitor Monitor
	History []CheckResult
}

// SSLInfo is a latest-value cache, one row per monitor.
type SSLInfo struct {
	MonitorID int        `gorm:"primaryKey" json:"monitor_id"`
	ExpiresAt *time.Time `json:"expires_at"`
	Issuer    string     `json:"issuer"`
	DaysLeft  *int       `json:"days_left"`
}

func (SSLInfo) TableName() string { return "ssl_info" }

type Notification struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	MonitorID int       `gorm:"index" json:"monitor_id"`
	CreatedAt time.Time `json:"created_at"`
	Type      string    `json:"type"`
	Direction string    `json:"direction,omitempty"` // "online"/"offline" for status changes
	Message   string    `json:"message"`
}

type Subscription struct {
	ID            int64      `gorm:"primaryKey" json:"id"`
	MonitorID     int        `gorm:"uniqueIndex:idx_subscriptions_monitor_email,priority:1" json:"monitor_id"`
	Email         string     `gorm:"uniqueIndex:idx_subscriptions_monitor_email,priority:2" json:"email"`
	NotifyEvents  string     `json:"notify_events"` // comma-separated event names
	Verified      bool       `json:"verified"`
	VerifyToken   string     `gorm:"index" json:"-"`
	VerifyExpires *time.Time `json:"-"`
	CreatedAt     time.Time  `json:"created_at"`
}

func (Subscription) TableName() string { return "monitor_subscriptions" }
