package response

import "time"

type MonitorResponse struct {
	ID                int        `json:"id"`
	Name              string     `json:"name"`
	URL               string     `json:"url"`
	Method            string     `json:"method"`
	HeadersJSON       string     `json:"headers_json"`
	Body              string     `json:"body"`
	ExpectedStatusMin int        `json:"expected_status_min"`
	ExpectedStatusMax int        `json:"expected_status_max"`
	Keyword           string     `json:"keyword"`
	GroupID           *int       `json:"group_id"`
	IntervalSeconds   int        `json:"interval_seconds"`
	LastOnline        *bool      `json:"last_online"`
	LastCheckedAt     *time.Time `json:"last_checked_at"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type CheckResultResponse struct {
	MonitorID  int       `json:"monitor_id"`
	CheckedAt  time.Time `json:"checked_at"`
	Online     bool      `json:"online"`
	StatusCode int       `json:"status_code"`
	ResponseMs int       `json:"response_ms"`
	Error      string    `json:"error"`
}

type DayAggregateResponse struct {
	Day           string  `json:"day"`
	OnlineCount   int     `json:"online_count"`
	TotalCount    int     `json:"total_count"`
	AvgResponseMs float64 `json:"avg_response_ms"`
}

type MonitorExportItem struct {
	Name              string                `json:"name"`
	URL               string                `json:"url"`
	Method            string                `json:"method"`
	HeadersJSON       string                `json:"headers_json"`
	Body              string                `json:"body"`
	ExpectedStatusMin int                   `json:"expected_status_min"`
	ExpectedStatusMax int                   `json:"expected_status_max"`
	Keyword           string                `json:"keyword"`
	GroupID           *int                  `json:"group_id,omitempty"`
	IntervalSeconds   int                   `json:"interval_seconds"`
	History           []CheckResultResponse `json:"history"`
}

type MonitorExportResponse struct {
	Version    string              `json:"version"`
	ExportedAt string              `json:"exported_at"`
	Monitors   []MonitorExportItem `json:"monitors"`
}

type SSLInfoResponse struct {
	MonitorID int        `json:"monitor_id"`
	ExpiresAt *time.Time `json:"expires_at"`
	Issuer    string     `json:"issuer"`
	DaysLeft  *int       `json:"days_left"`
}
