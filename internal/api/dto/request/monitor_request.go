package request

type MonitorRequest struct {
	Name              string `json:"name" binding:"required" validate:"required"`
	URL               string `json:"url" binding:"required,url" validate:"required,url"`
	Method            string `json:"method"`
	HeadersJSON       string `json:"headers_json"`
	Body              string `json:"body"`
	ExpectedStatusMin int    `json:"expected_status_min"`
	ExpectedStatusMax int    `json:"expected_status_max"`
	Keyword           string `json:"keyword"`
	GroupID           *int   `json:"group_id"`
	IntervalSeconds   int    `json:"interval_seconds"`
}
