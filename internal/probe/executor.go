package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Request carries everything one probe needs; the executor holds no
// per-monitor state.
type Request struct {
	URL               string
	Method            string
	HeadersJSON       string
	Body              string
	ExpectedStatusMin int
	ExpectedStatusMax int
	Keyword           string
	Timeout           time.Duration
}

// Outcome is the result of one probe attempt.
//
// StatusCode is 0 for transport-level failures (DNS, connect, TLS, timeout);
// a completed request always carries its real status code even when the
// monitor is considered offline. ResponseMs is the wall-clock duration of the
// attempt and is recorded for failures too.
type Outcome struct {
	Online     bool
	StatusCode int
	ResponseMs int
	Err        string
}

type Executor interface {
	Probe(ctx context.Context, req Request) Outcome
}

type executor struct {
	client *http.Client
}

// maxBodyRead bounds keyword scanning so a huge response cannot pin memory.
const maxBodyRead = 1 << 20

func (e *executor) Probe(ctx context.Context, req Request) Outcome {
	start := time.Now()

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	var body io.Reader
	if req.Body != "" {
		body = strings.NewReader(req.Body)
	}

	cctx := ctx
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		cctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	httpReq, err := http.NewRequestWithContext(cctx, method, req.URL, body)
	if err != nil {
		return Outcome{
			Online:     false,
			ResponseMs: int(time.Since(start).Milliseconds()),
			Err:        err.Error(),
		}
	}
	if req.HeadersJSON != "" && req.HeadersJSON != "{}" {
		var headers map[string]string
		if e := json.Unmarshal([]byte(req.HeadersJSON), &headers); e == nil {
			for k, v := range headers {
				httpReq.Header.Set(k, v)
			}
		}
	}

	resp, err := e.client.Do(httpReq)
	if err != nil {
		// transport failure: no status code to report
		return Outcome{
			Online:     false,
			StatusCode: 0,
			ResponseMs: int(time.Since(start).Milliseconds()),
			Err:        err.Error(),
		}
	}
	defer resp.Body.Close()

	out := Outcome{StatusCode: resp.StatusCode}
	out.Online = resp.StatusCode >= req.ExpectedStatusMin && resp.StatusCode <= req.ExpectedStatusMax
	if !out.Online {
		out.Err = fmt.Sprintf("status %d outside expected range [%d,%d]", resp.StatusCode, req.ExpectedStatusMin, req.ExpectedStatusMax)
	} else if req.Keyword != "" {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodyRead))
		if !strings.Contains(string(b), req.Keyword) {
			out.Online = false
			out.Err = fmt.Sprintf("keyword %q not found in response body", req.Keyword)
		}
	}
	out.ResponseMs = int(time.Since(start).Milliseconds())
	return out
}

func NewExecutor(maxTimeout time.Duration) Executor {
	return &executor{
		client: &http.Client{
			// per-request deadlines come from Request.Timeout; this is the
			// hard ceiling for monitors with very long intervals
			Timeout: maxTimeout,
		},
	}
}
