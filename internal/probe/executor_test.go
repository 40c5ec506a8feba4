package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExecutor_OnlineWithinExpectedRange(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	executor := NewExecutor(5 * time.Second)
	outcome := executor.Probe(context.Background(), Request{
		URL:               server.URL,
		ExpectedStatusMin: 200,
		ExpectedStatusMax: 299,
		Timeout:           2 * time.Second,
	})

	assert.True(t, outcome.Online)
	assert.Equal(t, 200, outcome.StatusCode)
	assert.Empty(t, outcome.Err)
	assert.GreaterOrEqual(t, outcome.ResponseMs, 0)
}

func TestExecutor_CompletedRequestOutsideRangeKeepsStatusCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	executor := NewExecutor(5 * time.Second)
	outcome := executor.Probe(context.Background(), Request{
		URL:               server.URL,
		ExpectedStatusMin: 200,
		ExpectedStatusMax: 299,
	})

	assert.False(t, outcome.Online)
	assert.Equal(t, 500, outcome.StatusCode)
	assert.Contains(t, outcome.Err, "status 500 outside expected range [200,299]")
}

func TestExecutor_TransportFailureReportsZeroStatus(t *testing.T) {
	executor := NewExecutor(5 * time.Second)
	outcome := executor.Probe(context.Background(), Request{
		// reserved TEST-NET address, nothing listens here
		URL:               "http://192.0.2.1:81/",
		ExpectedStatusMin: 200,
		ExpectedStatusMax: 299,
		Timeout:           200 * time.Millisecond,
	})

	assert.False(t, outcome.Online)
	assert.Equal(t, 0, outcome.StatusCode)
	assert.NotEmpty(t, outcome.Err)
}

func TestExecutor_KeywordFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"healthy"}`))
	}))
	defer server.Close()

	executor := NewExecutor(5 * time.Second)
	outcome := executor.Probe(context.Background(), Request{
		URL:               server.URL,
		ExpectedStatusMin: 200,
		ExpectedStatusMax: 299,
		Keyword:           "healthy",
	})

	assert.True(t, outcome.Online)
	assert.Empty(t, outcome.Err)
}

func TestExecutor_KeywordMissingMarksOffline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("maintenance page"))
	}))
	defer server.Close()

	executor := NewExecutor(5 * time.Second)
	outcome := executor.Probe(context.Background(), Request{
		URL:               server.URL,
		ExpectedStatusMin: 200,
		ExpectedStatusMax: 299,
		Keyword:           "healthy",
	})

	assert.False(t, outcome.Online)
	// the request completed, so the real status code is kept
	assert.Equal(t, 200, outcome.StatusCode)
	assert.Contains(t, outcome.Err, `keyword "healthy" not found`)
}

func TestExecutor_KeywordSkippedWhenStatusOutsideRange(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("healthy"))
	}))
	defer server.Close()

	executor := NewExecutor(5 * time.Second)
	outcome := executor.Probe(context.Background(), Request{
		URL:               server.URL,
		ExpectedStatusMin: 200,
		ExpectedStatusMax: 299,
		Keyword:           "healthy",
	})

	assert.False(t, outcome.Online)
	assert.Contains(t, outcome.Err, "status 502 outside expected range")
}

func TestExecutor_SendsMethodHeadersAndBody(t *testing.T) {
	var gotMethod, gotHeader, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotHeader = r.Header.Get("X-Api-Key")
		buf := make([]byte, r.ContentLength)
		r.Body.Read(buf)
		gotBody = string(buf)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	executor := NewExecutor(5 * time.Second)
	outcome := executor.Probe(context.Background(), Request{
		URL:               server.URL,
		Method:            http.MethodPost,
		HeadersJSON:       `{"X-Api-Key":"secret"}`,
		Body:              `{"ping":true}`,
		ExpectedStatusMin: 200,
		ExpectedStatusMax: 299,
	})

	assert.True(t, outcome.Online)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "secret", gotHeader)
	assert.Equal(t, `{"ping":true}`, gotBody)
}

func TestExecutor_TimeoutIsTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	executor := NewExecutor(5 * time.Second)
	outcome := executor.Probe(context.Background(), Request{
		URL:               server.URL,
		ExpectedStatusMin: 200,
		ExpectedStatusMax: 299,
		Timeout:           50 * time.Millisecond,
	})

	assert.False(t, outcome.Online)
	assert.Equal(t, 0, outcome.StatusCode)
	assert.NotEmpty(t, outcome.Err)
}

func TestExecutor_ExactStatusRange(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer server.Close()

	executor := NewExecutor(5 * time.Second)
	outcome := executor.Probe(context.Background(), Request{
		URL:               server.URL,
		ExpectedStatusMin: 418,
		ExpectedStatusMax: 418,
	})

	assert.True(t, outcome.Online)
	assert.Equal(t, 418, outcome.StatusCode)
}
