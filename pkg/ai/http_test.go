package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"testing"

	"jha_chat/pkg/config"
)

const testEndpoint = "https://provider.test/v1/chat/completions"

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func newTestClient(rt roundTripperFunc) *http.Client {
	return &http.Client{Transport: rt}
}

func newHTTPResponse(req *http.Request, status int, contentType string, body []byte) *http.Response {
	resp := &http.Response{
		Status:     fmt.Sprintf("%d %s", status, http.StatusText(status)),
		StatusCode: status,
		Header:     make(http.Header),
		Body:       io.NopCloser(bytes.NewReader(body)),
		Request:    req,
	}
	if contentType != "" {
		resp.Header.Set("Content-Type", contentType)
	}
	return resp
}

func newJSONResponse(t *testing.T, req *http.Request, status int, payload any) *http.Response {
	t.Helper()
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal response: %v", err)
	}
	return newHTTPResponse(req, status, "application/json", data)
}

// completionBody builds the smallest successful provider reply.
func completionBody(content string) map[string]any {
	return map[string]any{
		"choices": []any{
			map[string]any{
				"message": map[string]any{
					"content": content,
				},
			},
		},
	}
}

func testEndpointConfig() config.EndpointConfig {
	return config.EndpointConfig{
		APIURL:            testEndpoint,
		APIKey:            "test-key",
		Model:             "test/instruct-model",
		APITimeoutSeconds: 5,
	}
}

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// newStubbedClient returns a Client whose transport is rt, a counter of the
// requests it saw, and the buffer its logger writes to.
func newStubbedClient(t *testing.T, rt roundTripperFunc) (*Client, *atomic.Int32, *bytes.Buffer) {
	t.Helper()
	var calls atomic.Int32
	counting := func(req *http.Request) (*http.Response, error) {
		calls.Add(1)
		return rt(req)
	}

	logs := &bytes.Buffer{}
	client, err := New(testEndpointConfig(),
		WithHTTPClient(newTestClient(counting)),
		WithLogger(newTestLogger(logs)),
	)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return client, &calls, logs
}
