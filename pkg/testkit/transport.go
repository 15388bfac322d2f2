// Package testkit provides HTTP mocking for store and API tests.
//
// MockTransport intercepts the shared client's outgoing requests and serves
// canned envelope responses, so store semantics can be tested without a
// server:
//
//	mt := testkit.NewMockTransport()
//	mt.On("GET", "/customers", 200, testkit.ListEnvelope(items, pagination))
//	http.DefaultClient.Transport = mt
//	defer http.ResetTransport()
package testkit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stub struct {
	method string
	path   string // prefix match against the request path
	status int
	body   []byte
	calls  int
}

// MockTransport implements http.RoundTripper over a list of stubs. Stubs
// are matched in registration order; the first method+path-prefix match
// wins. Unmatched requests get a 404 so tests fail loudly instead of
// touching the network.
type MockTransport struct {
	mu    sync.Mutex
	stubs []*stub
}

// NewMockTransport returns an empty transport.
func NewMockTransport() *MockTransport {
	return &MockTransport{}
}

// On registers a stub. body is marshalled to JSON; pass json.RawMessage or
// []byte for raw payloads.
func (mt *MockTransport) On(method, path string, status int, body interface{}) *MockTransport {
	raw, ok := body.([]byte)
	if !ok {
		if rm, isRaw := body.(json.RawMessage); isRaw {
			raw = rm
		} else {
			raw, _ = json.Marshal(body)
		}
	}

	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.stubs = append(mt.stubs, &stub{method: method, path: path, status: status, body: raw})
	return mt
}

// RoundTrip matches the request against the stubs.
func (mt *MockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	for _, s := range mt.stubs {
		if s.method != req.Method || !strings.HasPrefix(req.URL.Path, s.path) {
			continue
		}
		s.calls++
		header := make(http.Header)
		header.Set("Content-Type", "application/json")
		return &http.Response{
			StatusCode: s.status,
			Status:     fmt.Sprintf("%d %s", s.status, http.StatusText(s.status)),
			Header:     header,
			Body:       io.NopCloser(bytes.NewReader(s.body)),
			Request:    req,
		}, nil
	}

	return &http.Response{
		StatusCode: http.StatusNotFound,
		Header:     make(http.Header),
		Body:       io.NopCloser(strings.NewReader(`{"message":"no stub configured"}`)),
		Request:    req,
	}, nil
}

// Calls returns how many requests matched the stub for method+path.
func (mt *MockTransport) Calls(method, path string) int {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	total := 0
	for _, s := range mt.stubs {
		if s.method == method && s.path == path {
			total += s.calls
		}
	}
	return total
}

// AssertAllCalled fails the test when any stub was never hit.
func (mt *MockTransport) AssertAllCalled(t *testing.T) {
	t.Helper()
	mt.mu.Lock()
	defer mt.mu.Unlock()

	for _, s := range mt.stubs {
		assert.Greater(t, s.calls, 0, "stub %s %s was never called", s.method, s.path)
	}
}

// DataEnvelope wraps payload in the backend's `{data: …}` success shape.
func DataEnvelope(payload interface{}) json.RawMessage {
	raw, _ := json.Marshal(map[string]interface{}{"data": payload})
	return raw
}

// ListEnvelope wraps items and pagination in the backend's list shape.
func ListEnvelope(items interface{}, pagination interface{}) json.RawMessage {
	return DataEnvelope(map[string]interface{}{
		"items":      items,
		"pagination": pagination,
	})
}
