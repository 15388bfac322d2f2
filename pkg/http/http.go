// Package http provides the fluent HTTP client every FlashPOS API call goes
// through.
//
// Usage:
//
//	resp, err := http.Get("https://api.example.com/customers").
//	    Bearer(token).
//	    Query("page", "2").
//	    Send(ctx)
//
//	var out customerList
//	err = resp.JSON(&out)
//
//	// POST JSON body
//	resp, err := http.Post("https://api.example.com/customers").
//	    Body(map[string]any{"name": "Budi"}).
//	    Send(ctx)
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	gohttp "net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/reynaldiarya/flashpos/config"
	"github.com/reynaldiarya/flashpos/pkg/metrics"
	"github.com/reynaldiarya/flashpos/pkg/reqid"
)

// defaultTransport is the connection-pooled transport used in production.
// Tests swap DefaultClient.Transport to intercept calls.
var defaultTransport = &gohttp.Transport{
	MaxIdleConns:        100,
	MaxIdleConnsPerHost: 10,
	IdleConnTimeout:     90 * time.Second,
}

// DefaultClient is the shared HTTP client used by all outgoing requests.
// Tests can swap DefaultClient.Transport to inject mocks:
//
//	http.DefaultClient.Transport = myMockTransport
//	defer http.ResetTransport()
var DefaultClient = &gohttp.Client{
	Transport: defaultTransport,
}

// ResetTransport restores the production transport on DefaultClient.
// Call via defer after injecting a test transport.
func ResetTransport() {
	DefaultClient.Transport = defaultTransport
}

// ------------------- Request -------------------

type multipartFile struct {
	field    string
	filename string
	reader   io.Reader
}

// Request is a fluent HTTP request builder.
type Request struct {
	method  string
	url     string
	headers map[string]string
	query   url.Values
	body    interface{}
	file    *multipartFile
	fields  map[string]string
	timeout time.Duration
}

// Get starts a GET request.
func Get(target string) *Request { return newRequest(gohttp.MethodGet, target) }

// Post starts a POST request.
func Post(target string) *Request { return newRequest(gohttp.MethodPost, target) }

// Put starts a PUT request.
func Put(target string) *Request { return newRequest(gohttp.MethodPut, target) }

// Delete starts a DELETE request.
func Delete(target string) *Request { return newRequest(gohttp.MethodDelete, target) }

func newRequest(method, target string) *Request {
	return &Request{
		method:  method,
		url:     target,
		headers: map[string]string{"Accept": "application/json"},
		query:   url.Values{},
		timeout: config.HTTPTimeout(),
	}
}

// Header adds a single header to the request.
func (r *Request) Header(key, value string) *Request {
	r.headers[key] = value
	return r
}

// Bearer sets the Authorization: Bearer <token> header. A blank token leaves
// the request unauthenticated.
func (r *Request) Bearer(token string) *Request {
	if token == "" {
		return r
	}
	return r.Header("Authorization", "Bearer "+token)
}

// Query adds a query-string parameter. Empty values are dropped so list
// params like search="" never reach the wire.
func (r *Request) Query(key, value string) *Request {
	if value != "" {
		r.query.Set(key, value)
	}
	return r
}

// QueryInt adds an integer query parameter.
func (r *Request) QueryInt(key string, value int) *Request {
	return r.Query(key, strconv.Itoa(value))
}

// Body sets the request body. v is marshalled to JSON automatically.
// Pass a string or []byte to send raw bodies.
func (r *Request) Body(v interface{}) *Request {
	r.body = v
	return r
}

// File switches the request to multipart/form-data and attaches one file
// under the given form field. Extra form fields go through Field.
func (r *Request) File(field, filename string, reader io.Reader) *Request {
	r.file = &multipartFile{field: field, filename: filename, reader: reader}
	return r
}

// Field adds a plain form field to a multipart request. Ignored unless File
// was called.
func (r *Request) Field(key, value string) *Request {
	if r.fields == nil {
		r.fields = make(map[string]string)
	}
	r.fields[key] = value
	return r
}

// Timeout overrides the HTTP_TIMEOUT default for this request.
func (r *Request) Timeout(d time.Duration) *Request {
	r.timeout = d
	return r
}

// ------------------- Send -------------------

// Send executes the request. The full response body is read before Send
// returns, so Response needs no Close.
func (r *Request) Send(ctx context.Context) (*Response, error) {
	body, contentType, err := r.buildBody()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	target := r.url
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}

	req, err := gohttp.NewRequestWithContext(ctx, r.method, target, body)
	if err != nil {
		return nil, fmt.Errorf("http: build request: %w", err)
	}

	for k, v := range r.headers {
		req.Header.Set(k, v)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("X-Request-ID", reqid.New())

	start := time.Now()
	resp, err := DefaultClient.Do(req)
	if err != nil {
		metrics.ObserveAPICall(r.method, req.URL.Path, 0, time.Since(start))
		return nil, fmt.Errorf("http: send: %w", err)
	}

	raw, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	metrics.ObserveAPICall(r.method, req.URL.Path, resp.StatusCode, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("http: read body: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Raw:        raw,
	}, nil
}

func (r *Request) buildBody() (io.Reader, string, error) {
	if r.file != nil {
		return r.buildMultipart()
	}
	if r.body == nil {
		return nil, "", nil
	}
	switch v := r.body.(type) {
	case string:
		return bytes.NewBufferString(v), "text/plain", nil
	case []byte:
		return bytes.NewReader(v), "application/octet-stream", nil
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return nil, "", fmt.Errorf("http: marshal body: %w", err)
		}
		return bytes.NewReader(b), "application/json", nil
	}
}

func (r *Request) buildMultipart() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile(r.file.field, r.file.filename)
	if err != nil {
		return nil, "", fmt.Errorf("http: multipart file: %w", err)
	}
	if _, err := io.Copy(part, r.file.reader); err != nil {
		return nil, "", fmt.Errorf("http: multipart copy: %w", err)
	}

	for k, v := range r.fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, "", fmt.Errorf("http: multipart field %s: %w", k, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("http: multipart close: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

// ------------------- Response -------------------

// Response wraps the HTTP response with convenience methods.
type Response struct {
	StatusCode int
	Headers    gohttp.Header
	Raw        []byte
}

// OK reports whether the status code is 2xx.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// JSON unmarshals the response body into dest.
func (r *Response) JSON(dest interface{}) error {
	if err := json.Unmarshal(r.Raw, dest); err != nil {
		return fmt.Errorf("http: decode JSON: %w", err)
	}
	return nil
}

// Text returns the response body as a string.
func (r *Response) Text() string {
	return string(r.Raw)
}

// Header returns a single response header value.
func (r *Response) Header(key string) string {
	return r.Headers.Get(key)
}
