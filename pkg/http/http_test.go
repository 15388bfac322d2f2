package http

import (
	"context"
	"encoding/json"
	"io"
	gohttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reynaldiarya/flashpos/config"
)

type echo struct {
	Method string            `json:"method"`
	Path   string            `json:"path"`
	Query  map[string]string `json:"query"`
	Header map[string]string `json:"header"`
	Body   string            `json:"body"`
}

func echoServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(gohttp.HandlerFunc(func(w gohttp.ResponseWriter, r *gohttp.Request) {
		body, _ := io.ReadAll(r.Body)
		out := echo{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  map[string]string{},
			Header: map[string]string{},
			Body:   string(body),
		}
		for k := range r.URL.Query() {
			out.Query[k] = r.URL.Query().Get(k)
		}
		for _, k := range []string{"Authorization", "Content-Type", "Accept", "X-Request-ID", "X-Custom"} {
			if v := r.Header.Get(k); v != "" {
				out.Header[k] = v
			}
		}
		json.NewEncoder(w).Encode(out) //nolint:errcheck
	}))
	t.Cleanup(srv.Close)
	return srv
}

func sendEcho(t *testing.T, req *Request) echo {
	t.Helper()
	resp, err := req.Send(context.Background())
	require.NoError(t, err)
	require.True(t, resp.OK())

	var out echo
	require.NoError(t, resp.JSON(&out))
	return out
}

func TestQueryDropsEmptyValues(t *testing.T) {
	srv := echoServer(t)

	out := sendEcho(t, Get(srv.URL+"/customers").
		Query("search", "").
		QueryInt("page", 2).
		QueryInt("limit", 10))

	assert.Equal(t, "GET", out.Method)
	assert.NotContains(t, out.Query, "search", "empty params never reach the wire")
	assert.Equal(t, "2", out.Query["page"])
	assert.Equal(t, "10", out.Query["limit"])
}

func TestBearerSkipsBlankToken(t *testing.T) {
	srv := echoServer(t)

	out := sendEcho(t, Get(srv.URL+"/me").Bearer(""))
	assert.NotContains(t, out.Header, "Authorization")

	out = sendEcho(t, Get(srv.URL+"/me").Bearer("tok-123"))
	assert.Equal(t, "Bearer tok-123", out.Header["Authorization"])
}

func TestJSONBody(t *testing.T) {
	srv := echoServer(t)

	out := sendEcho(t, Post(srv.URL+"/customers").Body(map[string]string{"name": "Budi"}))

	assert.Equal(t, "POST", out.Method)
	assert.Equal(t, "application/json", out.Header["Content-Type"])
	assert.JSONEq(t, `{"name":"Budi"}`, out.Body)
}

func TestRawStringBody(t *testing.T) {
	srv := echoServer(t)

	out := sendEcho(t, Put(srv.URL+"/raw").Body("plain payload"))
	assert.Equal(t, "text/plain", out.Header["Content-Type"])
	assert.Equal(t, "plain payload", out.Body)
}

func TestMultipartFileAndFields(t *testing.T) {
	srv := httptest.NewServer(gohttp.HandlerFunc(func(w gohttp.ResponseWriter, r *gohttp.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		content, _ := io.ReadAll(file)

		json.NewEncoder(w).Encode(map[string]string{ //nolint:errcheck
			"filename": header.Filename,
			"content":  string(content),
			"kind":     r.FormValue("kind"),
		})
	}))
	t.Cleanup(srv.Close)

	resp, err := Post(srv.URL+"/upload").
		File("image", "photo.png", strings.NewReader("png-bytes")).
		Field("kind", "product").
		Send(context.Background())
	require.NoError(t, err)
	require.True(t, resp.OK())

	var out map[string]string
	require.NoError(t, resp.JSON(&out))
	assert.Equal(t, "photo.png", out["filename"])
	assert.Equal(t, "png-bytes", out["content"])
	assert.Equal(t, "product", out["kind"])
}

func TestEveryRequestCarriesARequestID(t *testing.T) {
	srv := echoServer(t)

	a := sendEcho(t, Get(srv.URL+"/one"))
	b := sendEcho(t, Get(srv.URL+"/two"))

	assert.NotEmpty(t, a.Header["X-Request-ID"])
	assert.NotEmpty(t, b.Header["X-Request-ID"])
	assert.NotEqual(t, a.Header["X-Request-ID"], b.Header["X-Request-ID"])
}

func TestResponseHelpers(t *testing.T) {
	srv := httptest.NewServer(gohttp.HandlerFunc(func(w gohttp.ResponseWriter, r *gohttp.Request) {
		w.Header().Set("X-Custom", "yes")
		w.WriteHeader(gohttp.StatusNotFound)
		io.WriteString(w, `{"message":"Not found"}`) //nolint:errcheck
	}))
	t.Cleanup(srv.Close)

	resp, err := Get(srv.URL + "/missing").Send(context.Background())
	require.NoError(t, err, "non-2xx statuses are not transport errors")

	assert.False(t, resp.OK())
	assert.Equal(t, gohttp.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "yes", resp.Header("X-Custom"))
	assert.Equal(t, `{"message":"Not found"}`, resp.Text())

	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, resp.JSON(&body))
	assert.Equal(t, "Not found", body.Message)
}

func TestTimeoutDefaultsFromConfig(t *testing.T) {
	config.Set("HTTP_TIMEOUT", "5s")
	t.Cleanup(func() { config.Set("HTTP_TIMEOUT", "") })

	r := Get("http://backend.test/customers")
	assert.Equal(t, 5*time.Second, r.timeout)

	r = r.Timeout(time.Second)
	assert.Equal(t, time.Second, r.timeout, "per-request override wins")
}

type staticTransport struct{}

func (staticTransport) RoundTrip(r *gohttp.Request) (*gohttp.Response, error) {
	return &gohttp.Response{
		StatusCode: gohttp.StatusOK,
		Header:     gohttp.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(`{"ok":true}`)),
		Request:    r,
	}, nil
}

func TestTransportInjection(t *testing.T) {
	DefaultClient.Transport = staticTransport{}
	defer ResetTransport()

	resp, err := Get("http://unreachable.invalid/anything").Send(context.Background())
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, resp.Text())

	ResetTransport()
	assert.Same(t, defaultTransport, DefaultClient.Transport)
}
