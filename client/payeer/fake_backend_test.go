package payeer

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	testAccount = "P1000000"
	authOK      = `{"auth_error":"0","errors":[]}`
)

type fakeReply struct {
	status int
	body   string
}

// fakeBackend stands in for the API endpoint. Replies are keyed by the
// "action" field; the credentials-only auth request has an empty action.
type fakeBackend struct {
	t        *testing.T
	server   *httptest.Server
	mu       sync.Mutex
	replies  map[string]fakeReply
	requests []url.Values
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	fb := &fakeBackend{
		t:       t,
		replies: map[string]fakeReply{"": {status: http.StatusOK, body: authOK}},
	}
	fb.server = httptest.NewServer(http.HandlerFunc(fb.handle))
	t.Cleanup(fb.server.Close)
	return fb
}

func (fb *fakeBackend) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost || r.URL.Path != apiPath {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	form, err := url.ParseQuery(string(raw))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	fb.mu.Lock()
	fb.requests = append(fb.requests, form)
	reply, ok := fb.replies[form.Get("action")]
	fb.mu.Unlock()

	if !ok {
		reply = fakeReply{status: http.StatusOK, body: `{"errors":["Unknown action"]}`}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(reply.status)
	_, _ = w.Write([]byte(reply.body))
}

func (fb *fakeBackend) reply(action Action, body string) {
	fb.replyStatus(action, http.StatusOK, body)
}

func (fb *fakeBackend) replyStatus(action Action, status int, body string) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.replies[string(action)] = fakeReply{status: status, body: body}
}

func (fb *fakeBackend) count() int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return len(fb.requests)
}

func (fb *fakeBackend) last() url.Values {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	require.NotEmpty(fb.t, fb.requests, "no request received")
	return fb.requests[len(fb.requests)-1]
}

func (fb *fakeBackend) config() *Config {
	return &Config{Account: testAccount, ApiId: "12345", Secret: "s3cr3t"}
}

func (fb *fakeBackend) client() *Client {
	fb.t.Helper()
	c, err := NewClient(fb.config(), WithBaseURL(fb.server.URL))
	require.NoError(fb.t, err)
	return c
}
