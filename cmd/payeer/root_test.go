package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cliBackend answers by "action"; the credentials-only auth call has none.
type cliBackend struct {
	mu      sync.Mutex
	replies map[string]string
	forms   []url.Values
}

func newCLIBackend(t *testing.T, replies map[string]string) *cliBackend {
	t.Helper()
	b := &cliBackend{replies: map[string]string{"": `{"auth_error":"0","errors":[]}`}}
	for action, body := range replies {
		b.replies[action] = body
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		form, err := url.ParseQuery(string(raw))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		b.mu.Lock()
		b.forms = append(b.forms, form)
		body, ok := b.replies[form.Get("action")]
		b.mu.Unlock()
		if !ok {
			body = `{"errors":["Unknown action"]}`
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	t.Setenv("HOME", t.TempDir())
	t.Setenv("PAYEER_ACCOUNT", "P1000000")
	t.Setenv("PAYEER_API_ID", "12345")
	t.Setenv("PAYEER_API_SECRET", "s3cr3t")
	t.Setenv("PAYEER_BASE_URL", server.URL)
	t.Setenv("PAYEER_TIMEOUT", "5s")
	return b
}

func (b *cliBackend) last(t *testing.T) url.Values {
	t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()
	require.NotEmpty(t, b.forms)
	return b.forms[len(b.forms)-1]
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	root := newRootCmd(&app{})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestTransferCmd_Protect(t *testing.T) {
	b := newCLIBackend(t, map[string]string{"transfer": `{"errors":[],"historyId":42}`})

	out, err := runCLI(t, "transfer", "--to", "P1234567", "--sum", "10.50", "--cur-out", "RUB",
		"--comment", "rent", "--protect", "--protect-period", "3", "--protect-code", "abc")

	require.NoError(t, err)
	assert.Contains(t, out, "transfer sent")
	form := b.last(t)
	assert.Equal(t, "transfer", form.Get("action"))
	assert.Equal(t, "10.5", form.Get("sum"))
	assert.Equal(t, "P1234567", form.Get("to"))
	assert.Equal(t, "USD", form.Get("curIn"))
	assert.Equal(t, "RUB", form.Get("curOut"))
	assert.Equal(t, "rent", form.Get("comment"))
	assert.Equal(t, "Y", form.Get("protect"))
	assert.Equal(t, "3", form.Get("protectPeriod"))
	assert.Equal(t, "abc", form.Get("protectCode"))
}

func TestTransferCmd_WithoutProtect(t *testing.T) {
	b := newCLIBackend(t, map[string]string{"transfer": `{"errors":[],"historyId":0}`})

	out, err := runCLI(t, "transfer", "--to", "P1234567", "--sum", "1", "--protect-period", "3", "--protect-code", "abc")

	require.NoError(t, err)
	assert.Contains(t, out, "transfer was not registered")
	form := b.last(t)
	assert.False(t, form.Has("protect"))
	assert.False(t, form.Has("protectPeriod"))
	assert.False(t, form.Has("protectCode"))
}

func TestHistoryCmd_Flags(t *testing.T) {
	b := newCLIBackend(t, map[string]string{"history": `{"errors":[],"history":{"100":{"id":"100"}}}`})

	out, err := runCLI(t, "history", "--sort", "desc", "--count", "10",
		"--from", "2024-03-01", "--to", "2024-03-31 23:59:59", "--type", "incoming", "--append", "99")

	require.NoError(t, err)
	assert.JSONEq(t, `{"100":{"id":"100"}}`, out)
	form := b.last(t)
	assert.Equal(t, "history", form.Get("action"))
	assert.Equal(t, "desc", form.Get("sort"))
	assert.Equal(t, "10", form.Get("count"))
	assert.Equal(t, "2024-03-01 00:00:00", form.Get("from"))
	assert.Equal(t, "2024-03-31 23:59:59", form.Get("to"))
	assert.Equal(t, "incoming", form.Get("type"))
	assert.Equal(t, "99", form.Get("append"))
}

func TestCheckUserCmd_NotFound(t *testing.T) {
	newCLIBackend(t, map[string]string{"checkUser": `{"errors":["User not found"]}`})

	out, err := runCLI(t, "check-user", "P7654321")

	require.NoError(t, err)
	assert.Contains(t, out, "P7654321 not found")
}

func TestRootCmd_MissingCredentials(t *testing.T) {
	newCLIBackend(t, nil)
	t.Setenv("PAYEER_API_SECRET", "")

	_, err := runCLI(t, "balance")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "api secret is required")
}
