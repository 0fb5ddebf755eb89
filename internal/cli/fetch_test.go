// Package cli — fetch_test.go exercises the end-to-end fetch pipeline
// against an httptest server, asserting on the exact JSON envelope the
// command prints.
package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeEnvFile writes a dotenv file into a temp dir and returns its path.
func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// runFetchToString drives runFetch and returns what it printed.
func runFetchToString(t *testing.T, opts runOptions) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, runFetch(context.Background(), &buf, opts))
	return buf.String()
}

// TestRunFetch_Success verifies the happy path: the key from the env file
// reaches the API, and the items pass through opaquely with their count.
func TestRunFetch_Success(t *testing.T) {
	chdir(t, t.TempDir())

	var gotAPIKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("Api-Key")
		_, _ = w.Write([]byte(`{"Items": [{"id": 1}, {"id": 2}]}`))
	}))
	defer srv.Close()
	t.Setenv("WORKORDERS_BASE_URL", srv.URL)

	out := runFetchToString(t, runOptions{envPath: writeEnvFile(t, "API_KEY=abc123\n")})

	assert.Equal(t, "abc123", gotAPIKey)
	assert.JSONEq(t,
		`{"success": true, "workOrders": [{"id": 1}, {"id": 2}], "count": 2}`,
		out)
}

// TestRunFetch_EmptyItems verifies an empty page renders [] and count 0.
func TestRunFetch_EmptyItems(t *testing.T) {
	chdir(t, t.TempDir())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()
	t.Setenv("WORKORDERS_BASE_URL", srv.URL)

	out := runFetchToString(t, runOptions{envPath: writeEnvFile(t, "API_KEY=abc123\n")})

	assert.JSONEq(t, `{"success": true, "workOrders": [], "count": 0}`, out)
}

// TestRunFetch_HTTPError verifies a 404 becomes the "API error" envelope.
func TestRunFetch_HTTPError(t *testing.T) {
	chdir(t, t.TempDir())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()
	t.Setenv("WORKORDERS_BASE_URL", srv.URL)

	out := runFetchToString(t, runOptions{envPath: writeEnvFile(t, "API_KEY=abc123\n")})

	assert.JSONEq(t, `{"success": false, "message": "API error: 404"}`, out)
}

// TestRunFetch_MissingEnvFile verifies the not-found message names the path.
func TestRunFetch_MissingEnvFile(t *testing.T) {
	chdir(t, t.TempDir())

	path := filepath.Join(t.TempDir(), "absent", ".env")
	out := runFetchToString(t, runOptions{envPath: path})

	assert.JSONEq(t,
		`{"success": false, "message": "Environment file not found: `+path+`"}`,
		out)
}

// TestRunFetch_MissingAPIKey covers both an absent key and an empty one.
func TestRunFetch_MissingAPIKey(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "key absent", content: "OTHER=value\n"},
		{name: "key empty", content: "API_KEY=\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdir(t, t.TempDir())

			out := runFetchToString(t, runOptions{envPath: writeEnvFile(t, tt.content)})
			assert.JSONEq(t,
				`{"success": false, "message": "API_KEY not found in .env file"}`,
				out)
		})
	}
}

// TestRunFetch_Timeout verifies a slow response yields a failure envelope
// with the "Request error:" prefix.
func TestRunFetch_Timeout(t *testing.T) {
	chdir(t, t.TempDir())

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer func() {
		close(release)
		srv.Close()
	}()
	t.Setenv("WORKORDERS_BASE_URL", srv.URL)
	t.Setenv("WORKORDERS_TIMEOUT", "50ms")

	out := runFetchToString(t, runOptions{envPath: writeEnvFile(t, "API_KEY=abc123\n")})

	var envelope struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &envelope))
	assert.False(t, envelope.Success)
	assert.True(t, strings.HasPrefix(envelope.Message, "Request error:"),
		"message %q should be prefixed with \"Request error:\"", envelope.Message)
}

// TestRunFetch_ParseError verifies a malformed body yields a failure
// envelope with the "Request error:" prefix.
func TestRunFetch_ParseError(t *testing.T) {
	chdir(t, t.TempDir())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json at all`))
	}))
	defer srv.Close()
	t.Setenv("WORKORDERS_BASE_URL", srv.URL)

	out := runFetchToString(t, runOptions{envPath: writeEnvFile(t, "API_KEY=abc123\n")})

	assert.Contains(t, out, `"success": false`)
	assert.Contains(t, out, "Request error: malformed JSON in API response")
}

// TestRunFetch_SettingsFileEnvPath verifies the YAML settings file can
// point at the dotenv file when no flag is given.
func TestRunFetch_SettingsFileEnvPath(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Items": [{"id": 7}]}`))
	}))
	defer srv.Close()
	t.Setenv("WORKORDERS_BASE_URL", srv.URL)

	envPath := writeEnvFile(t, "API_KEY=abc123\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".workorders.yaml"),
		[]byte("envPath: "+envPath+"\n"), 0o600))

	out := runFetchToString(t, runOptions{})
	assert.JSONEq(t, `{"success": true, "workOrders": [{"id": 7}], "count": 1}`, out)
}
