package letter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraft(t *testing.T) {
	var gotPath string
	var gotPayload map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		json.NewEncoder(w).Encode(map[string]string{
			"response": "Dear [Manager Name],\n\nI request leave for two days.",
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "llama3", 5*time.Second)
	draft := c.Draft(context.Background(), "two days off for a wedding", "Emily Jones")

	assert.Equal(t, "/api/generate", gotPath)
	assert.Equal(t, "llama3", gotPayload["model"])
	assert.Equal(t, false, gotPayload["stream"])
	assert.Contains(t, gotPayload["prompt"], "Emily Jones")
	assert.Contains(t, gotPayload["prompt"], "two days off for a wedding")

	assert.True(t, strings.HasPrefix(draft, "Dear [Manager Name],"))
	assert.False(t, strings.Contains(draft, Sentinel))
}

func TestDraft_TrimsQuotes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"response": "  \"Dear [Manager Name], short letter.\"  "})
	}))
	defer srv.Close()

	c := New(srv.URL, "llama3", 5*time.Second)
	draft := c.Draft(context.Background(), "short", "A")

	assert.Equal(t, "Dear [Manager Name], short letter.", draft)
}

func TestDraft_RemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, "llama3", 5*time.Second)
	draft := c.Draft(context.Background(), "some prompt", "A")

	assert.True(t, strings.HasPrefix(draft, Sentinel))
	assert.Contains(t, draft, "some prompt")
}

func TestDraft_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens here anymore

	c := New(srv.URL, "llama3", time.Second)
	draft := c.Draft(context.Background(), "my prompt text", "A")

	assert.True(t, strings.HasPrefix(draft, Sentinel))
	assert.Contains(t, draft, "my prompt text")
}

func TestDraft_EmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"response": "   "})
	}))
	defer srv.Close()

	c := New(srv.URL, "llama3", 5*time.Second)
	draft := c.Draft(context.Background(), "p", "A")

	assert.True(t, strings.HasPrefix(draft, Sentinel))
}

func TestDraft_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := New(srv.URL, "llama3", 5*time.Second)
	draft := c.Draft(context.Background(), "p", "A")

	assert.True(t, strings.HasPrefix(draft, Sentinel))
}

func TestNewDefaultsTimeout(t *testing.T) {
	c := New("http://localhost:11434", "llama3", 0)
	assert.Equal(t, 60*time.Second, c.HTTP.Timeout)
}
