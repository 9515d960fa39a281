package hf

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClientAsk(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody askRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"answer":"INV-2023-001","score":0.93}`))
	}))
	defer srv.Close()

	c := NewClient(Config{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Model:   "some-qa-model",
	}, quietLogger())

	ans, err := c.Ask(context.Background(), "What is the invoice number?", "Invoice Number: INV-2023-001")
	require.NoError(t, err)

	assert.Equal(t, "INV-2023-001", ans.Answer)
	assert.Equal(t, 0.93, ans.Score)
	assert.Equal(t, "/models/some-qa-model", gotPath)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "What is the invoice number?", gotBody.Inputs.Question)
	assert.Equal(t, "Invoice Number: INV-2023-001", gotBody.Inputs.Context)
}

func TestClientAskNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model is loading", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, Model: "m"}, quietLogger())

	_, err := c.Ask(context.Background(), "q", "ctx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestClientAskRejectsMalformedResponse(t *testing.T) {
	payloads := []string{
		`{"answer":"x"}`,
		`{"answer":"x","score":1.5}`,
		`{"answer":42,"score":0.5}`,
		`[]`,
	}
	for _, payload := range payloads {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(payload))
		}))
		c := NewClient(Config{BaseURL: srv.URL, Model: "m"}, quietLogger())

		_, err := c.Ask(context.Background(), "q", "ctx")
		assert.Error(t, err, payload)
		srv.Close()
	}
}

func TestResolverCachesPerModel(t *testing.T) {
	r := NewResolver(Config{BaseURL: "http://localhost:1"}, quietLogger())

	a1, err := r.Resolve("model-a")
	require.NoError(t, err)
	a2, err := r.Resolve("model-a")
	require.NoError(t, err)
	b, err := r.Resolve("model-b")
	require.NoError(t, err)

	assert.Same(t, a1, a2)
	assert.NotSame(t, a1, b)
}

func TestClientConfigDefaults(t *testing.T) {
	c := NewClient(Config{Model: "m"}, nil)
	assert.Equal(t, "https://api-inference.huggingface.co", c.cfg.BaseURL)
	assert.Positive(t, c.cfg.Timeout)
}
