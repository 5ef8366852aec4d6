package httpx

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFastHTTPClient_Do(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("X-User-Agent", r.UserAgent())
		w.Header().Set("X-Token", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write(body)
	}))
	defer server.Close()

	client := NewFastHTTPClient(WithTimeout(2 * time.Second))
	req, err := http.NewRequest(http.MethodPost, server.URL+"/detect", bytes.NewReader([]byte(`{"image":"abc"}`)))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer secret")

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.JSONEq(t, `{"image":"abc"}`, string(body))
	assert.Equal(t, DefaultUserAgent, resp.Header.Get("X-User-Agent"))
	assert.Equal(t, "Bearer secret", resp.Header.Get("X-Token"))
}

func TestFastHTTPClient_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	req, err := http.NewRequest(http.MethodGet, url+"/health", nil)
	require.NoError(t, err)

	_, err = NewFastHTTPClient(WithTimeout(time.Second)).Do(req)

	assert.Error(t, err)
}
