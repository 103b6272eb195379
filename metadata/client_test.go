package metadata

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticTokens(token string) *TokenCache {
	return NewTokenCache(func(ctx context.Context) (string, time.Duration, error) {
		return token, time.Hour, nil
	}, time.Second)
}

func TestGetShow_ReturnsParsedShow(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/shows/s1", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		fmt.Fprint(w, `{"id":"s1","title":"Alpha Station","genres":["sci-fi","drama"]}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, staticTokens("tok"), WithHTTPClient(server.Client()))

	show, err := client.GetShow(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, Show{ID: "s1", Title: "Alpha Station", Genres: []string{"sci-fi", "drama"}}, show)
}

func TestGetShow_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, staticTokens("tok"), WithHTTPClient(server.Client()))

	_, err := client.GetShow(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrShowNotFound)
}

func TestGetShow_RefreshesTokenOn401(t *testing.T) {
	var fetches atomic.Int64
	tokens := NewTokenCache(func(ctx context.Context) (string, time.Duration, error) {
		fetches.Add(1)
		return fmt.Sprintf("tok-%d", fetches.Load()), time.Hour, nil
	}, time.Second)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "Bearer tok-1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		fmt.Fprint(w, `{"id":"s1","title":"Alpha Station"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, tokens, WithHTTPClient(server.Client()))

	show, err := client.GetShow(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "Alpha Station", show.Title)
	assert.Equal(t, int64(2), fetches.Load())
}

func TestGetShow_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, staticTokens("tok"), WithHTTPClient(server.Client()))

	_, err := client.GetShow(context.Background(), "s1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 500")
}

func TestAPIKeyTokenSource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/oauth/token", r.URL.Path)
		fmt.Fprint(w, `{"access_token":"fresh","expires_in":900}`)
	}))
	defer server.Close()

	fetch := APIKeyTokenSource(server.URL, "api-key", server.Client())
	token, ttl, err := fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fresh", token)
	assert.Equal(t, 900*time.Second, ttl)
}

func TestAPIKeyTokenSource_RejectsEmptyToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"access_token":"","expires_in":900}`)
	}))
	defer server.Close()

	fetch := APIKeyTokenSource(server.URL, "api-key", server.Client())
	_, _, err := fetch(context.Background())
	assert.Error(t, err)
}
