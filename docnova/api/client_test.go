package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_PostJSON_Success(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("R-Auth")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"answer":42}`))
	}))
	defer srv.Close()

	c := New(Dev, WithBaseURL(srv.URL))

	var res struct {
		Answer int `json:"answer"`
	}
	err := c.PostJSON(context.Background(), "/whatever", "tok-123", map[string]string{"q": "x"}, &res)

	require.NoError(t, err)
	assert.Equal(t, 42, res.Answer)
	assert.Equal(t, "tok-123", gotAuth)
}

func TestClient_Unauthorized_NotifiesOnce(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"expired"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New(Dev, WithBaseURL(srv.URL))

	calls := 0
	c.OnSessionExpired(func() { calls++ })

	var res struct{}
	err := c.PostJSON(context.Background(), "/x", "stale", nil, &res)

	var re *RequestError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, CategorySessionExpired, re.Category)
	assert.Equal(t, 401, re.StatusCode)
	assert.Equal(t, 1, calls, "one failing call signals exactly once")
}

func TestClient_ErrorCarriesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte(`{"message":"short and stout"}`))
	}))
	defer srv.Close()

	c := New(Dev, WithBaseURL(srv.URL))

	err := c.PostJSONNoAuth(context.Background(), "/x", nil, &struct{}{})

	var re *RequestError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, CategoryGeneric, re.Category)
	assert.Equal(t, "short and stout", re.ServerMessage)
}

func TestClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	c := New(Dev, WithBaseURL(srv.URL), WithTimeout(30*time.Millisecond))

	err := c.PostJSONNoAuth(context.Background(), "/slow", nil, &struct{}{})

	var re *RequestError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, CategoryTimeout, re.Category)
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := New(Dev, WithBaseURL(url))

	err := c.PostJSONNoAuth(context.Background(), "/gone", nil, &struct{}{})

	var re *RequestError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, CategoryConnection, re.Category)
}

func TestEnvironment_UnmarshalText(t *testing.T) {
	var e Environment
	require.NoError(t, e.UnmarshalText([]byte(" Prod ")))
	assert.Equal(t, Prod, e)
	assert.Equal(t, "https://api.docnova.ai", e.BaseURL())

	require.NoError(t, e.UnmarshalText([]byte("dev")))
	assert.Equal(t, Dev, e)

	assert.Error(t, e.UnmarshalText([]byte("staging")))
}
