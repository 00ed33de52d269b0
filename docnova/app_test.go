package docnova_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docnova/go-docnova-client/docnova"
	"github.com/docnova/go-docnova-client/docnova/api"
	"github.com/docnova/go-docnova-client/docnova/config"
	"github.com/docnova/go-docnova-client/docnova/i18n"
	"github.com/docnova/go-docnova-client/docnova/model"
)

func newTestApp(t *testing.T, handler http.Handler) *docnova.App {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		Environment: api.Dev,
		CompanyID:   uuid.MustParse(config.DefaultCompanyID),
		Locale:      i18n.TR,
		SessionFile: filepath.Join(t.TempDir(), "session.json"),
	}
	return docnova.NewAppWithClient(cfg, api.New(api.Dev, api.WithBaseURL(srv.URL)))
}

func TestApp_LoginThenSearch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login/dev", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"u-1","jwt":"tok-1"}`))
	})
	mux.HandleFunc("/invoice/search", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "tok-1", r.Header.Get("R-Auth"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"invoices":{"content":[{"id":"a"}],"pageable":{"pageNumber":0,"pageSize":20},"totalElements":1}}`))
	})

	app := newTestApp(t, mux)

	require.NoError(t, app.Session.Login(context.Background(), model.Credentials{
		Email:    "user@example.com",
		Password: "secret",
	}))
	require.True(t, app.Session.Current().IsAuthenticated)

	state := app.Search(context.Background(), app.DefaultQuery())

	assert.Empty(t, state.Err)
	require.Len(t, state.Items, 1)
	assert.Equal(t, int64(1), state.Pagination.Total)
}

func TestApp_UnauthorizedSearchTearsSessionDown(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login/dev", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"u-1","jwt":"tok-1"}`))
	})
	mux.HandleFunc("/invoice/search", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"expired"}`, http.StatusUnauthorized)
	})

	app := newTestApp(t, mux)
	require.NoError(t, app.Session.Login(context.Background(), model.Credentials{
		Email:    "user@example.com",
		Password: "secret",
	}))

	state := app.Search(context.Background(), app.DefaultQuery())

	loc := i18n.New(i18n.TR)
	assert.Equal(t, loc.Category(api.CategorySessionExpired), state.Err)
	assert.False(t, app.Session.Current().IsAuthenticated, "401 forces logout")
}

func TestApp_SearchFailureKeepsSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login/dev", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"u-1","jwt":"tok-1"}`))
	})
	mux.HandleFunc("/invoice/search", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"boom"}`, http.StatusInternalServerError)
	})

	app := newTestApp(t, mux)
	require.NoError(t, app.Session.Login(context.Background(), model.Credentials{
		Email:    "user@example.com",
		Password: "secret",
	}))

	state := app.Search(context.Background(), app.DefaultQuery())

	loc := i18n.New(i18n.TR)
	assert.Equal(t, loc.Category(api.CategoryServerError), state.Err)
	assert.True(t, app.Session.Current().IsAuthenticated, "only unauthorized is fatal to the session")
}

func TestApp_RestoresPersistedSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login/dev", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"u-1","jwt":"tok-1"}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		Environment: api.Dev,
		CompanyID:   uuid.MustParse(config.DefaultCompanyID),
		Locale:      i18n.TR,
		SessionFile: filepath.Join(t.TempDir(), "session.json"),
	}

	first := docnova.NewAppWithClient(cfg, api.New(api.Dev, api.WithBaseURL(srv.URL)))
	require.NoError(t, first.Session.Login(context.Background(), model.Credentials{
		Email:    "user@example.com",
		Password: "secret",
	}))

	second := docnova.NewAppWithClient(cfg, api.New(api.Dev, api.WithBaseURL(srv.URL)))
	cur := second.Session.Current()
	assert.True(t, cur.IsAuthenticated)
	assert.Equal(t, "tok-1", cur.Token)
}
