/*
 * Copyright © 2025 Bling Digital, All rights reserved.
 */

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blingdigital/pix"
	perrors "github.com/blingdigital/pix/errors"
	"github.com/blingdigital/pix/model"
)

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json;charset=utf-8")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// loginOK registers a login handler that hands out a session cookie.
func loginOK(t *testing.T, mux *http.ServeMux) {
	t.Helper()
	mux.HandleFunc("PUT /session/", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "PIXSESSION", Value: "abc"})
		w.WriteHeader(http.StatusCreated)
	})
}

func newTestSession(t *testing.T, mux *http.ServeMux) *Session {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	cfg := Config{
		Host:     "test.invalid",
		AppKey:   "app-key",
		Username: "user",
		Password: "pass",
	}
	s, err := NewSession(context.Background(), cfg, WithBaseURL(srv.URL))
	require.NoError(t, err)
	return s
}

func TestNewSessionLogsIn(t *testing.T) {
	mux := http.NewServeMux()
	var gotAppKey, gotRequestID string
	var gotPayload map[string]any
	mux.HandleFunc("PUT /session/", func(w http.ResponseWriter, r *http.Request) {
		gotAppKey = r.Header.Get("X-PIX-App-Key")
		gotRequestID = r.Header.Get("X-Request-Id")
		_ = json.NewDecoder(r.Body).Decode(&gotPayload)
		http.SetCookie(w, &http.Cookie{Name: "PIXSESSION", Value: "abc"})
		w.WriteHeader(http.StatusCreated)
	})

	_ = newTestSession(t, mux)

	assert.Equal(t, "app-key", gotAppKey)
	assert.NotEmpty(t, gotRequestID, "every call carries a request id")
	assert.Equal(t, map[string]any{"username": "user", "password": "pass"}, gotPayload)
}

func TestNewSessionLoginFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /session/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	cfg := Config{Host: "test.invalid", AppKey: "k", Username: "u", Password: "p"}
	_, err := NewSession(context.Background(), cfg, WithBaseURL(srv.URL))
	assert.ErrorIs(t, err, perrors.ErrLoginFailed)
}

func TestNewSessionValidatesConfig(t *testing.T) {
	_, err := NewSession(context.Background(), Config{})
	assert.Error(t, err)
}

func TestGetPromotes(t *testing.T) {
	ctx := context.Background()
	mux := http.NewServeMux()
	loginOK(t, mux)

	var gotCookie bool
	mux.HandleFunc("GET /items/1", func(w http.ResponseWriter, r *http.Request) {
		_, err := r.Cookie("PIXSESSION")
		gotCookie = err == nil
		writeJSON(t, w, map[string]any{"class": "PIXNote", "id": "1"})
	})

	s := newTestSession(t, mux)

	res, err := s.Get(ctx, "/items/1")
	require.NoError(t, err)
	assert.True(t, gotCookie, "session cookie should ride along")

	obj, ok := res.(*pix.Object)
	require.True(t, ok, "JSON results are promoted")
	assert.Equal(t, "PIXNote", obj.Class())
	_, ok = pix.As[*model.Note](obj)
	assert.True(t, ok, "built-in behaviors are bound")
}

func TestGetErrorStatus(t *testing.T) {
	ctx := context.Background()
	mux := http.NewServeMux()
	loginOK(t, mux)
	mux.HandleFunc("GET /items/404", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	s := newTestSession(t, mux)

	_, err := s.Get(ctx, "/items/404")
	require.Error(t, err)
	assert.True(t, perrors.IsResponse(err))
	assert.Equal(t, http.StatusNotFound, perrors.StatusOf(err))
}

func TestProjectsAndLoadProject(t *testing.T) {
	ctx := context.Background()
	mux := http.NewServeMux()
	loginOK(t, mux)

	var projectCalls atomic.Int32
	mux.HandleFunc("GET /projects", func(w http.ResponseWriter, r *http.Request) {
		projectCalls.Add(1)
		assert.Equal(t, "3000", r.URL.Query().Get("limit"))
		writeJSON(t, w, []any{
			map[string]any{"class": "PIXProject", "id": "p1", "label": "FooBar"},
			map[string]any{"class": "PIXProject", "id": "p2", "label": "Other"},
		})
	})
	var activated map[string]any
	mux.HandleFunc("PUT /session/active_project", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&activated)
		writeJSON(t, w, map[string]any{"ok": true})
	})

	s := newTestSession(t, mux)

	projects, err := s.Projects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "FooBar", projects[0].Identifier())

	// cached for the session lifetime
	_, err = s.Projects(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(1), projectCalls.Load())

	p, err := s.LoadProject(ctx, "FooBar")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": "p1"}, activated)
	assert.Equal(t, p, s.ActiveProject())
	assert.Equal(t, "p1", s.ActiveProjectID())

	_, err = s.LoadProject(ctx, "Nope")
	assert.True(t, perrors.IsUnknownProject(err))
}

func TestProjectsRequireLogin(t *testing.T) {
	ctx := context.Background()
	mux := http.NewServeMux()
	loginOK(t, mux)
	mux.HandleFunc("DELETE /session/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	s := newTestSession(t, mux)
	require.NoError(t, s.Logout(ctx))

	_, err := s.Projects(ctx)
	assert.True(t, perrors.IsNotLoggedIn(err))
}

func TestProjectsBadRequest(t *testing.T) {
	ctx := context.Background()
	mux := http.NewServeMux()
	loginOK(t, mux)
	mux.HandleFunc("GET /projects", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{
			"type":         "bad_request",
			"user_message": "no access",
		})
	})

	s := newTestSession(t, mux)

	_, err := s.Projects(ctx)
	require.Error(t, err)
	assert.ErrorContains(t, err, "no access")
}

func TestWithHeaders(t *testing.T) {
	ctx := context.Background()
	mux := http.NewServeMux()
	loginOK(t, mux)

	mux.HandleFunc("GET /media/1/markup", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "text/xml", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "text/xml")
		_, _ = w.Write([]byte("<markup/>"))
	})
	mux.HandleFunc("GET /items/1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{"id": "1"})
	})

	s := newTestSession(t, mux)

	err := s.WithHeaders(map[string]string{"Accept": "text/xml"}, func() error {
		res, err := s.Get(ctx, "/media/1/markup")
		if err != nil {
			return err
		}
		// non-JSON accept: raw bytes, no promotion
		assert.Equal(t, []byte("<markup/>"), res)
		return nil
	})
	require.NoError(t, err)

	// headers restored: JSON handling is back
	res, err := s.Get(ctx, "/items/1")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": "1"}, res)
}

func TestGetRaw(t *testing.T) {
	ctx := context.Background()
	mux := http.NewServeMux()
	loginOK(t, mux)
	mux.HandleFunc("GET /media/9/frame/3", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "image/png", r.Header.Get("Accept"))
		_, _ = w.Write([]byte("png-bytes"))
	})

	s := newTestSession(t, mux)

	body, err := s.GetRaw(ctx, "/media/9/frame/3", map[string]string{"Accept": "image/png"})
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), body)

	_, err = s.GetRaw(ctx, "/media/missing", nil)
	assert.Equal(t, http.StatusNotFound, perrors.StatusOf(err))
}

func TestWriteDecodesWithoutPromotion(t *testing.T) {
	ctx := context.Background()
	mux := http.NewServeMux()
	loginOK(t, mux)

	var gotPayload map[string]any
	mux.HandleFunc("PUT /items/1", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotPayload)
		writeJSON(t, w, map[string]any{"class": "PIXNote", "id": "1"})
	})

	s := newTestSession(t, mux)

	res, err := s.Put(ctx, "/items/1", map[string]any{"flags": map[string]any{"viewed": "true"}})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"flags": map[string]any{"viewed": "true"}}, gotPayload)

	// write results stay plain data
	m, ok := res.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "PIXNote", m["class"])
}

func TestTimeRemaining(t *testing.T) {
	ctx := context.Background()
	mux := http.NewServeMux()
	loginOK(t, mux)
	mux.HandleFunc("GET /session/time_remaining", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{"seconds": 1200})
	})

	s := newTestSession(t, mux)

	res, err := s.TimeRemaining(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"seconds": float64(1200)}, res)
}
