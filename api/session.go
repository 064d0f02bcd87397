/*
 * Copyright © 2025 Bling Digital, All rights reserved.
 */

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/blingdigital/pix"
	perrors "github.com/blingdigital/pix/errors"
	"github.com/blingdigital/pix/factory"
	"github.com/blingdigital/pix/model"
	"github.com/blingdigital/pix/registry"
)

// Session manages all calls to the PIX REST endpoints. It tracks the
// logged-in user and the current active project; PIX answers differently
// depending on both. Responses with a JSON accept header are promoted
// through the session's factory, so results come back as objects rather
// than bare maps.
type Session struct {
	cfg     Config
	baseURL string
	client  *http.Client
	log     *slog.Logger
	reg     *registry.Registry
	factory *factory.Factory

	mu       sync.Mutex
	headers  map[string]string
	loggedIn bool

	projects []*model.Project
	byName   map[string]*model.Project
	active   *model.Project
}

var (
	_ pix.Session            = (*Session)(nil)
	_ model.ProjectActivator = (*Session)(nil)
	_ model.MediaGetter      = (*Session)(nil)
)

// NewSession opens a session with the configured PIX host and logs in.
func NewSession(ctx context.Context, cfg Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	s := &Session{
		cfg:     cfg,
		baseURL: fmt.Sprintf("https://%s/developer/api/2", cfg.Host),
		log:     slog.Default(),
		headers: map[string]string{
			"Content-Type": "application/json;charset=utf-8",
			"Accept":       "application/json;charset=utf-8",
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.client == nil {
		s.client = &http.Client{Timeout: cfg.Timeout}
	}
	if s.client.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("creating cookie jar: %w", err)
		}
		s.client.Jar = jar
	}

	var fopts []factory.Option
	if s.reg != nil {
		fopts = append(fopts, factory.WithRegistry(s.reg))
	}
	s.factory = factory.New(s, fopts...)

	if err := s.Login(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Factory returns the factory promoting this session's responses.
func (s *Session) Factory() *factory.Factory { return s.factory }

// Login starts a PIX session for the configured user.
func (s *Session) Login(ctx context.Context) error {
	s.mu.Lock()
	s.headers["X-PIX-App-Key"] = s.cfg.AppKey
	s.mu.Unlock()

	payload := map[string]any{
		"username": s.cfg.Username,
		"password": s.cfg.password(),
	}
	resp, _, err := s.do(ctx, http.MethodPut, "/session/", payload, nil)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("%w: %s", perrors.ErrLoginFailed, resp.Status)
	}

	s.mu.Lock()
	s.loggedIn = true
	s.mu.Unlock()
	return nil
}

// Logout ends the PIX session.
func (s *Session) Logout(ctx context.Context) error {
	_, _, err := s.do(ctx, http.MethodDelete, "/session/", nil, nil)

	s.mu.Lock()
	s.loggedIn = false
	s.active = nil
	s.mu.Unlock()
	return err
}

// TimeRemaining returns the time remaining for the current session.
func (s *Session) TimeRemaining(ctx context.Context) (any, error) {
	return s.Get(ctx, "/session/time_remaining")
}

// Get issues a GET call and promotes the JSON result through the factory.
func (s *Session) Get(ctx context.Context, path string) (any, error) {
	resp, body, err := s.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, perrors.NewResponseError(resp.StatusCode, "", path)
	}
	return s.processResult(body)
}

// Put issues a PUT call.
func (s *Session) Put(ctx context.Context, path string, payload any) (any, error) {
	return s.write(ctx, http.MethodPut, path, payload)
}

// Post issues a POST call.
func (s *Session) Post(ctx context.Context, path string, payload any) (any, error) {
	return s.write(ctx, http.MethodPost, path, payload)
}

// Delete issues a DELETE call.
func (s *Session) Delete(ctx context.Context, path string, payload any) (any, error) {
	return s.write(ctx, http.MethodDelete, path, payload)
}

// GetRaw issues a GET call with extra headers overlaid and returns the
// response body untouched. Used for media endpoints that answer with
// images or XML.
func (s *Session) GetRaw(ctx context.Context, path string, headers map[string]string) ([]byte, error) {
	resp, body, err := s.do(ctx, http.MethodGet, path, nil, headers)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, perrors.NewResponseError(resp.StatusCode, "", path)
	}
	return body, nil
}

// WithHeaders runs fn with the session headers temporarily overlaid by h,
// restoring the originals afterwards.
func (s *Session) WithHeaders(h map[string]string, fn func() error) error {
	s.mu.Lock()
	orig := s.headers
	overlay := make(map[string]string, len(orig)+len(h))
	for k, v := range orig {
		overlay[k] = v
	}
	for k, v := range h {
		overlay[k] = v
	}
	s.headers = overlay
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.headers = orig
		s.mu.Unlock()
	}()
	return fn()
}

// Projects loads all projects the logged-in user has access to. The
// result is cached for the lifetime of the session.
func (s *Session) Projects(ctx context.Context) ([]*model.Project, error) {
	s.mu.Lock()
	loggedIn, cached := s.loggedIn, s.projects
	s.mu.Unlock()

	if !loggedIn {
		return nil, fmt.Errorf("fetching projects: %w", perrors.ErrNotLoggedIn)
	}
	if cached != nil {
		return cached, nil
	}

	res, err := s.Get(ctx, "/projects?limit=3000")
	if err != nil {
		return nil, err
	}
	if m, ok := res.(map[string]any); ok && m["type"] == "bad_request" {
		return nil, perrors.NewResponseError(
			http.StatusBadRequest, fmt.Sprint(m["user_message"]), "/projects")
	}

	list, _ := res.([]any)
	projects := make([]*model.Project, 0, len(list))
	byName := make(map[string]*model.Project, len(list))
	for _, item := range list {
		o, ok := item.(*pix.Object)
		if !ok {
			continue
		}
		if p, ok := pix.As[*model.Project](o); ok {
			projects = append(projects, p)
			byName[p.Identifier()] = p
		}
	}

	s.mu.Lock()
	s.projects, s.byName = projects, byName
	s.mu.Unlock()
	return projects, nil
}

// LoadProject makes the named project the session's active project.
func (s *Session) LoadProject(ctx context.Context, name string) (*model.Project, error) {
	if _, err := s.Projects(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	p := s.byName[name]
	s.mu.Unlock()
	if p == nil {
		return nil, perrors.NewUnknownProjectError(name)
	}
	if err := s.ActivateProject(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ActivateProject implements model.ProjectActivator.
func (s *Session) ActivateProject(ctx context.Context, project *model.Project) error {
	_, err := s.Put(ctx, "/session/active_project", map[string]any{"id": project.ID()})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.active = project
	s.mu.Unlock()
	return nil
}

// ActiveProject returns the session's active project, or nil when none
// has been loaded.
func (s *Session) ActiveProject() *model.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// ActiveProjectID implements model.ProjectActivator.
func (s *Session) ActiveProjectID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return ""
	}
	return s.active.ID()
}

// do issues one HTTP call. Paths are resolved against the session base
// URL unless already absolute, and every request carries the session
// headers plus a fresh request id.
func (s *Session) do(ctx context.Context, method, path string, payload any, extra map[string]string) (*http.Response, []byte, error) {
	url := path
	if !strings.Contains(path, "://") {
		url = s.baseURL + path
	}

	var reqBody io.Reader
	if payload != nil {
		switch v := payload.(type) {
		case []byte:
			reqBody = bytes.NewReader(v)
		default:
			b, err := json.Marshal(v)
			if err != nil {
				return nil, nil, fmt.Errorf("encoding %s %s payload: %w", method, path, err)
			}
			reqBody = bytes.NewReader(b)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, nil, fmt.Errorf("building %s %s: %w", method, path, err)
	}

	s.mu.Lock()
	for k, v := range s.headers {
		req.Header.Set(k, v)
	}
	s.mu.Unlock()
	for k, v := range extra {
		req.Header.Set(k, v)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s %s response: %w", method, path, err)
	}

	s.log.Debug("pix api call",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start))
	return resp, body, nil
}

// processResult promotes JSON results through the factory. When the
// session currently accepts something other than JSON the raw bytes come
// back unchanged.
func (s *Session) processResult(body []byte) (any, error) {
	s.mu.Lock()
	accept := s.headers["Accept"]
	s.mu.Unlock()

	if !strings.Contains(accept, "application/json") {
		return body, nil
	}
	if len(body) == 0 {
		return nil, nil
	}
	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return s.factory.Objectify(data), nil
}

// write issues a mutating call. Results are decoded from JSON when
// possible but never promoted; the PIX write endpoints answer with status
// payloads, not objects.
func (s *Session) write(ctx context.Context, method, path string, payload any) (any, error) {
	resp, body, err := s.do(ctx, method, path, payload, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, perrors.NewResponseError(resp.StatusCode, "", path)
	}
	if len(body) == 0 {
		return nil, nil
	}
	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return body, nil
	}
	return data, nil
}
