/*
 * Copyright © 2025 Bling Digital, All rights reserved.
 */

// Package sessiontest provides a mock session implementation for testing
// behaviors and the promotion layer without a PIX server.
package sessiontest

import (
	"context"
	"fmt"
	"sync"

	"github.com/blingdigital/pix"
	"github.com/blingdigital/pix/factory"
	"github.com/blingdigital/pix/model"
	"github.com/blingdigital/pix/registry"
)

// Call records one session call issued by code under test.
type Call struct {
	Method  string
	Path    string
	Payload any
	Headers map[string]string
}

// Session is a mock implementation of pix.Session plus the model
// package's session contracts. Canned payloads are registered per path
// and promoted through a real factory on Get, so behaviors under test see
// the same object shapes a live session would produce.
type Session struct {
	mu           sync.Mutex
	factory      *factory.Factory
	responses    map[string]any
	rawResponses map[string][]byte
	calls        []Call
	getErr       error
	writeErr     error
	activeID     string
}

var (
	_ pix.Session            = (*Session)(nil)
	_ model.ProjectActivator = (*Session)(nil)
	_ model.MediaGetter      = (*Session)(nil)
)

// New creates a new mock Session promoting through registry.Default.
func New() *Session {
	return NewWithRegistry(registry.Default)
}

// NewWithRegistry creates a new mock Session promoting through reg.
func NewWithRegistry(reg *registry.Registry) *Session {
	s := &Session{
		responses:    make(map[string]any),
		rawResponses: make(map[string][]byte),
	}
	s.factory = factory.New(s, factory.WithRegistry(reg))
	return s
}

// Factory returns the factory promoting this session's responses.
func (s *Session) Factory() *factory.Factory { return s.factory }

// WithResponse registers a canned payload for an exact path (including
// any query string). The payload is objectified when fetched.
func (s *Session) WithResponse(path string, payload any) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[path] = payload
	return s
}

// WithRawResponse registers a canned raw body for GetRaw calls.
func (s *Session) WithRawResponse(path string, body []byte) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rawResponses[path] = body
	return s
}

// WithGetError makes Get and GetRaw calls return err.
func (s *Session) WithGetError(err error) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getErr = err
	return s
}

// WithWriteError makes Put, Post and Delete calls return err.
func (s *Session) WithWriteError(err error) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeErr = err
	return s
}

// Calls returns all recorded calls in order.
func (s *Session) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Call, len(s.calls))
	copy(out, s.calls)
	return out
}

// LastCall returns the most recent call, or a zero Call when none were
// made.
func (s *Session) LastCall() Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.calls) == 0 {
		return Call{}
	}
	return s.calls[len(s.calls)-1]
}

func (s *Session) record(c Call) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, c)
}

// Get returns the canned payload for path, objectified.
func (s *Session) Get(ctx context.Context, path string) (any, error) {
	s.record(Call{Method: "GET", Path: path})

	s.mu.Lock()
	err := s.getErr
	payload, ok := s.responses[path]
	s.mu.Unlock()

	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("no canned response for GET %s", path)
	}
	return s.factory.Objectify(payload), nil
}

// Put records the call and returns the canned payload for path, if any.
func (s *Session) Put(ctx context.Context, path string, payload any) (any, error) {
	return s.write("PUT", path, payload)
}

// Post records the call and returns the canned payload for path, if any.
func (s *Session) Post(ctx context.Context, path string, payload any) (any, error) {
	return s.write("POST", path, payload)
}

// Delete records the call and returns the canned payload for path, if any.
func (s *Session) Delete(ctx context.Context, path string, payload any) (any, error) {
	return s.write("DELETE", path, payload)
}

func (s *Session) write(method, path string, payload any) (any, error) {
	s.record(Call{Method: method, Path: path, Payload: payload})

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writeErr != nil {
		return nil, s.writeErr
	}
	return s.responses[path], nil
}

// GetRaw returns the canned raw body for path.
func (s *Session) GetRaw(ctx context.Context, path string, headers map[string]string) ([]byte, error) {
	s.record(Call{Method: "GET", Path: path, Headers: headers})

	s.mu.Lock()
	err := s.getErr
	body, ok := s.rawResponses[path]
	s.mu.Unlock()

	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("no canned raw response for GET %s", path)
	}
	return body, nil
}

// ActiveProjectID implements model.ProjectActivator.
func (s *Session) ActiveProjectID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeID
}

// ActivateProject implements model.ProjectActivator.
func (s *Session) ActivateProject(ctx context.Context, project *model.Project) error {
	s.record(Call{Method: "ACTIVATE", Path: project.ID()})

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writeErr != nil {
		return s.writeErr
	}
	s.activeID = project.ID()
	return nil
}
