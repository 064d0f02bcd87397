/*
 * Copyright © 2025 Bling Digital, All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Common sentinel errors
var (
	// ErrNotLoggedIn is returned when an operation requires an active session
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrLoginFailed is returned when the PIX session endpoint rejects a login
	ErrLoginFailed = errors.New("login failed")

	// ErrSessionExpired is returned when the server no longer honors the session
	ErrSessionExpired = errors.New("session expired")

	// ErrResponse is returned when a PIX endpoint answers with an error status
	ErrResponse = errors.New("unexpected API response")

	// ErrUnknownProject is returned when a project name cannot be resolved
	ErrUnknownProject = errors.New("unknown project")
)

// ResponseError represents a non-success answer from a PIX endpoint
type ResponseError struct {
	Status int
	Reason string
	Path   string
}

func (e *ResponseError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %d %s", e.Path, e.Status, e.Reason)
	}
	return fmt.Sprintf("%s: %d %s", e.Path, e.Status, http.StatusText(e.Status))
}

func (e *ResponseError) Is(target error) bool {
	if target == ErrResponse {
		return true
	}
	// an unauthorized answer on an established session means it expired
	return target == ErrSessionExpired && e.Status == http.StatusUnauthorized
}

// UnknownProjectError represents a project lookup that found nothing
type UnknownProjectError struct {
	Name string
}

func (e *UnknownProjectError) Error() string {
	return fmt.Sprintf("project %q not found", e.Name)
}

func (e *UnknownProjectError) Is(target error) bool {
	return target == ErrUnknownProject
}

// Helper functions for creating errors

// NewResponseError creates a new ResponseError
func NewResponseError(status int, reason, path string) error {
	return &ResponseError{Status: status, Reason: reason, Path: path}
}

// NewUnknownProjectError creates a new UnknownProjectError
func NewUnknownProjectError(name string) error {
	return &UnknownProjectError{Name: name}
}

// IsResponse checks if an error is a response error
func IsResponse(err error) bool {
	return errors.Is(err, ErrResponse)
}

// IsNotLoggedIn checks if an error is a not-logged-in error
func IsNotLoggedIn(err error) bool {
	return errors.Is(err, ErrNotLoggedIn)
}

// IsSessionExpired checks if an error is a session-expired error
func IsSessionExpired(err error) bool {
	return errors.Is(err, ErrSessionExpired)
}

// IsUnknownProject checks if an error is an unknown-project error
func IsUnknownProject(err error) bool {
	return errors.Is(err, ErrUnknownProject)
}

// StatusOf returns the HTTP status carried by err, or 0 when err carries none
func StatusOf(err error) int {
	var re *ResponseError
	if errors.As(err, &re) {
		return re.Status
	}
	return 0
}
