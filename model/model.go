/*
 * Copyright © 2025 Bling Digital, All rights reserved.
 */

package model

import (
	"context"

	"github.com/blingdigital/pix"
)

// ProjectActivator is implemented by sessions that track an active project.
// PIX endpoints answer differently depending on the session's active
// project, so project-scoped behaviors activate their project before
// issuing calls.
type ProjectActivator interface {
	ActiveProjectID() string
	ActivateProject(ctx context.Context, project *Project) error
}

// MediaGetter is implemented by sessions that can fetch non-JSON payloads,
// such as note markups and frames.
type MediaGetter interface {
	GetRaw(ctx context.Context, path string, headers map[string]string) ([]byte, error)
}

// objects filters the promoted objects out of an objectified list
// response.
func objects(res any) []*pix.Object {
	list, _ := res.([]any)
	out := make([]*pix.Object, 0, len(list))
	for _, item := range list {
		if o, ok := item.(*pix.Object); ok {
			out = append(out, o)
		}
	}
	return out
}

// collect narrows promoted objects to the behavior type T, dropping any
// that do not carry it.
func collect[T any](res any) []T {
	var out []T
	for _, o := range objects(res) {
		if b, ok := pix.As[T](o); ok {
			out = append(out, b)
		}
	}
	return out
}
