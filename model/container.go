/*
 * Copyright © 2025 Bling Digital, All rights reserved.
 */

package model

import (
	"context"

	"github.com/blingdigital/pix"
	"github.com/blingdigital/pix/registry"
)

func init() {
	newContainer := func(o *pix.Object) any {
		return &Container{Object: o}
	}
	registry.Register("PIXPlaylist", newContainer)
	registry.Register("PIXFolder", newContainer)
}

// Container is a playlist or folder. Containers require an additional
// call to get their contents.
type Container struct {
	*pix.Object
}

// Contents fetches the contents of the folder or playlist.
func (c *Container) Contents(ctx context.Context) ([]any, error) {
	res, err := c.Session().Get(ctx, "/items/"+c.ID()+"/contents")
	if err != nil {
		return nil, err
	}
	list, _ := res.([]any)
	return list, nil
}

// Children finds all promoted objects downstream of the container. This
// requires the additional contents call.
func (c *Container) Children(ctx context.Context) ([]*pix.Object, error) {
	contents, err := c.Contents(ctx)
	if err != nil {
		return nil, err
	}
	var results []*pix.Object
	for _, item := range contents {
		var raw map[string]any
		switch v := item.(type) {
		case *pix.Object:
			raw = v.Raw()
		case map[string]any:
			raw = v
		default:
			continue
		}
		for child := range c.Factory().Children(raw, true) {
			results = append(results, child)
		}
	}
	return results, nil
}
