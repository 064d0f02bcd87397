/*
 * Copyright © 2025 Bling Digital, All rights reserved.
 */

package model

import (
	"context"
	"fmt"

	"github.com/blingdigital/pix"
	"github.com/blingdigital/pix/registry"
)

func init() {
	registry.Register("PIXProject", func(o *pix.Object) any {
		return &Project{Object: o}
	})
}

// Project represents a PIX project.
//
// Project methods that issue API calls first make the project the
// session's active project, since PIX scopes most endpoints to it.
type Project struct {
	*pix.Object
}

// ensureActive switches the session's active project to p when it is not
// already. Sessions that do not track an active project are left alone.
func (p *Project) ensureActive(ctx context.Context) error {
	s, ok := p.Session().(ProjectActivator)
	if !ok || s.ActiveProjectID() == p.ID() {
		return nil
	}
	return s.ActivateProject(ctx, p)
}

// LoadItem loads an item from PIX by id.
func (p *Project) LoadItem(ctx context.Context, itemID string) (any, error) {
	if err := p.ensureActive(ctx); err != nil {
		return nil, err
	}
	return p.Session().Get(ctx, "/items/"+itemID)
}

// Inbox loads the logged-in user's incoming feed entries. A limit of 0
// leaves the count to the server default.
func (p *Project) Inbox(ctx context.Context, limit int) ([]*FeedEntry, error) {
	if err := p.ensureActive(ctx); err != nil {
		return nil, err
	}
	path := "/feeds/incoming"
	if limit > 0 {
		path = fmt.Sprintf("%s?limit=%d", path, limit)
	}
	res, err := p.Session().Get(ctx, path)
	if err != nil {
		return nil, err
	}
	return collect[*FeedEntry](res), nil
}

// MarkAsRead marks an item in the logged-in user's inbox as read.
func (p *Project) MarkAsRead(ctx context.Context, item *pix.Object) error {
	if err := p.ensureActive(ctx); err != nil {
		return err
	}
	payload := map[string]any{"flags": map[string]any{"viewed": "true"}}
	_, err := p.Session().Put(ctx, "/items/"+item.ID(), payload)
	return err
}

// DeleteInboxItem deletes an item from the inbox.
func (p *Project) DeleteInboxItem(ctx context.Context, item *pix.Object) error {
	if err := p.ensureActive(ctx); err != nil {
		return err
	}
	_, err := p.Session().Delete(ctx, "/messages/inbox/"+item.ID(), nil)
	return err
}
