/*
 * Copyright © 2025 Bling Digital, All rights reserved.
 */

package model

import (
	"context"
	"fmt"

	"github.com/go-openapi/strfmt"

	"github.com/blingdigital/pix"
	"github.com/blingdigital/pix/registry"
)

func init() {
	registry.Register("PIXShareFeedEntry", func(o *pix.Object) any {
		return &FeedEntry{Object: o}
	})
	newAttachment := func(o *pix.Object) any {
		return &Attachment{Object: o}
	}
	registry.Register("PIXClip", newAttachment)
	registry.Register("PIXImage", newAttachment)
	registry.Register("PIXNote", func(o *pix.Object) any {
		return &Note{Object: o}
	})
}

// FeedEntry represents an entry in a share feed.
type FeedEntry struct {
	*pix.Object
}

// MarkAsRead marks the entry in the logged-in user's inbox as read.
func (e *FeedEntry) MarkAsRead(ctx context.Context) error {
	payload := map[string]any{"flags": map[string]any{"viewed": "true"}}
	_, err := e.Session().Put(ctx, "/items/"+e.ID(), payload)
	return err
}

// Viewed reports whether the entry has been viewed. PIX delivers the flag
// as either a bool or the string "true".
func (e *FeedEntry) Viewed() bool {
	flags := e.GetMap("flags")
	switch v := flags["viewed"].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	}
	return false
}

// Created returns the entry's creation timestamp when the payload carries
// one.
func (e *FeedEntry) Created() (strfmt.DateTime, bool) {
	return timestamp(e.GetString("created"))
}

// Attachments returns the entry's attached items.
func (e *FeedEntry) Attachments() []*Attachment {
	list, _ := e.GetMap("attachments")["list"].([]any)
	var out []*Attachment
	for _, item := range list {
		o, ok := item.(*pix.Object)
		if !ok {
			continue
		}
		if a, ok := pix.As[*Attachment](o); ok {
			out = append(out, a)
		}
	}
	return out
}

// Attachment returns the first attachment whose id or label matches name,
// or nil when there is none.
func (e *FeedEntry) Attachment(name string) *Attachment {
	for _, a := range e.Attachments() {
		if name == a.ID() {
			return a
		}
		if label := a.GetString("label"); label != "" && label == name {
			return a
		}
	}
	return nil
}

// Attachment is an attached clip or image.
type Attachment struct {
	*pix.Object
}

// Notes fetches the attachment's notes. Attachments without notes yield
// an empty result without a server round trip. A limit of 0 leaves the
// count to the server default (which appears to be 50).
func (a *Attachment) Notes(ctx context.Context, limit int) ([]*Note, error) {
	if has, _ := a.GetMap("notes")["has_notes"].(bool); !has {
		return nil, nil
	}
	path := "/items/" + a.ID() + "/notes"
	if limit > 0 {
		path = fmt.Sprintf("%s?limit=%d", path, limit)
	}
	res, err := a.Session().Get(ctx, path)
	if err != nil {
		return nil, err
	}
	return collect[*Note](res), nil
}

// Media kinds accepted by Note.Media.
const (
	MediaOriginal  = "original"
	MediaMarkup    = "markup"
	MediaComposite = "composite"
)

// Note represents a note left on an item.
type Note struct {
	*pix.Object
}

// Created returns the note's creation timestamp when the payload carries
// one.
func (n *Note) Created() (strfmt.DateTime, bool) {
	return timestamp(n.GetString("created"))
}

// Media fetches the note's media payload. kind is one of MediaOriginal,
// MediaMarkup or MediaComposite. Notes anchored to a clip frame deliver
// their original as the frame image rather than the clip itself.
func (n *Note) Media(ctx context.Context, kind string) ([]byte, error) {
	s, ok := n.Session().(MediaGetter)
	if !ok {
		return nil, fmt.Errorf("session %T cannot fetch media", n.Session())
	}

	fields := n.GetMap("fields")
	headers := map[string]string{"Accept": "text/xml"}
	var path string
	if kind == MediaOriginal && fields["start_frame"] != nil {
		headers["Accept"] = "image/png"
		path = fmt.Sprintf("/media/%v/frame/%v", fields["parent_id"], fields["start_frame"])
	} else {
		path = fmt.Sprintf("/media/%s/%s", n.ID(), kind)
	}
	return s.GetRaw(ctx, path, headers)
}

func timestamp(s string) (strfmt.DateTime, bool) {
	if s == "" {
		return strfmt.DateTime{}, false
	}
	dt, err := strfmt.ParseDateTime(s)
	if err != nil {
		return strfmt.DateTime{}, false
	}
	return dt, true
}
