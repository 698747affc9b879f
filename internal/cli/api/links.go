package api

import (
	"context"
	"net/http"
	"net/url"

	"Insightly/internal/cli/model"
)

// LinkPayload is the body for creating or updating a link.
type LinkPayload struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type reorderRequest struct {
	LinkIDs []string `json:"linkIds"`
}

// MyLinks lists the authenticated user's links in server order.
func (c *Client) MyLinks(ctx context.Context) ([]model.LinkItem, error) {
	var out []model.LinkItem
	if err := c.do(ctx, http.MethodGet, "/links", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PublicLinks lists the links of a public profile.
func (c *Client) PublicLinks(ctx context.Context, username string) ([]model.LinkItem, error) {
	var out []model.LinkItem
	if err := c.do(ctx, http.MethodGet, "/links/public/"+url.PathEscape(username), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateLink adds a link and returns the created item.
func (c *Client) CreateLink(ctx context.Context, p LinkPayload) (*model.LinkItem, error) {
	var out model.LinkItem
	if err := c.do(ctx, http.MethodPost, "/links", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateLink replaces a link's title and URL.
func (c *Client) UpdateLink(ctx context.Context, id string, p LinkPayload) (*model.LinkItem, error) {
	var out model.LinkItem
	if err := c.do(ctx, http.MethodPatch, "/links/"+url.PathEscape(id), p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteLink removes a link by id.
func (c *Client) DeleteLink(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/links/"+url.PathEscape(id), nil, nil)
}

// ReorderLinks submits a full ordering of the user's link ids. The endpoint
// is part of the server contract; no command currently drives it.
func (c *Client) ReorderLinks(ctx context.Context, linkIDs []string) error {
	return c.do(ctx, http.MethodPut, "/links/reorder", reorderRequest{LinkIDs: linkIDs}, nil)
}
