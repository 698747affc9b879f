package api

import (
	"context"
	"net/http"
	"net/url"

	"Insightly/internal/cli/model"
)

// ProfileUpdate is a partial profile edit. Email and username are immutable
// on the client side, so they have no fields here. Nil pointers are omitted
// from the PATCH body.
type ProfileUpdate struct {
	Name   *string `json:"name,omitempty"`
	Bio    *string `json:"bio,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
}

// Me returns the profile of the authenticated user.
func (c *Client) Me(ctx context.Context) (*model.UserProfile, error) {
	var out model.UserProfile
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile applies a partial edit and returns the updated profile.
func (c *Client) UpdateProfile(ctx context.Context, upd ProfileUpdate) (*model.UserProfile, error) {
	var out model.UserProfile
	if err := c.do(ctx, http.MethodPatch, "/users/me", upd, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PublicProfile looks up a profile by username. Any failure, 404 included,
// is mapped by the caller to "not found".
func (c *Client) PublicProfile(ctx context.Context, username string) (*model.UserProfile, error) {
	var out model.UserProfile
	if err := c.do(ctx, http.MethodGet, "/users/profile/"+url.PathEscape(username), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
