package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"Insightly/internal/cli/model"
)

type feedbackPayload struct {
	Content  string `json:"content"`
	IsPublic bool   `json:"isPublic"`
}

// FeedbackEdit is a partial feedback edit.
type FeedbackEdit struct {
	Content  *string `json:"content,omitempty"`
	IsPublic *bool   `json:"isPublic,omitempty"`
}

// FeedbackStats is the aggregate returned by /feedback/stats.
type FeedbackStats struct {
	Total  int `json:"total"`
	Public int `json:"public"`
}

// MyFeedbacks lists feedback received by the authenticated user.
func (c *Client) MyFeedbacks(ctx context.Context, page, limit int) (*model.FeedbackPage, error) {
	var out model.FeedbackPage
	path := fmt.Sprintf("/feedback?page=%d&limit=%d", page, limit)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PublicFeedbacks lists the public feedback left on a profile.
func (c *Client) PublicFeedbacks(ctx context.Context, username string, page, limit int) (*model.FeedbackPage, error) {
	var out model.FeedbackPage
	path := fmt.Sprintf("/feedback/public/%s?page=%d&limit=%d", url.PathEscape(username), page, limit)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateFeedback leaves anonymous feedback on a profile. Content length
// bounds are enforced by the caller before the request goes out.
func (c *Client) CreateFeedback(ctx context.Context, username, content string, isPublic bool) (*model.FeedbackItem, error) {
	var out model.FeedbackItem
	payload := feedbackPayload{Content: content, IsPublic: isPublic}
	if err := c.do(ctx, http.MethodPost, "/feedback/"+url.PathEscape(username), payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateFeedback edits one feedback entry.
func (c *Client) UpdateFeedback(ctx context.Context, id string, edit FeedbackEdit) error {
	return c.do(ctx, http.MethodPatch, "/feedback/"+url.PathEscape(id), edit, nil)
}

// DeleteFeedback removes one feedback entry.
func (c *Client) DeleteFeedback(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/feedback/"+url.PathEscape(id), nil, nil)
}

// FeedbackStats returns aggregate feedback counts.
func (c *Client) FeedbackStats(ctx context.Context) (*FeedbackStats, error) {
	var out FeedbackStats
	if err := c.do(ctx, http.MethodGet, "/feedback/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
