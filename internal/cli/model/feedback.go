package model

// FeedbackItem - one anonymous feedback entry left on a profile.
type FeedbackItem struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
	IsPublic  bool   `json:"isPublic"`
}

// FeedbackPage - paged feedback listing as returned by the server.
type FeedbackPage struct {
	Data  []FeedbackItem `json:"data"`
	Page  int            `json:"page,omitempty"`
	Limit int            `json:"limit,omitempty"`
	Total int            `json:"total,omitempty"`
}
