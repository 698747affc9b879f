package model

// UserProfile - server-owned profile of an Insightly user. The client only
// ever holds a cached copy of it.
type UserProfile struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Bio      string `json:"bio,omitempty"`
	Avatar   string `json:"avatar,omitempty"` // data-URI or plain URL
}
