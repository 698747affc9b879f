package model

// LinkItem - one outbound link on a profile page. Order of a link list is
// whatever the server returned, the client never reorders it.
type LinkItem struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}
