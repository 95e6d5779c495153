package viewmodel

// User represents the signed-in member exposed to templates.
type User struct {
	ID          string
	Name        string
	AccountType string
}

// Layout captures shared chrome metadata (titles, navigation state, auth flags).
type Layout struct {
	Title           string
	PageTitle       string
	CurrentPage     string
	CSRFToken       string
	IsAuthenticated bool
	// UserID is the session identifier, used to build per-member links.
	UserID string
	User   *User
}
