package domain

// User is the authenticated viewer, as returned by the login and
// current-user endpoints.
type User struct {
	ID        string
	Username  string
	Name      string
	Email     string
	Role      string
	AvatarURL string
}
