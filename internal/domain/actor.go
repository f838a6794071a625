package domain

// Actor is the authenticated caller, built by handlers from the verified token
// and passed explicitly to services.
type Actor struct {
	UserID string
	Role   string
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
