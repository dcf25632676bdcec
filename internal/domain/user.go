package domain

type ContextKey string

const UserContextKey ContextKey = "user"

// User is the authenticated portal session, built from token claims.
type User struct {
	ID       string `json:"id"`
	ClientID string `json:"clientId"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// CanView reports whether the user may see the order.
func (u *User) CanView(o *Order) bool {
	if u == nil || o == nil {
		return false
	}
	if u.IsAdmin() {
		return true
	}
	return u.ClientID != "" && u.ClientID == o.ClientID
}
