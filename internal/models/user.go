package models

import "time"

const (
	RoleCompany = "company"
	RoleStation = "station"
)

// User is a dashboard account. Password holds a bcrypt hash; it is persisted
// with the document but must never reach an API response, so handlers and
// services go through Public().
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	Role      string    `json:"role"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserView is the sanitized user shape returned to clients.
type UserView struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Name     string `json:"name,omitempty"`
}

func (u *User) Public() UserView {
	return UserView{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
		Name:     u.Name,
	}
}
