package responses

import "time"

type UserProfile struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName,omitempty"`
	Email    string `json:"email,omitempty"`
}

type Login struct {
	Token       string      `json:"token"`
	ExpiresAt   time.Time   `json:"expires_at"`
	Role        string      `json:"role"`
	User        UserProfile `json:"user"`
	Permissions []string    `json:"permissions"`
}

type Logout struct {
	RedirectTo string `json:"redirect_to"`
}

type CurrentUser struct {
	Role           string      `json:"role"`
	User           UserProfile `json:"user"`
	Permissions    []string    `json:"permissions"`
	TokenExpiresAt *time.Time  `json:"token_expires_at,omitempty"`
}

type Permissions struct {
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}
