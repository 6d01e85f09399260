package models

// UserView is the read-optimised projection of a user.
// It never exposes PasswordHash.
type UserView struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Provider string `json:"provider"`
}
