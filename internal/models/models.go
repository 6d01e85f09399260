package models

import "time"

// ProviderEmail tags users created through native registration. Social users
// carry the name of their external issuer instead.
const ProviderEmail = "email"

// User is the write model. PasswordHash is empty for social users and is
// never serialised to API responses.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Provider     string    `json:"provider"`
	CreatedAt    time.Time `json:"createdTimestamp"`
}

// View returns the API projection of the user.
func (u *User) View() *UserView {
	return &UserView{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Provider: u.Provider,
	}
}
