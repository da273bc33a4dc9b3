package users

import "time"

// User is the stored identity record. Email is always persisted lowercase;
// PasswordHash is a salted bcrypt hash and is never exposed through the API.
type User struct {
	ID           string
	Email        string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
