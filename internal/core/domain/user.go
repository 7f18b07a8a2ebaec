package domain

import (
	"errors"
	"time"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUsernameTaken = errors.New("username already taken")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidToken = errors.New("invalid token")

// User models an account that owns items. PasswordHash never crosses the
// JSON boundary; the plaintext password is never persisted at all.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
