package domain

import (
	"strings"
	"time"
)

type User struct {
	ID           uint64
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	CreatedAt    time.Time
}

func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// SplitFullName separates a display name into first and last name on the
// first space. Everything after the first space belongs to the last name.
func SplitFullName(fullname string) (string, string) {
	parts := strings.SplitN(strings.TrimSpace(fullname), " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

type RegisterInput struct {
	Fullname         string
	Email            string
	Password         string
	RepeatedPassword string
}

type AuthResult struct {
	Token string
	User  User
}
