package user

import (
	"time"

	"seafresh-be/internal/address"
	"seafresh-be/internal/auth"
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Phone        *string   `json:"phone,omitempty"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         auth.Role `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

type RegisterInput struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type Profile struct {
	User      *User              `json:"user"`
	Addresses []*address.Address `json:"addresses"`
}
