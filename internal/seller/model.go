package seller

import (
	"time"

	"seafresh-be/internal/auth"
)

type Seller struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	CompanyName  string    `json:"companyName"`
	Phone        *string   `json:"phone,omitempty"`
	PasswordHash string    `json:"-"`
	Role         auth.Role `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Info is the public display slice of a seller attached to catalog and order reads.
type Info struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	CompanyName string `json:"companyName"`
}

func (s *Seller) Info() *Info {
	return &Info{ID: s.ID, Username: s.Username, CompanyName: s.CompanyName}
}

type RegisterInput struct {
	Email       string  `json:"email"`
	Phone       *string `json:"phone"`
	Username    string  `json:"username"`
	CompanyName string  `json:"companyName"`
	Password    string  `json:"password"`
}
