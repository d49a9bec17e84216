package domain

import "time"

type User struct {
	ID       string      `json:"id" db:"id"`
	Profile  UserProfile `json:"profile"`
	Disabled bool        `json:"disabled" db:"disabled"`
}

type UserProfile struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	FirstName string    `json:"firstName,omitempty" db:"first_name"`
	LastName  string    `json:"lastName,omitempty" db:"last_name"`
	Locale    string    `json:"locale,omitempty" db:"locale"`
}
