package entity

import "time"

// Account represents the account table
type Account struct {
	Id           string    `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	FullName     string    `db:"full_name"`
	CreatedAt    time.Time `db:"created_at"`
}

// Session is a server side sign-in record, deleted on sign-out.
type Session struct {
	Id        string    `db:"id"`
	AccountId string    `db:"account_id"`
	CreatedAt time.Time `db:"created_at"`
	ExpiresAt time.Time `db:"expires_at"`
}

func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

type Role string

const (
	RoleAdmin Role = "admin"
)
