// Package models defines the records the remote store persists for
// authentication.
package models

import "time"

// User is an auth identity. It is never linked to an operator row.
type User struct {
	ID           string
	Email        string
	PasswordHash []byte
	FirstName    string
	LastName     string
	CreatedAt    time.Time
}
