package models

import "time"

// Session is the authenticated identity held by the client.
type Session struct {
	UserID       string
	Email        string
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// StoredSession is the part of a Session persisted between runs.
type StoredSession struct {
	UserID       string
	Email        string
	RefreshToken string
	SavedAt      time.Time
}
