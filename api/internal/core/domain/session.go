package domain

import "time"

type contextKey string

// SessionContextKey carries the verified *AdminSession on the request context.
const SessionContextKey contextKey = "admin_session"

// AdminSession is what a verified session cookie tells us about the caller.
type AdminSession struct {
	ID        string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
