package domain

import "time"

// StoredSession is the last server session handed out to a developer id.
type StoredSession struct {
	ID        string
	DevID     string
	CreatedAt time.Time
}

// APICall describes one finished request for the call log. It never carries
// credentials, signatures or session ids.
type APICall struct {
	ID         int64
	Timestamp  time.Time
	Method     string
	EntityID   string
	StatusCode int
	Duration   time.Duration
	Attempt    int
	Error      string
}
