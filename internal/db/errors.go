package db

import "errors"

var (
	// ErrKeyNotFound means a session or display key is absent or has expired.
	// Repositories translate it into their own not-found errors.
	ErrKeyNotFound = errors.New("db: key not found")
	// ErrNoAddrs is returned by networked drivers configured without addresses.
	ErrNoAddrs = errors.New("db: at least one address is required")
)

// Command names carried in Error.Op. Both networked drivers issue exactly these.
const (
	OpPing   = "PING"
	OpDel    = "DEL"
	OpExists = "EXISTS"
	OpGet    = "GET"
	OpSet    = "SET"
)

// Error is a failed store command. Key is the full prefixed key, e.g.
// "geolens:session:<id>", and is empty for PING.
type Error struct {
	Op  string
	Key string
	Err error
}

func (e *Error) Error() string {
	if e.Key == "" {
		return e.Op + ": " + e.Err.Error()
	}
	return e.Op + " " + e.Key + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }
