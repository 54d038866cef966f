package session

import "errors"

var (
	ErrEmptySessionID = errors.New("session: empty session id")
	ErrCorruptHistory = errors.New("session: corrupt history entry")
)
