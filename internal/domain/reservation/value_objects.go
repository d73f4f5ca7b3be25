package reservation

import "strings"

const MaxSessionIDLength = 128

// SessionID identifies the cart or checkout session that owns a hold.
type SessionID struct {
	value string
}

func NewSessionID(s string) (SessionID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return SessionID{}, ErrEmptySession
	}
	if len(s) > MaxSessionIDLength {
		return SessionID{}, ErrSessionTooLong
	}
	return SessionID{value: s}, nil
}

func (s SessionID) String() string { return s.value }
