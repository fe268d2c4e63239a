package interview

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	// sessions are browser-session scoped; idle ones expire and a reload
	// starts over, same as the original single-page state
	sessionTTL  = 45 * time.Minute
	maxSessions = 4096
)

// SessionStore holds live interview sessions in memory. Nothing here is
// persisted; eviction or restart discards the transcript.
type SessionStore struct {
	cache *expirable.LRU[string, *Session]
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		cache: expirable.NewLRU[string, *Session](maxSessions, nil, sessionTTL),
	}
}

func (s *SessionStore) Create() *Session {
	sess := NewSession()
	s.cache.Add(sess.ID.String(), sess)
	return sess
}

func (s *SessionStore) Get(id string) (*Session, bool) {
	return s.cache.Get(id)
}
