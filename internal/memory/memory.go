// Package memory keeps what the bot has learned about each user: a
// self-introduced name and a self-reported issue. Records are keyed by
// session id so distinct clients no longer overwrite each other; clients
// that send no session id share a single default record.
package memory

import "sync"

// DefaultSession is the key used when a request carries no session id.
const DefaultSession = "default"

// Record holds the extracted facts for one session. Empty string means
// "not known yet". Fields are overwritten whenever a new match is found
// and never cleared.
type Record struct {
	Name  string
	Issue string
}

// Store is a session-keyed, mutex-guarded record store. Writes to the same
// session race last-writer-wins, with no atomicity across the field pair.
type Store struct {
	mu      sync.Mutex
	records map[string]Record
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{records: make(map[string]Record)}
}

// Get returns the record for session, or a zero record if none exists.
func (s *Store) Get(session string) Record {
	if session == "" {
		session = DefaultSession
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.records[session]
}

// SetName overwrites the stored name for session.
func (s *Store) SetName(session, name string) {
	if session == "" {
		session = DefaultSession
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.records[session]
	rec.Name = name
	s.records[session] = rec
}

// SetIssue overwrites the stored issue for session.
func (s *Store) SetIssue(session, issue string) {
	if session == "" {
		session = DefaultSession
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.records[session]
	rec.Issue = issue
	s.records[session] = rec
}
