package studio

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultSessionTTL is applied when the store is constructed with a
// non-positive TTL.
const DefaultSessionTTL = 30 * time.Minute

type entry struct {
	session  *Session
	lastSeen time.Time
}

// Store keeps live sessions in memory, keyed by opaque IDs. Entries expire
// after the TTL of inactivity; expired entries are swept lazily on access.
type Store struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]*entry
	now     func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Store{
		ttl:     ttl,
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

// Create registers a fresh session under a new random ID.
func (st *Store) Create() *Session {
	session := newSession(uuid.NewString())
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sweep(st.now())
	st.entries[session.id] = &entry{session: session, lastSeen: st.now()}
	return session
}

// Get returns the live session for id, refreshing its expiry.
func (st *Store) Get(id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	now := st.now()
	st.sweep(now)
	e, ok := st.entries[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = now
	return e.session, true
}

// Len reports the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sweep(st.now())
	return len(st.entries)
}

func (st *Store) sweep(now time.Time) {
	for id, e := range st.entries {
		if now.Sub(e.lastSeen) > st.ttl {
			delete(st.entries, id)
		}
	}
}
