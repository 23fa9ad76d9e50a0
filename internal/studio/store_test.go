package studio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreCreateAndGet(t *testing.T) {
	store := NewStore(time.Minute)

	session := store.Create()
	require.NotEmpty(t, session.ID())

	got, ok := store.Get(session.ID())
	require.True(t, ok)
	assert.Same(t, session, got)

	_, ok = store.Get("unknown")
	assert.False(t, ok)
	_, ok = store.Get("")
	assert.False(t, ok)
}

func TestStoreSweepsExpiredSessions(t *testing.T) {
	now := time.Now()
	store := NewStore(time.Minute)
	store.now = func() time.Time { return now }

	stale := store.Create()
	now = now.Add(30 * time.Second)
	fresh := store.Create()

	// Getting a session refreshes its expiry.
	_, ok := store.Get(fresh.ID())
	require.True(t, ok)

	now = now.Add(45 * time.Second)
	_, ok = store.Get(stale.ID())
	assert.False(t, ok, "stale session should have been swept")
	_, ok = store.Get(fresh.ID())
	assert.True(t, ok)
	assert.Equal(t, 1, store.Len())
}

func TestStoreDefaultsTTL(t *testing.T) {
	store := NewStore(0)
	assert.Equal(t, DefaultSessionTTL, store.ttl)
}
