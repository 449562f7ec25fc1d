package landing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(ttl time.Duration, limit RateLimit) (*Store, *time.Time) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewStore(ttl, limit, NewPageFactory(PageOptions{Log: discard()}))
	s.now = func() time.Time { return now }
	return s, &now
}

func TestStore_Resolve(t *testing.T) {
	s, _ := newTestStore(time.Minute, RateLimit{})

	first, created := s.Resolve("")
	require.True(t, created)
	require.NotEmpty(t, first.ID)
	require.NotNil(t, first.Page)

	again, created := s.Resolve(first.ID)
	assert.False(t, created)
	assert.Same(t, first, again)

	other, created := s.Resolve("forged-or-expired")
	assert.True(t, created)
	assert.NotEqual(t, first.ID, other.ID)
	assert.NotEqual(t, "forged-or-expired", other.ID, "unknown ids are never adopted")

	assert.Equal(t, 2, s.Len())
}

func TestStore_PagesAreIndependent(t *testing.T) {
	s, _ := newTestStore(time.Minute, RateLimit{})
	a, _ := s.Resolve("")
	b, _ := s.Resolve("")

	require.NoError(t, a.Page.Navigate(TargetContact))
	assert.True(t, a.Page.View().Overlays.ContactModalOpen)
	assert.False(t, b.Page.View().Overlays.ContactModalOpen)
}

func TestStore_Sweep(t *testing.T) {
	s, now := newTestStore(10*time.Minute, RateLimit{})

	idle, _ := s.Resolve("")
	*now = now.Add(6 * time.Minute)
	active, _ := s.Resolve("")
	*now = now.Add(6 * time.Minute)

	assert.Equal(t, 1, s.Sweep(*now))
	assert.Equal(t, 1, s.Len())

	_, ok := s.Get(idle.ID)
	assert.False(t, ok)
	got, ok := s.Get(active.ID)
	require.True(t, ok)
	assert.Same(t, active, got)
}

func TestStore_GetRefreshesLastSeen(t *testing.T) {
	s, now := newTestStore(10*time.Minute, RateLimit{})
	sess, _ := s.Resolve("")

	*now = now.Add(9 * time.Minute)
	_, ok := s.Get(sess.ID)
	require.True(t, ok)

	*now = now.Add(9 * time.Minute)
	assert.Zero(t, s.Sweep(*now))
}

func TestSession_AllowContact(t *testing.T) {
	s, _ := newTestStore(time.Minute, RateLimit{PerMinute: 1, Burst: 2})
	sess, _ := s.Resolve("")

	assert.True(t, sess.AllowContact())
	assert.True(t, sess.AllowContact())
	assert.False(t, sess.AllowContact())

	other, _ := s.Resolve("")
	assert.True(t, other.AllowContact(), "limits are per session")
}
