package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/healthtrack/internal/client/models"
)

func fixedStore(now time.Time) *Store {
	s := NewStore()
	s.now = func() time.Time { return now }
	return s
}

func TestStore_AuthHeader_EmptyWithoutSession(t *testing.T) {
	s := NewStore()

	h := s.AuthHeader()
	require.NotNil(t, h)
	require.Empty(t, h)
}

func TestStore_AuthHeader_BearerMatchesToken(t *testing.T) {
	now := time.Now()
	s := fixedStore(now)
	s.Set(&models.Session{
		AccessToken: "tok-123",
		ExpiresAt:   now.Add(time.Hour),
		User:        models.User{ID: "u1", Email: "user@x.com"},
	})

	h := s.AuthHeader()
	require.Equal(t, map[string]string{"Authorization": "Bearer tok-123"}, h)
}

func TestStore_AuthHeader_NeverServesExpiredToken(t *testing.T) {
	now := time.Now()
	s := fixedStore(now)
	s.Set(&models.Session{AccessToken: "stale", ExpiresAt: now.Add(-time.Minute)})

	require.Nil(t, s.Current())
	require.Empty(t, s.AuthHeader())
}

func TestStore_SetReplacesWholesale(t *testing.T) {
	now := time.Now()
	s := fixedStore(now)
	s.Set(&models.Session{AccessToken: "first", ExpiresAt: now.Add(time.Hour)})
	s.Set(&models.Session{AccessToken: "second", ExpiresAt: now.Add(time.Hour)})

	cur := s.Current()
	require.NotNil(t, cur)
	require.Equal(t, "second", cur.AccessToken)
}

func TestStore_CurrentReturnsCopy(t *testing.T) {
	now := time.Now()
	s := fixedStore(now)
	s.Set(&models.Session{AccessToken: "tok", ExpiresAt: now.Add(time.Hour)})

	cur := s.Current()
	cur.AccessToken = "mutated"

	require.Equal(t, "tok", s.Current().AccessToken)
}

func TestStore_Clear(t *testing.T) {
	now := time.Now()
	s := fixedStore(now)
	s.Set(&models.Session{AccessToken: "tok", ExpiresAt: now.Add(time.Hour)})

	s.Clear()
	require.Nil(t, s.Current())
	require.Empty(t, s.AuthHeader())
}
