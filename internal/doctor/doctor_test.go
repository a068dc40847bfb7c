package doctor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPresenceText(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	require.Equal(t, "Online now", PresenceText(Doctor{Presence: PresenceOnline}, now))
	require.Equal(t, "Busy - may reply slowly", PresenceText(Doctor{Presence: PresenceBusy}, now))
	require.Equal(t, "Offline", PresenceText(Doctor{Presence: PresenceOffline}, now))

	seen := now.Add(-30 * time.Second)
	require.Equal(t, "Last seen just now", PresenceText(Doctor{Presence: PresenceOffline, LastSeenAt: &seen}, now))

	seen = now.Add(-5 * time.Minute)
	require.Equal(t, "Last seen 5 min ago", PresenceText(Doctor{Presence: PresenceOffline, LastSeenAt: &seen}, now))

	seen = now.Add(-3 * time.Hour)
	require.Equal(t, "Last seen 3 h ago", PresenceText(Doctor{Presence: PresenceOffline, LastSeenAt: &seen}, now))

	seen = now.Add(-49 * time.Hour)
	require.Equal(t, "Last seen 2 days ago", PresenceText(Doctor{Presence: PresenceOffline, LastSeenAt: &seen}, now))
}

func TestPresenceText_IsPure(t *testing.T) {
	now := time.Now()
	d := Doctor{Presence: PresenceOnline}
	require.Equal(t, PresenceText(d, now), PresenceText(d, now))
}
