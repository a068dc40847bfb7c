package doctor

import (
	"fmt"
	"time"
)

// Presence is the doctor's displayed availability.
type Presence string

const (
	PresenceOnline  Presence = "online"
	PresenceBusy    Presence = "busy"
	PresenceOffline Presence = "offline"
)

// Doctor is the counterpart a conversation is held with. The core reads it
// to pick rule tables and render presence text; it never mutates it.
type Doctor struct {
	ID          string     `json:"id"`
	DisplayName string     `json:"display_name"`
	Specialty   string     `json:"specialty"`
	Presence    Presence   `json:"presence"`
	LastSeenAt  *time.Time `json:"last_seen_at,omitempty"`
}

// PresenceText renders the status line for a doctor. It is a pure function
// of (doctor, now); the caller decides how often to re-render.
func PresenceText(d Doctor, now time.Time) string {
	switch d.Presence {
	case PresenceOnline:
		return "Online now"
	case PresenceBusy:
		return "Busy - may reply slowly"
	default:
		if d.LastSeenAt == nil {
			return "Offline"
		}
		return "Last seen " + relativeTime(now.Sub(*d.LastSeenAt))
	}
}

func relativeTime(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%d min ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%d h ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%d days ago", int(d.Hours()/24))
	}
}
