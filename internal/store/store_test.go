package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/comigor/medchat-go/internal/doctor"
	"github.com/comigor/medchat-go/internal/msg"
)

var drGrey = doctor.Doctor{ID: "dr-grey", DisplayName: "Dr. Meredith Grey", Specialty: "Cardiology"}

func TestGet_SeedsOnce(t *testing.T) {
	s := New()

	first := s.Get(drGrey.ID, &drGrey)
	require.Len(t, first, 1)
	require.Equal(t, msg.SenderCounterpart, first[0].Sender)
	require.Contains(t, first[0].Text, drGrey.DisplayName)

	second := s.Get(drGrey.ID, &drGrey)
	require.Len(t, second, 1, "seed greeting must not be duplicated")
	require.Equal(t, first[0].ID, second[0].ID)
}

func TestGet_NoSeedNoConversation(t *testing.T) {
	s := New()
	require.Empty(t, s.Get("nobody", nil))
	require.Empty(t, s.CounterpartIDs())
}

func TestAppend_PreservesOrder(t *testing.T) {
	s := New()
	s.Get(drGrey.ID, &drGrey)

	a := msg.New(msg.SenderUser, "first")
	b := msg.New(msg.SenderCounterpart, "second")
	s.Append(drGrey.ID, a)
	s.Append(drGrey.ID, b)

	conv := s.Get(drGrey.ID, nil)
	require.Len(t, conv, 3)
	require.Equal(t, a.ID, conv[1].ID)
	require.Equal(t, b.ID, conv[2].ID)
}

func TestAppend_ClampsCreatedAt(t *testing.T) {
	s := New()
	early := msg.New(msg.SenderUser, "early")
	late := msg.New(msg.SenderUser, "late")
	late.CreatedAt = early.CreatedAt.Add(-time.Hour)

	s.Append(drGrey.ID, early)
	s.Append(drGrey.ID, late)

	conv := s.Get(drGrey.ID, nil)
	require.False(t, conv[1].CreatedAt.Before(conv[0].CreatedAt))
}

func TestClear_Reseeds(t *testing.T) {
	s := New()
	s.Get(drGrey.ID, &drGrey)
	s.Append(drGrey.ID, msg.New(msg.SenderUser, "hello"))

	s.Clear(drGrey.ID)
	require.Empty(t, s.Get(drGrey.ID, nil), "cleared conversation is gone entirely")

	reseeded := s.Get(drGrey.ID, &drGrey)
	require.Len(t, reseeded, 1)
}

func TestCounterpartIDs(t *testing.T) {
	s := New()
	s.Get("a", &drGrey)
	s.Get("b", &drGrey)
	require.ElementsMatch(t, []string{"a", "b"}, s.CounterpartIDs())
}
