package store

// Package store holds the per-counterpart ordered message logs. It is a pure
// in-memory data structure: no network, no UI side effects. It is not
// internally synchronized; the dispatch orchestrator serializes access per
// counterpart.

import (
	"github.com/comigor/medchat-go/internal/doctor"
	"github.com/comigor/medchat-go/internal/msg"
)

// Store maps counterpart ids to their ordered conversations.
type Store struct {
	conversations map[string][]msg.Message
}

// New creates an empty store.
func New() *Store {
	return &Store{conversations: make(map[string][]msg.Message)}
}

// Get returns the ordered messages for a counterpart. If no conversation
// exists and a seed doctor is given, a new one is created with exactly one
// greeting message attributed to the counterpart. Without a seed the result
// is empty. An existing conversation is never reseeded while it has messages.
func (s *Store) Get(counterpartID string, seed *doctor.Doctor) []msg.Message {
	if conv, ok := s.conversations[counterpartID]; ok {
		return conv
	}
	if seed == nil {
		return nil
	}
	greeting := msg.New(msg.SenderCounterpart,
		"Hello! I'm "+seed.DisplayName+". How can I help you today?")
	s.conversations[counterpartID] = []msg.Message{greeting}
	return s.conversations[counterpartID]
}

// Append adds a message to the end of a conversation. Existing entries are
// never reordered; CreatedAt is clamped so it never decreases within the
// conversation.
func (s *Store) Append(counterpartID string, message msg.Message) {
	conv := s.conversations[counterpartID]
	if n := len(conv); n > 0 && message.CreatedAt.Before(conv[n-1].CreatedAt) {
		message.CreatedAt = conv[n-1].CreatedAt
	}
	s.conversations[counterpartID] = append(conv, message)
}

// Clear removes the conversation entirely, so a subsequent Get with a seed
// recreates it.
func (s *Store) Clear(counterpartID string) {
	delete(s.conversations, counterpartID)
}

// CounterpartIDs returns the ids with active conversations.
func (s *Store) CounterpartIDs() []string {
	ids := make([]string, 0, len(s.conversations))
	for id := range s.conversations {
		ids = append(ids, id)
	}
	return ids
}
