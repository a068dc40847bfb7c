package dispatch

// Package dispatch is the per-message state machine tying the core together.
// For every accepted user message it produces exactly one assistant message:
// via the remote channel when health allows, via the local rules engine
// otherwise. It owns the typing signal and is the only writer of the
// conversation store and the health tracker.

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/comigor/medchat-go/internal/doctor"
	"github.com/comigor/medchat-go/internal/health"
	"github.com/comigor/medchat-go/internal/history"
	"github.com/comigor/medchat-go/internal/logger"
	"github.com/comigor/medchat-go/internal/msg"
	"github.com/comigor/medchat-go/internal/rules"
	"github.com/comigor/medchat-go/internal/store"
)

const apologyText = "I'm sorry, something went wrong on my end. Please try sending your message again."

// Channel is the remote channel surface the orchestrator drives. The real
// implementation is remote.Client.
type Channel interface {
	Send(ctx context.Context, utterance string) (string, error)
	Probe(ctx context.Context) bool
}

// Orchestrator serializes sends per counterpart and guarantees that every
// accepted user message yields exactly one assistant message, with at most
// one remote attempt per send.
type Orchestrator struct {
	store   *store.Store
	channel Channel
	health  *health.Tracker
	mirror  *history.Mirror

	// fallback is rules.Generate in production; injectable for tests.
	fallback func(specialty, utterance string) msg.Message
	// fallbackDelay simulates the counterpart typing before a local reply.
	fallbackDelay time.Duration

	mu     sync.Mutex
	locks  map[string]*sync.Mutex
	typing map[string]bool

	// storeMu guards individual store operations so readers never wait for
	// a whole in-flight send; the per-counterpart locks order whole sends.
	storeMu sync.Mutex
}

// New creates an orchestrator. The mirror may be nil.
func New(s *store.Store, ch Channel, h *health.Tracker, m *history.Mirror) *Orchestrator {
	return &Orchestrator{
		store:         s,
		channel:       ch,
		health:        h,
		mirror:        m,
		fallback:      rules.Generate,
		fallbackDelay: 800 * time.Millisecond,
		locks:         make(map[string]*sync.Mutex),
		typing:        make(map[string]bool),
	}
}

// Send processes one user-authored text for a doctor. Empty or whitespace-only
// input is silently dropped. Sends for the same doctor queue behind each
// other; sends for different doctors proceed concurrently.
func (o *Orchestrator) Send(ctx context.Context, doc doctor.Doctor, text string) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return
	}

	lock := o.counterpartLock(doc.ID)
	lock.Lock()
	defer lock.Unlock()

	// Seed on first access, then append the user message before any network
	// activity so the presentation layer sees it immediately.
	userMsg := msg.New(msg.SenderUser, trimmed)
	o.storeMu.Lock()
	o.store.Get(doc.ID, &doc)
	o.store.Append(doc.ID, userMsg)
	o.storeMu.Unlock()
	o.mirror.Record(doc.ID, userMsg)

	o.setTyping(doc.ID, true)
	defer o.setTyping(doc.ID, false)

	reply := o.resolveReply(ctx, doc, trimmed)
	o.storeMu.Lock()
	o.store.Append(doc.ID, reply)
	o.storeMu.Unlock()
	o.mirror.Record(doc.ID, reply)
}

// resolveReply makes at most one remote attempt, then falls back locally.
func (o *Orchestrator) resolveReply(ctx context.Context, doc doctor.Doctor, text string) msg.Message {
	if o.health.Current() != health.StateDown {
		content, err := o.channel.Send(ctx, text)
		if err == nil {
			o.health.RecordSuccess()
			return msg.New(msg.SenderCounterpart, content)
		}
		o.health.RecordFailure()
		logger.L.Warn("remote channel failed, falling back to local responder",
			"counterpart", doc.ID, "error", err)
	}

	o.waitFallbackDelay(ctx)

	reply, ok := o.safeFallback(doc.Specialty, text)
	if !ok {
		reply = msg.New(msg.SenderCounterpart, apologyText)
		reply.Failed = true
	}
	return reply
}

// safeFallback shields the send from a panicking responder. The rules engine
// is defined to never fail, but a send must still terminate if it does.
func (o *Orchestrator) safeFallback(specialty, text string) (reply msg.Message, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			logger.L.Error("local responder panicked", "panic", r)
			ok = false
		}
	}()
	return o.fallback(specialty, text), true
}

func (o *Orchestrator) waitFallbackDelay(ctx context.Context) {
	if o.fallbackDelay <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(o.fallbackDelay):
	}
}

// Messages returns the ordered conversation for a doctor, seeding it on
// first access. It never waits for an in-flight send.
func (o *Orchestrator) Messages(doc doctor.Doctor) []msg.Message {
	o.storeMu.Lock()
	defer o.storeMu.Unlock()
	return o.store.Get(doc.ID, &doc)
}

// Clear removes a doctor's conversation entirely. A send already in flight
// for the same doctor finishes first; a send queued behind the clear appends
// into a freshly reseeded conversation.
func (o *Orchestrator) Clear(counterpartID string) {
	lock := o.counterpartLock(counterpartID)
	lock.Lock()
	defer lock.Unlock()
	o.storeMu.Lock()
	o.store.Clear(counterpartID)
	o.storeMu.Unlock()
}

// Typing reports whether the counterpart's typing indicator is on.
func (o *Orchestrator) Typing(counterpartID string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.typing[counterpartID]
}

// Health returns the current connection health state.
func (o *Orchestrator) Health() health.State {
	return o.health.Current()
}

// RetryConnection is the explicit user-triggered retry: it resets health to
// unknown and probes the remote endpoint immediately. The probe outcome
// updates health but never appends to the store.
func (o *Orchestrator) RetryConnection(ctx context.Context) health.State {
	o.health.Reset()
	if o.channel.Probe(ctx) {
		o.health.RecordSuccess()
	} else {
		o.health.RecordFailure()
	}
	return o.health.Current()
}

func (o *Orchestrator) counterpartLock(counterpartID string) *sync.Mutex {
	o.mu.Lock()
	defer o.mu.Unlock()
	lock, ok := o.locks[counterpartID]
	if !ok {
		lock = &sync.Mutex{}
		o.locks[counterpartID] = lock
	}
	return lock
}

func (o *Orchestrator) setTyping(counterpartID string, on bool) {
	o.mu.Lock()
	o.typing[counterpartID] = on
	o.mu.Unlock()
}
