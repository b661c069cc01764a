package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/unkn0wn-root/themekit/internal/errdef"
	"github.com/unkn0wn-root/themekit/internal/theme"
)

const defaultHistorySize = 200

// Record is one audit entry, written for every dispatched action.
type Record struct {
	ID     string    `json:"id"`
	At     time.Time `json:"at"`
	Action string    `json:"action"`
	Target string    `json:"target,omitempty"`
	// Current is the current theme name after the action applied.
	Current string `json:"current"`
}

type subscriber struct {
	id int
	fn func(State)
}

// Store applies actions one at a time. Readers always see a complete state.
type Store struct {
	mu         sync.Mutex
	state      State
	logger     zerolog.Logger
	subs       []subscriber
	nextSub    int
	history    []Record
	maxHistory int
	now        func() time.Time
}

type Option func(*Store)

// WithHistorySize bounds the audit trail; non-positive values keep the default.
func WithHistorySize(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.maxHistory = n
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

func New(logger zerolog.Logger, initial State, opts ...Option) *Store {
	if initial.Collection == nil {
		initial.Collection = map[string]*theme.Document{}
	}
	s := &Store{
		state:      initial.snapshot(),
		logger:     logger.With().Str("component", "store").Logger(),
		maxHistory: defaultHistorySize,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns a copy of the current state. Changing it has no effect on
// the store.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.snapshot()
}

// Dispatch applies a and returns a copy of the resulting state. Subscribers
// run after the lock is released, in subscription order.
func (s *Store) Dispatch(a Action) State {
	next, _ := s.Apply(func(State) (Action, error) { return a, nil })
	return next
}

// Apply builds an action from the current state and dispatches it without
// releasing the lock in between, so no other dispatch can interleave. When
// build fails nothing is dispatched. build must not call back into the store.
func (s *Store) Apply(build func(State) (Action, error)) (State, error) {
	s.mu.Lock()
	a, err := build(s.state.snapshot())
	if err != nil {
		s.mu.Unlock()
		return s.State(), err
	}
	if a == nil {
		s.mu.Unlock()
		return s.State(), errdef.New(errdef.CodeStore, "no action to dispatch")
	}
	next := Reduce(s.state, a)
	s.state = next
	rec := Record{
		ID:      uuid.NewString(),
		At:      s.now().UTC(),
		Action:  a.Kind(),
		Target:  target(a, next),
		Current: next.CurrentName,
	}
	s.history = append([]Record{rec}, s.history...)
	if len(s.history) > s.maxHistory {
		s.history = s.history[:s.maxHistory]
	}
	subs := make([]subscriber, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	s.logger.Debug().
		Str("id", rec.ID).
		Str("action", rec.Action).
		Str("target", rec.Target).
		Str("current", rec.Current).
		Int("themes", len(next.Collection)).
		Msg("dispatch")

	for _, sub := range subs {
		sub.fn(next.snapshot())
	}
	return next.snapshot(), nil
}

// Subscribe registers fn for state changes and returns a function that
// removes it again.
func (s *Store) Subscribe(fn func(State)) func() {
	if fn == nil {
		return func() {}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// History returns the audit trail, newest first.
func (s *Store) History() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, len(s.history))
	copy(out, s.history)
	return out
}
