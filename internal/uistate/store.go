// Package uistate holds the dashboard's shared view flags (side panels, theme)
// and fans every change out to the view regions that render from them.
package uistate

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
)

// Flag names a boolean slot in the UI state.
type Flag string

const (
	LeftPanelOpen  Flag = "left_panel_open"
	RightPanelOpen Flag = "right_panel_open"
	DarkMode       Flag = "dark_mode"
)

// ErrUnknownFlag is returned when a mutation names a flag the store was not
// configured with.
var ErrUnknownFlag = errors.New("unknown flag")

// UnknownFlagError carries the offending flag name.
type UnknownFlagError struct {
	Flag Flag
}

func (e *UnknownFlagError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownFlag.Error(), string(e.Flag))
}

func (e *UnknownFlagError) Unwrap() error {
	return ErrUnknownFlag
}

// DefaultFlags returns the recognized flags with their start-up values.
func DefaultFlags() map[Flag]bool {
	return map[Flag]bool{
		LeftPanelOpen:  true,
		RightPanelOpen: true,
		DarkMode:       false,
	}
}

// NormalizeFlag turns a user-supplied name into flag form. Dashes and case
// are ignored, so "dark-mode" and "Dark_Mode" both become DarkMode.
func NormalizeFlag(name string) Flag {
	n := strings.ToLower(strings.TrimSpace(name))
	return Flag(strings.ReplaceAll(n, "-", "_"))
}

// Snapshot is an immutable copy of the store's state at one mutation.
type Snapshot struct {
	values map[Flag]bool
}

// Get returns the flag's value in this snapshot.
func (s Snapshot) Get(f Flag) bool {
	return s.values[f]
}

// LeftPanelOpen reports whether the navigation sidebar is shown.
func (s Snapshot) LeftPanelOpen() bool { return s.values[LeftPanelOpen] }

// RightPanelOpen reports whether the notifications panel is shown.
func (s Snapshot) RightPanelOpen() bool { return s.values[RightPanelOpen] }

// DarkMode reports whether the dark palette is active.
func (s Snapshot) DarkMode() bool { return s.values[DarkMode] }

// Flags lists the flags present in the snapshot in name order.
func (s Snapshot) Flags() []Flag {
	return sortedFlags(s.values)
}

// Map returns a copy of the snapshot keyed by flag name.
func (s Snapshot) Map() map[string]bool {
	out := make(map[string]bool, len(s.values))
	for f, v := range s.values {
		out[string(f)] = v
	}
	return out
}

// Option configures a Store.
type Option func(*Store)

// WithFlags replaces the recognized flag set and its initial values.
func WithFlags(flags map[Flag]bool) Option {
	return func(s *Store) {
		s.values = make(map[Flag]bool, len(flags))
		for f, v := range flags {
			s.values[f] = v
		}
	}
}

// WithLogger sets the logger used for mutation tracing.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

type subscription struct {
	id     int
	fn     func(Snapshot)
	active bool
}

// Store is the single owner of the UI flags. It is meant to be driven from
// one goroutine (the Bubble Tea event loop); callers on other goroutines must
// serialize access themselves.
type Store struct {
	values      map[Flag]bool
	subs        []*subscription
	nextID      int
	pending     []Snapshot
	dispatching bool
	logger      *slog.Logger
}

// New creates a store with DefaultFlags unless WithFlags says otherwise.
func New(opts ...Option) *Store {
	s := &Store{
		values: DefaultFlags(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Get returns the current value of f. Unrecognized flags read as false.
func (s *Store) Get(f Flag) bool {
	return s.values[f]
}

// Snapshot copies the current state.
func (s *Store) Snapshot() Snapshot {
	cp := make(map[Flag]bool, len(s.values))
	for f, v := range s.values {
		cp[f] = v
	}
	return Snapshot{values: cp}
}

// Flags lists the recognized flags in name order.
func (s *Store) Flags() []Flag {
	return sortedFlags(s.values)
}

// Lookup resolves a user-supplied name against the recognized set.
func (s *Store) Lookup(name string) (Flag, error) {
	f := NormalizeFlag(name)
	if _, ok := s.values[f]; !ok {
		return "", &UnknownFlagError{Flag: Flag(name)}
	}
	return f, nil
}

// Set assigns v to f and notifies every subscriber, whether or not the value
// changed.
func (s *Store) Set(f Flag, v bool) error {
	if _, ok := s.values[f]; !ok {
		return &UnknownFlagError{Flag: f}
	}
	s.values[f] = v
	s.logger.Debug("ui flag set", "flag", string(f), "value", v)
	s.publish()
	return nil
}

// Toggle flips f and notifies every subscriber.
func (s *Store) Toggle(f Flag) error {
	cur, ok := s.values[f]
	if !ok {
		return &UnknownFlagError{Flag: f}
	}
	s.values[f] = !cur
	s.logger.Debug("ui flag toggled", "flag", string(f), "value", !cur)
	s.publish()
	return nil
}

// Subscribe registers fn for future changes. It is not called for the
// current state. The returned func removes the subscription and may be
// called any number of times.
func (s *Store) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	s.nextID++
	sub := &subscription{id: s.nextID, fn: fn, active: true}
	s.subs = append(s.subs, sub)
	s.logger.Debug("ui state subscriber added", "id", sub.id)

	return func() {
		if !sub.active {
			return
		}
		sub.active = false
		s.logger.Debug("ui state subscriber removed", "id", sub.id)
		for i, cur := range s.subs {
			if cur == sub {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				break
			}
		}
	}
}

// publish queues the current state and, unless a dispatch is already running
// further up the stack, delivers queued snapshots in order. Mutations made by
// a subscriber are therefore delivered after the one being dispatched.
func (s *Store) publish() {
	s.pending = append(s.pending, s.Snapshot())
	if s.dispatching {
		return
	}
	s.dispatching = true
	defer func() { s.dispatching = false }()

	for len(s.pending) > 0 {
		snap := s.pending[0]
		s.pending = s.pending[1:]

		subs := make([]*subscription, len(s.subs))
		copy(subs, s.subs)
		for _, sub := range subs {
			if sub.active {
				sub.fn(snap)
			}
		}
	}
}

func sortedFlags(m map[Flag]bool) []Flag {
	out := make([]Flag, 0, len(m))
	for f := range m {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
