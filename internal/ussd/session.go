package ussd

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/luyandaaaa/Farm2city/internal/domain"
)

const (
	// DefaultNotificationTTL is how long a notification stays visible.
	DefaultNotificationTTL = 2 * time.Second

	// DefaultResetDelay is the pause between the farewell message and the
	// session returning to its pristine state.
	DefaultResetDelay = 2 * time.Second

	sinkTimeout = time.Second
)

// OrderSink receives completed orders for external persistence.
type OrderSink interface {
	SaveOrder(ctx context.Context, order domain.Order) error
}

// Session is one user's end-to-end interaction, from the main menu until
// exit. It owns the state, the pending keypad buffer, the visible
// notification, and the timers that expire them. Safe for concurrent use.
type Session struct {
	mu      sync.Mutex
	id      string
	initial *State
	state   *State
	buffer  string

	notif      *Notification
	notifTimer *time.Timer
	resetTimer *time.Timer

	notifTTL   time.Duration
	resetDelay time.Duration
	now        func() time.Time
	sink       OrderSink
}

type Option func(*Session)

// WithClock overrides the session clock, used for order dates and the
// sales-analytics month filter.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithOrderSink hands every completed order to sink.
func WithOrderSink(sink OrderSink) Option {
	return func(s *Session) { s.sink = sink }
}

func WithNotificationTTL(d time.Duration) Option {
	return func(s *Session) { s.notifTTL = d }
}

func WithResetDelay(d time.Duration) Option {
	return func(s *Session) { s.resetDelay = d }
}

func NewSession(seed Seed, opts ...Option) *Session {
	s := &Session{
		id:         uuid.NewString(),
		notifTTL:   DefaultNotificationTTL,
		resetDelay: DefaultResetDelay,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.initial = newState(seed, s.now)
	s.state = s.initial.clone()
	return s
}

func (s *Session) ID() string {
	return s.id
}

// Press handles one keypad key: digits accumulate in the pending buffer,
// '*' clears it, '#' submits it.
func (s *Session) Press(key rune) {
	s.mu.Lock()
	var submit string
	switch {
	case key == '*':
		s.buffer = ""
	case key == '#':
		submit = s.buffer
		s.buffer = ""
	case key >= '0' && key <= '9':
		s.buffer += string(key)
	}
	s.mu.Unlock()

	if strings.TrimSpace(submit) != "" {
		s.Submit(submit)
	}
}

// Buffer returns the pending keypad input.
func (s *Session) Buffer() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buffer
}

// Submit processes one input token to completion: transition, notification,
// order hand-off, reset scheduling.
func (s *Session) Submit(input string) {
	input = strings.TrimSpace(input)
	if input == "" {
		return
	}

	s.mu.Lock()
	res := dispatch(s.state, input)
	s.state = res.state
	if res.notif != nil {
		s.setNotificationLocked(*res.notif)
	}
	if res.reset {
		s.scheduleResetLocked()
	}
	s.mu.Unlock()

	if res.order != nil && s.sink != nil {
		order := *res.order
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), sinkTimeout)
			defer cancel()
			if err := s.sink.SaveOrder(ctx, order); err != nil {
				log.Printf("order sink save error: %v", err)
			}
		}()
	}
}

// Screen renders the current menu.
func (s *Session) Screen() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Render(s.state)
}

// Header returns the phone header line for the current state.
func (s *Session) Header() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Header(s.state)
}

// Notification returns the visible notification, if one has not expired.
func (s *Session) Notification() (Notification, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.notif == nil {
		return Notification{}, false
	}
	return *s.notif, true
}

// Snapshot returns a copy of the session state for inspection. Mutating the
// copy does not affect the session.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.state.clone()
}

// Close stops any pending timers. The session can still accept input but
// nothing scheduled will fire.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.notifTimer != nil {
		s.notifTimer.Stop()
	}
	if s.resetTimer != nil {
		s.resetTimer.Stop()
	}
}

// setNotificationLocked installs n and schedules its expiry. A new
// notification replaces a pending one: last write wins.
func (s *Session) setNotificationLocked(n Notification) {
	if s.notifTimer != nil {
		s.notifTimer.Stop()
	}
	s.notif = &n
	s.notifTimer = time.AfterFunc(s.notifTTL, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.notif != nil && *s.notif == n {
			s.notif = nil
		}
	})
}

// scheduleResetLocked arms the delayed return to the pristine initial
// state. A newer timer replaces an older one.
func (s *Session) scheduleResetLocked() {
	if s.resetTimer != nil {
		s.resetTimer.Stop()
	}
	s.resetTimer = time.AfterFunc(s.resetDelay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.state = s.initial.clone()
		s.buffer = ""
	})
}
