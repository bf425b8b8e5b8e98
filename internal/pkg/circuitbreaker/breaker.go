package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/piresc/groomer/internal/pkg/logger"
)

// State of a host breaker
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

var stateNames = [...]string{"CLOSED", "OPEN", "HALF_OPEN"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "UNKNOWN"
	}
	return stateNames[s]
}

var (
	// ErrOpen is returned without contacting the host while it is considered down
	ErrOpen = errors.New("backend temporarily unavailable")
	// ErrTrialInFlight is returned while a half-open trial call is outstanding
	ErrTrialInFlight = errors.New("backend trial call in progress")
)

// Settings control when a host is considered down
type Settings struct {
	// Trip is the number of consecutive failures that opens the breaker
	Trip int
	// Cooldown is how long an open breaker rejects calls before probing
	Cooldown time.Duration
	// Counts returns true for errors that say the host is unhealthy.
	// Client errors such as 4xx responses should return false.
	Counts func(err error) bool
}

// DefaultSettings suits a single mobile-style backend
func DefaultSettings() Settings {
	return Settings{
		Trip:     5,
		Cooldown: 15 * time.Second,
		Counts:   func(err error) bool { return err != nil },
	}
}

// Breaker guards calls to one host
type Breaker struct {
	host     string
	settings Settings
	logger   *logger.ZapLogger
	now      func() time.Time

	mu       sync.Mutex
	state    State
	failures int
	openedAt time.Time
	probing  bool
}

// New creates a closed breaker for host
func New(host string, s Settings, l *logger.ZapLogger) *Breaker {
	if s.Trip <= 0 {
		s.Trip = 1
	}
	if s.Counts == nil {
		s.Counts = func(err error) bool { return err != nil }
	}
	if l == nil {
		l = logger.GetGlobalLogger()
	}
	return &Breaker{host: host, settings: s, logger: l, now: time.Now}
}

// Execute runs fn unless the host is considered down
func (b *Breaker) Execute(ctx context.Context, fn func(context.Context) error) error {
	trial, err := b.admit()
	if err != nil {
		return err
	}
	err = fn(ctx)
	b.report(trial, err)
	return err
}

// admit decides whether a call may go out. The returned flag marks the
// single trial call to a half-open host.
func (b *Breaker) admit() (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateOpen:
		if b.now().Sub(b.openedAt) < b.settings.Cooldown {
			return false, ErrOpen
		}
		b.moveTo(StateHalfOpen)
		fallthrough
	case StateHalfOpen:
		if b.probing {
			return false, ErrTrialInFlight
		}
		b.probing = true
		return true, nil
	}
	return false, nil
}

func (b *Breaker) report(trial bool, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if trial {
		b.probing = false
	}

	if !b.settings.Counts(err) {
		b.failures = 0
		if b.state == StateHalfOpen {
			b.moveTo(StateClosed)
		}
		return
	}

	b.failures++
	if b.state == StateHalfOpen || b.failures >= b.settings.Trip {
		b.openedAt = b.now()
		b.moveTo(StateOpen)
	}
}

func (b *Breaker) moveTo(next State) {
	if b.state == next {
		return
	}
	prev := b.state
	b.state = next
	if next == StateClosed {
		b.failures = 0
	}

	log := b.logger.Info
	if next == StateOpen {
		log = b.logger.Warn
	}
	log("Backend breaker state changed",
		logger.String("host", b.host),
		logger.String("from", prev.String()),
		logger.String("to", next.String()),
		logger.Int("consecutive_failures", b.failures))
}

// State returns the current state
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Hosts hands out one breaker per backend host
type Hosts struct {
	settings Settings
	logger   *logger.ZapLogger

	mu       sync.Mutex
	breakers map[string]*Breaker
}

// NewHosts creates a registry whose breakers share settings
func NewHosts(s Settings, l *logger.ZapLogger) *Hosts {
	return &Hosts{settings: s, logger: l, breakers: make(map[string]*Breaker)}
}

// For returns the breaker for host, creating it on first use
func (h *Hosts) For(host string) *Breaker {
	h.mu.Lock()
	defer h.mu.Unlock()

	b, ok := h.breakers[host]
	if !ok {
		b = New(host, h.settings, h.logger)
		h.breakers[host] = b
	}
	return b
}
