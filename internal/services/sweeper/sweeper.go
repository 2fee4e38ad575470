package sweeper

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/gatherbot/gatherbot/internal/services/game"
)

// DefaultInterval is how often the sweep runs unless configured otherwise
const DefaultInterval = 30 * time.Second

// Config holds configuration for the expiration sweeper
type Config struct {
	// GameService performs the actual sweep
	GameService game.Service

	// Interval is the time between sweep cycles
	Interval time.Duration
}

// Sweeper periodically reclaims expired pending games. It is a supervised
// task: Start spawns the loop and Stop signals it and waits for it to exit.
type Sweeper struct {
	service  game.Service
	interval time.Duration

	mu      sync.Mutex
	stop    chan struct{}
	done    chan struct{}
	started bool
}

// New creates a new expiration sweeper
func New(cfg *Config) (*Sweeper, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &Sweeper{
		service:  cfg.GameService,
		interval: interval,
	}, nil
}

// Start begins the sweep loop. Starting an already-running sweeper is an
// error.
func (s *Sweeper) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return errors.New("sweeper is already running")
	}

	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	s.started = true

	go s.run(s.stop, s.done)

	return nil
}

// Stop signals the sweep loop to exit and waits for it to finish
func (s *Sweeper) Stop() {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	stop, done := s.stop, s.done
	s.started = false
	s.mu.Unlock()

	close(stop)
	<-done
}

// run executes sweep cycles until stopped
func (s *Sweeper) run(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

// sweep runs one cycle and logs the outcome
func (s *Sweeper) sweep() {
	out, err := s.service.SweepExpired(context.Background(), &game.SweepExpiredInput{})
	if err != nil {
		log.Printf("sweep cycle failed: %v", err)
		return
	}
	if out.Swept > 0 {
		log.Printf("swept %d expired game(s)", out.Swept)
	}
}
