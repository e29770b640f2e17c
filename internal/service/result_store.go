package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/jengzang/shadowside-backend-go/internal/models"
)

// ErrSuperseded is returned when a newer analysis started before this one finished
var ErrSuperseded = errors.New("analysis superseded by a newer request")

// Ticket identifies one analysis request
type Ticket struct {
	Seq uint64
}

// ResultStore holds the currently displayed analysis result.
// The most recent request wins: starting a request cancels the one in flight,
// and a result from an older request is discarded when it arrives.
type ResultStore struct {
	mu      sync.Mutex
	seq     uint64
	cancel  context.CancelFunc
	current atomic.Pointer[models.AnalysisResult]
}

// NewResultStore creates an empty result store
func NewResultStore() *ResultStore {
	return &ResultStore{}
}

// Begin issues a ticket for a new request and cancels the previous one.
// The returned release func must be called when the request finishes.
func (s *ResultStore) Begin(ctx context.Context) (Ticket, context.Context, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}

	s.seq++
	ticket := Ticket{Seq: s.seq}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	release := func() {
		cancel()
		s.mu.Lock()
		if s.seq == ticket.Seq {
			s.cancel = nil
		}
		s.mu.Unlock()
	}
	return ticket, ctx, release
}

// IsCurrent reports whether ticket belongs to the newest request
func (s *ResultStore) IsCurrent(ticket Ticket) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ticket.Seq == s.seq
}

// Commit replaces the current result if ticket is still the newest request
func (s *ResultStore) Commit(ticket Ticket, result *models.AnalysisResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ticket.Seq != s.seq {
		return ErrSuperseded
	}
	s.current.Store(result)
	return nil
}

// Current returns the displayed result, or nil before the first analysis
func (s *ResultStore) Current() *models.AnalysisResult {
	return s.current.Load()
}
