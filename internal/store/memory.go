// internal/store/memory.go
//
// In-memory round history.
// Records every round a session plays so main can summarize the session
// on exit. Nothing is written to disk; state is lost when the process ends.
//
// Characteristics:
//   - Stores *game.Round objects keyed by ID, remembering insertion order.
//   - Concurrency-safe via RWMutex even though the game itself is single-threaded.

package store

import (
	"context"
	"sync"

	"github.com/robalobadob/baseball/internal/game"
)

// Store defines the round history interface.
type Store interface {
	// Save records or updates a round.
	Save(ctx context.Context, r *game.Round) error

	// List returns all rounds in the order they were first saved.
	List(ctx context.Context) ([]*game.Round, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu     sync.RWMutex           // guards rounds and order
	rounds map[string]*game.Round // keyed by Round.ID
	order  []string               // IDs in first-save order
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{rounds: make(map[string]*game.Round)}
}

// Save adds or updates the round in the map.
func (m *memory) Save(ctx context.Context, r *game.Round) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rounds[r.ID]; !ok {
		m.order = append(m.order, r.ID)
	}
	m.rounds[r.ID] = r
	return nil
}

// List returns rounds in first-save order.
func (m *memory) List(ctx context.Context) ([]*game.Round, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*game.Round, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.rounds[id])
	}
	return out, nil
}

// Summary aggregates a history for logging.
type Summary struct {
	Rounds   int // rounds started
	Finished int // rounds that reached 3 strikes
	Attempts int // judged guesses across all rounds
}

// Summarize walks the store once and totals its rounds.
func Summarize(ctx context.Context, s Store) (Summary, error) {
	rounds, err := s.List(ctx)
	if err != nil {
		return Summary{}, err
	}
	var sum Summary
	for _, r := range rounds {
		sum.Rounds++
		sum.Attempts += r.Attempts()
		if r.Finished {
			sum.Finished++
		}
	}
	return sum, nil
}
