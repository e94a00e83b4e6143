package store

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/minaorangina/tock/engine"
)

var (
	ErrUnknownGameID = errors.New("unknown game ID")
	ErrGameExists    = errors.New("game already exists")
)

type GameStore interface {
	AddMatch(match *engine.Match) error
	FindMatch(gameID string) (*engine.Match, error)
	RemoveMatch(gameID string) error
	Matches() []string
}

// InMemoryGameStore maps game id to match
type InMemoryGameStore struct {
	mu      sync.RWMutex
	matches map[string]*engine.Match
}

// NewInMemoryGameStore constructs an InMemoryGameStore
func NewInMemoryGameStore(matches ...*engine.Match) *InMemoryGameStore {
	s := &InMemoryGameStore{matches: map[string]*engine.Match{}}
	for _, m := range matches {
		s.matches[m.ID()] = m
	}
	return s
}

func (s *InMemoryGameStore) AddMatch(match *engine.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.matches[match.ID()]; exists {
		return fmt.Errorf("%w: %s", ErrGameExists, match.ID())
	}
	s.matches[match.ID()] = match
	return nil
}

func (s *InMemoryGameStore) FindMatch(gameID string) (*engine.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	match, ok := s.matches[gameID]
	if !ok {
		return nil, fmt.Errorf("%w '%s'", ErrUnknownGameID, gameID)
	}
	return match, nil
}

func (s *InMemoryGameStore) RemoveMatch(gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.matches[gameID]; !ok {
		return fmt.Errorf("%w '%s'", ErrUnknownGameID, gameID)
	}
	delete(s.matches, gameID)
	return nil
}

// Matches lists the stored game ids in order
func (s *InMemoryGameStore) Matches() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.matches))
	for id := range s.matches {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
