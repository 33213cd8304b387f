package conversation

import (
	"math/rand/v2"
	"sync"

	"moodbot/app/service/mood"
)

const maxUserID = 1_000_000

// Store owns every conversation state, keyed by sender address. States are
// created lazily on first contact and live for the lifetime of the process.
type Store struct {
	mu     sync.Mutex
	states map[string]*State

	newUserID func() int
}

func NewStore() *Store {
	return &Store{
		states: make(map[string]*State),
		newUserID: func() int {
			return rand.IntN(maxUserID) + 1
		},
	}
}

// GetOrCreate returns the existing state for the sender, or inserts a fresh
// one. Creation is atomic across concurrent first messages from the same
// sender: exactly one state ever exists per address.
func (s *Store) GetOrCreate(senderID string) *State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if state, ok := s.states[senderID]; ok {
		return state
	}

	state := &State{
		userID: s.newUserID(),
		mood:   mood.Neutral,
	}
	s.states[senderID] = state

	return state
}
