package game

import (
	"time"

	"github.com/notnil/chess"
)

// NewHub creates a new session hub with cleanup goroutine.
func NewHub() *Hub {
	h := &Hub{Sessions: make(map[string]*Session)}
	// cleanup goroutine
	go func() {
		for {
			time.Sleep(5 * time.Minute)
			h.Mu.Lock()
			for id, s := range h.Sessions {
				s.Mu.Lock()
				idle := time.Since(s.LastSeen) > 24*time.Hour
				s.Mu.Unlock()
				if idle {
					delete(h.Sessions, id)
				}
			}
			h.Mu.Unlock()
		}
	}()
	return h
}

// Get retrieves an existing session.
func (h *Hub) Get(id string) (*Session, bool) {
	h.Mu.Lock()
	defer h.Mu.Unlock()
	s, ok := h.Sessions[id]
	return s, ok
}

// Create starts a fresh session under the given id, replacing any game
// already stored there.
func (h *Hub) Create(id string, humanColor chess.Color) *Session {
	h.Mu.Lock()
	defer h.Mu.Unlock()
	s := &Session{
		g:          chess.NewGame(chess.UseNotation(chess.UCINotation{})),
		HumanColor: humanColor,
		LastSeen:   time.Now(),
	}
	h.Sessions[id] = s
	return s
}
