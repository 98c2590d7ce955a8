package server

import (
	"encoding/json"
	"sync"

	"github.com/serageo/globequiz/internal/geo"
	"github.com/serageo/globequiz/internal/quiz"
)

// Event is the payload published to session subscribers. Type is one of
// "result", "advanced", "focus", "cue", "music", "ended"; the optional
// fields carry the matching payload.
type Event struct {
	Type       string         `json:"type"`
	Question   *quiz.Question `json:"question,omitempty"`
	Result     *quiz.Result   `json:"result,omitempty"`
	Focus      *geo.Point     `json:"focus,omitempty"`
	Cue        string         `json:"cue,omitempty"`
	Playing    *bool          `json:"playing,omitempty"`
	FinalScore *int           `json:"finalScore,omitempty"`
}

// Broker is an in-process pub/sub for SSE events, keyed by session ID.
type Broker struct {
	mu   sync.RWMutex
	subs map[string]map[chan []byte]struct{}
}

func NewBroker() *Broker {
	return &Broker{
		subs: make(map[string]map[chan []byte]struct{}),
	}
}

// Subscribe returns a channel that receives JSON-encoded events for the
// given session.
func (b *Broker) Subscribe(sessionID string) chan []byte {
	ch := make(chan []byte, 16)
	b.mu.Lock()
	if b.subs[sessionID] == nil {
		b.subs[sessionID] = make(map[chan []byte]struct{})
	}
	b.subs[sessionID][ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes a channel from the session's subscribers.
func (b *Broker) Unsubscribe(sessionID string, ch chan []byte) {
	b.mu.Lock()
	delete(b.subs[sessionID], ch)
	if len(b.subs[sessionID]) == 0 {
		delete(b.subs, sessionID)
	}
	b.mu.Unlock()
}

// Publish sends an event to all subscribers of the given session.
func (b *Broker) Publish(sessionID string, event Event) {
	data, _ := json.Marshal(event)
	b.mu.RLock()
	for ch := range b.subs[sessionID] {
		select {
		case ch <- data:
		default:
			// Drop if subscriber is slow.
		}
	}
	b.mu.RUnlock()
}
