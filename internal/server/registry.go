package server

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/serageo/globequiz/internal/quiz"
)

// evictAfter is how long a stopped session stays addressable, so late
// state polls and SSE reconnects still resolve.
const evictAfter = time.Hour

// Registry owns the live quiz sessions and their one-second tick loops.
type Registry struct {
	catalog *quiz.Catalog
	broker  *Broker
	store   Store
	logger  *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*quiz.Session
}

func NewRegistry(catalog *quiz.Catalog, broker *Broker, store Store, logger *slog.Logger) *Registry {
	return &Registry{
		catalog:  catalog,
		broker:   broker,
		store:    store,
		logger:   logger,
		sessions: make(map[string]*quiz.Session),
	}
}

// Create starts a new session from cfg and begins its countdown.
func (r *Registry) Create(cfg quiz.Config) (string, *quiz.Session, error) {
	id := uuid.NewString()
	sink := &sessionSink{id: id, broker: r.broker, store: r.store, logger: r.logger}
	sess := quiz.NewSession(r.catalog, sink)
	if err := sess.Start(cfg); err != nil {
		return "", nil, err
	}
	// The tick loop has not started yet, so these writes are safe.
	sink.seed = sess.Seed()
	sink.mode = sess.Config().Mode

	r.mu.Lock()
	r.sessions[id] = sess
	r.mu.Unlock()

	go r.tickLoop(id, sess)
	return id, sess, nil
}

// Get looks up a live session.
func (r *Registry) Get(id string) (*quiz.Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

// tickLoop drives the countdown once per second until the session stops
// running (pause or expiry), then schedules eviction.
func (r *Registry) tickLoop(id string, sess *quiz.Session) {
	t := time.NewTicker(time.Second)
	defer t.Stop()
	for range t.C {
		if !sess.Tick() {
			break
		}
	}
	time.AfterFunc(evictAfter, func() { r.remove(id) })
}

func (r *Registry) remove(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}
