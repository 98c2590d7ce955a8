package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/serageo/globequiz/internal/geo"
	"github.com/serageo/globequiz/internal/quiz"
)

// sessionSink fans the engine's collaborator signals out to the SSE
// broker, and feeds the final score into the leaderboard store. seed and
// mode are filled in right after Start, before the tick loop begins.
type sessionSink struct {
	id     string
	broker *Broker
	store  Store
	logger *slog.Logger

	seed string
	mode quiz.Mode
}

func (s *sessionSink) Result(r quiz.Result, q quiz.Question) {
	s.broker.Publish(s.id, Event{Type: "result", Result: &r, Question: &q})
}

func (s *sessionSink) Advanced(q quiz.Question) {
	s.broker.Publish(s.id, Event{Type: "advanced", Question: &q})
}

func (s *sessionSink) Focus(p geo.Point) {
	s.broker.Publish(s.id, Event{Type: "focus", Focus: &p})
}

func (s *sessionSink) Cue(name string) {
	s.broker.Publish(s.id, Event{Type: "cue", Cue: name})
}

func (s *sessionSink) Music(playing bool) {
	s.broker.Publish(s.id, Event{Type: "music", Playing: &playing})
}

func (s *sessionSink) Ended(finalScore int) {
	s.broker.Publish(s.id, Event{Type: "ended", FinalScore: &finalScore})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.store.SubmitScore(ctx, finalScore, string(s.mode), s.seed); err != nil {
		s.logger.Error("submitting final score", "session", s.id, "error", err)
	}
}
