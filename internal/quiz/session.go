package quiz

import (
	"errors"
	"math"
	"sync"
	"time"

	"github.com/serageo/globequiz/internal/geo"
	"github.com/serageo/globequiz/internal/rng"
)

// ErrEmptyBank is returned by Start when the selected mode holds no
// questions. The UI is expected to disable start in that case, but the
// engine defends itself regardless.
var ErrEmptyBank = errors.New("quiz: selected mode has no questions")

// Phase is the session state machine position.
type Phase string

const (
	PhaseIdle          Phase = "idle"
	PhaseAwaitingGuess Phase = "awaiting_guess"
	// PhaseEvaluated is the one-second window after a guess during which
	// further guesses are ignored and the result stays on screen.
	PhaseEvaluated Phase = "evaluated"
	PhaseEnded     Phase = "ended"
)

// advanceDelay is how long an evaluated result stays current before the
// session moves on.
const advanceDelay = time.Second

// maxPoints is awarded for a perfect guess; the award decays linearly by
// one point per kilometre, independent of the pass threshold.
const maxPoints = 250

// Result is the transient outcome of one evaluated guess. It is superseded
// by the next evaluation and never persisted.
type Result struct {
	QuestionID int     `json:"questionId"`
	DistanceKm float64 `json:"distanceKm"`
	Correct    bool    `json:"correct"`
	Points     int     `json:"points"`
}

// scheduleFunc runs fn after d. Injectable so tests can drive the pending
// advance synchronously.
type scheduleFunc func(d time.Duration, fn func())

// Session is one timed run over a shuffled question order. All methods are
// safe for concurrent use; the state-machine guard (not locking) is what
// keeps overlapping evaluations from corrupting the counters.
type Session struct {
	catalog  *Catalog
	sink     Sink
	schedule scheduleFunc

	mu       sync.Mutex
	cfg      Config
	seed     string
	order    []Question
	phase    Phase
	idx      int
	score    int
	answered int
	correct  int
	timeLeft int
	last     *Result
	// epoch invalidates scheduled advances left over from a superseded
	// run: Start, Pause, and expiry bump it, so a stale timer callback is
	// detectably a no-op.
	epoch uint64
}

// Option configures a Session.
type Option func(*Session)

// WithScheduler replaces the timer used for the post-evaluation advance.
func WithScheduler(fn func(d time.Duration, fn func())) Option {
	return func(s *Session) { s.schedule = fn }
}

// NewSession creates an idle session over catalog. sink may be nil.
func NewSession(catalog *Catalog, sink Sink, opts ...Option) *Session {
	s := &Session{
		catalog: catalog,
		sink:    sink,
		phase:   PhaseIdle,
		schedule: func(d time.Duration, fn func()) {
			time.AfterFunc(d, fn)
		},
	}
	if s.sink == nil {
		s.sink = NopSink{}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins a new run: clamps the config, shuffles a fresh order from
// the effective seed, and resets every counter. Restarting an active
// session discards the previous run, including any pending advance.
func (s *Session) Start(cfg Config) error {
	cfg = cfg.Clamped()
	bank := s.catalog.Bank(cfg.Mode)
	if len(bank) == 0 {
		return ErrEmptyBank
	}

	seed := cfg.Seed
	if seed == "" {
		seed = rng.TimeSeed()
	}

	s.mu.Lock()
	s.epoch++
	s.cfg = cfg
	s.seed = seed
	s.order = rng.SeededShuffle(bank, seed)
	s.phase = PhaseAwaitingGuess
	s.idx = 0
	s.score = 0
	s.answered = 0
	s.correct = 0
	s.timeLeft = cfg.DurationSec
	s.last = nil
	music := cfg.Music
	s.mu.Unlock()

	s.sink.Music(music)
	return nil
}

// SubmitGuess evaluates a guessed coordinate against the current question.
// A nil guess (forced timeout) is scored with the sentinel distance and
// always fails. The call is a silent no-op unless the session is awaiting
// a guess: stray clicks before start, during the evaluated pause, and
// after game over all report ok=false with no state change.
func (s *Session) SubmitGuess(guess *geo.Point) (Result, bool) {
	s.mu.Lock()
	if s.phase != PhaseAwaitingGuess {
		s.mu.Unlock()
		return Result{}, false
	}

	q := s.order[s.idx%len(s.order)]

	dist := geo.SentinelDistanceKm
	if guess != nil {
		dist = math.Round(geo.DistanceKm(*guess, q.Coord))
	}
	correct := dist <= s.cfg.PassKm
	points := maxPoints - int(dist)
	if points < 0 {
		points = 0
	}
	res := Result{QuestionID: q.ID, DistanceKm: dist, Correct: correct, Points: points}

	s.score += points
	s.answered++
	if correct {
		s.correct++
	}
	s.last = &res
	s.phase = PhaseEvaluated
	epoch := s.epoch
	s.mu.Unlock()

	s.sink.Result(res, q)
	if correct {
		s.sink.Cue(CueCorrect)
	} else {
		s.sink.Cue(CueIncorrect)
		s.sink.Focus(q.Coord)
	}

	s.schedule(advanceDelay, func() { s.advance(epoch) })
	return res, true
}

// Advance moves to the next question immediately, skipping the remaining
// evaluated pause. The index wraps over the order, so a long session
// repeats questions in the same shuffled order rather than reshuffling.
func (s *Session) Advance() {
	s.mu.Lock()
	epoch := s.epoch
	s.mu.Unlock()
	s.advance(epoch)
}

func (s *Session) advance(epoch uint64) {
	s.mu.Lock()
	if epoch != s.epoch || s.phase != PhaseEvaluated {
		s.mu.Unlock()
		return
	}
	s.idx++
	s.last = nil
	s.phase = PhaseAwaitingGuess
	q := s.order[s.idx%len(s.order)]
	s.mu.Unlock()

	s.sink.Advanced(q)
}

// Tick consumes one countdown second. It reports whether the session is
// still running; at zero it transitions to ended and emits the final
// score for leaderboard consideration.
func (s *Session) Tick() bool {
	s.mu.Lock()
	if !runningPhase(s.phase) {
		s.mu.Unlock()
		return false
	}
	s.timeLeft--
	if s.timeLeft > 0 {
		s.mu.Unlock()
		return true
	}
	s.timeLeft = 0
	s.phase = PhaseEnded
	s.epoch++
	final := s.score
	s.mu.Unlock()

	s.sink.Music(false)
	s.sink.Ended(final)
	return false
}

// Pause stops the run without touching counters or order. There is no
// resume: the next Start begins a fresh run. Unlike countdown expiry, a
// pause does not emit a final score.
func (s *Session) Pause() {
	s.mu.Lock()
	if !runningPhase(s.phase) {
		s.mu.Unlock()
		return
	}
	s.phase = PhaseEnded
	s.epoch++
	s.mu.Unlock()

	s.sink.Music(false)
}

// Running reports whether the session accepts ticks (awaiting a guess or
// inside the evaluated pause).
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return runningPhase(s.phase)
}

// Seed returns the effective seed of the current run, which reproduces
// its exact question order when fed back through a share link.
func (s *Session) Seed() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seed
}

// Config returns the clamped configuration of the current run.
func (s *Session) Config() Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

func runningPhase(p Phase) bool {
	return p == PhaseAwaitingGuess || p == PhaseEvaluated
}

// Snapshot is a read-only view of the session for the state endpoint.
type Snapshot struct {
	Phase       Phase     `json:"phase"`
	Running     bool      `json:"running"`
	Seed        string    `json:"seed"`
	Mode        Mode      `json:"mode"`
	DurationSec int       `json:"durationSec"`
	PassKm      float64   `json:"passKm"`
	TimeLeft    int       `json:"timeLeft"`
	Score       int       `json:"score"`
	Answered    int       `json:"answered"`
	Correct     int       `json:"correct"`
	BankSize    int       `json:"bankSize"`
	Current     *Question `json:"current,omitempty"`
	LastResult  *Result   `json:"lastResult,omitempty"`
}

// Snapshot captures the current state. Current is set only while the
// session is running.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Phase:       s.phase,
		Running:     runningPhase(s.phase),
		Seed:        s.seed,
		Mode:        s.cfg.Mode,
		DurationSec: s.cfg.DurationSec,
		PassKm:      s.cfg.PassKm,
		TimeLeft:    s.timeLeft,
		Score:       s.score,
		Answered:    s.answered,
		Correct:     s.correct,
		BankSize:    len(s.order),
	}
	if snap.Running {
		q := s.order[s.idx%len(s.order)]
		snap.Current = &q
	}
	if s.last != nil {
		r := *s.last
		snap.LastResult = &r
	}
	return snap
}
