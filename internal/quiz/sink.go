package quiz

import "github.com/serageo/globequiz/internal/geo"

// Audio cue names emitted on evaluation.
const (
	CueCorrect   = "correct"
	CueIncorrect = "incorrect"
)

// Sink receives the collaborator signals a session emits: flash feedback
// for the UI, camera focus for the renderer, cues for the audio layer, and
// the final score for the leaderboard. Implementations must not call back
// into the session.
type Sink interface {
	// Result fires once per evaluated guess, together with the question it
	// was evaluated against.
	Result(r Result, q Question)
	// Advanced fires when the session moves on to the next question.
	Advanced(q Question)
	// Focus asks the renderer to re-center on the correct coordinate. It
	// fires only for guesses that failed the threshold; a player who was
	// already right keeps their view.
	Focus(p geo.Point)
	// Cue names a one-shot sound effect (CueCorrect or CueIncorrect).
	Cue(name string)
	// Music toggles the background track.
	Music(playing bool)
	// Ended reports the final score when the countdown reaches zero. A
	// pause does not trigger it.
	Ended(finalScore int)
}

// NopSink ignores every signal.
type NopSink struct{}

func (NopSink) Result(Result, Question) {}
func (NopSink) Advanced(Question)       {}
func (NopSink) Focus(geo.Point)         {}
func (NopSink) Cue(string)              {}
func (NopSink) Music(bool)              {}
func (NopSink) Ended(int)               {}
