package quiz

// Clamp bounds for session configuration. Out-of-range values are pulled
// to the nearest bound rather than rejected, so a tampered or stale share
// link still produces a playable session.
const (
	MinDurationSec = 10
	MaxDurationSec = 600
	MinPassKm      = 10
	MaxPassKm      = 2000
)

// Config is the immutable configuration of one session. It is supplied by
// the transport/UI layer at start and round-trips through the share codec.
type Config struct {
	// Seed fixes the question order. Empty means "derive one from the
	// clock at start".
	Seed        string  `json:"seed,omitempty"`
	DurationSec int     `json:"durationSec"`
	PassKm      float64 `json:"passKm"`
	Mode        Mode    `json:"mode"`
	Music       bool    `json:"music"`
	// Song optionally overrides the background track URL. Carried for the
	// audio collaborator; the engine never touches playback.
	Song string `json:"song,omitempty"`
}

// Clamped returns the config with duration and pass distance pulled into
// bounds and an unknown mode replaced by ModeAll.
func (c Config) Clamped() Config {
	if c.DurationSec < MinDurationSec {
		c.DurationSec = MinDurationSec
	}
	if c.DurationSec > MaxDurationSec {
		c.DurationSec = MaxDurationSec
	}
	if c.PassKm < MinPassKm {
		c.PassKm = MinPassKm
	}
	if c.PassKm > MaxPassKm {
		c.PassKm = MaxPassKm
	}
	if _, ok := ParseMode(string(c.Mode)); !ok {
		c.Mode = ModeAll
	}
	return c
}
