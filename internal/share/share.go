// Package share encodes session configuration to and from URL query
// strings, the sole durable external representation of a session. Two
// players exchanging a link replay the identical question order.
package share

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/serageo/globequiz/internal/quiz"
)

// Query parameter keys. Every Config field maps to exactly one key.
const (
	keySeed  = "seed"
	keyDur   = "dur"
	keyKm    = "km"
	keyMode  = "mode"
	keyMusic = "music"
	keySong  = "song"
)

// Defaults fill in absent parameters on decode. The pass distance default
// has drifted across frontend revisions, so both values are configuration,
// not constants.
type Defaults struct {
	DurationSec int
	PassKm      float64
}

// Codec converts between quiz.Config and query strings.
type Codec struct {
	Defaults Defaults
}

// Encode renders cfg as a URL query string (no leading "?"). The song key
// is omitted when empty, matching the links the frontend builds.
func (c Codec) Encode(cfg quiz.Config) string {
	v := url.Values{}
	v.Set(keySeed, cfg.Seed)
	v.Set(keyDur, strconv.Itoa(cfg.DurationSec))
	v.Set(keyKm, strconv.FormatFloat(cfg.PassKm, 'f', -1, 64))
	v.Set(keyMode, string(cfg.Mode))
	if cfg.Music {
		v.Set(keyMusic, "on")
	} else {
		v.Set(keyMusic, "off")
	}
	if cfg.Song != "" {
		v.Set(keySong, cfg.Song)
	}
	return v.Encode()
}

// BuildURL appends the encoded config to a base URL.
func (c Codec) BuildURL(base string, cfg quiz.Config) string {
	return base + "?" + c.Encode(cfg)
}

// Decode parses a query string (leading "?" tolerated) into a config with
// defaults applied and the same clamping as session start. Decode never
// fails: malformed numbers fall back to defaults, an unknown mode becomes
// ModeAll, and an unparsable query yields the default config. Tampered or
// stale links still produce a playable session.
func (c Codec) Decode(raw string) quiz.Config {
	v, err := url.ParseQuery(strings.TrimPrefix(raw, "?"))
	if err != nil {
		v = url.Values{}
	}

	cfg := quiz.Config{
		Seed:        v.Get(keySeed),
		DurationSec: intParam(v, keyDur, c.Defaults.DurationSec),
		PassKm:      floatParam(v, keyKm, c.Defaults.PassKm),
		Music:       v.Get(keyMusic) != "off",
		Song:        v.Get(keySong),
	}
	if m, ok := quiz.ParseMode(v.Get(keyMode)); ok {
		cfg.Mode = m
	} else {
		cfg.Mode = quiz.ModeAll
	}
	return cfg.Clamped()
}

func intParam(v url.Values, key string, fallback int) int {
	raw := v.Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

func floatParam(v url.Values, key string, fallback float64) float64 {
	raw := v.Get(key)
	if raw == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return f
}
