package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/serageo/globequiz/internal/geo"
	"github.com/serageo/globequiz/internal/quiz"
	"github.com/serageo/globequiz/internal/share"
)

// CreateSessionRequest configures a new session. Either pass the fields
// directly or hand over a share-link query string; explicit fields win
// over nothing, absent ones fall back to the configured defaults.
type CreateSessionRequest struct {
	Seed        string   `json:"seed,omitempty"`
	DurationSec *int     `json:"durationSec,omitempty"`
	PassKm      *float64 `json:"passKm,omitempty"`
	Mode        string   `json:"mode,omitempty"`
	Music       *bool    `json:"music,omitempty"`
	Song        string   `json:"song,omitempty"`

	// Share is a raw query string from a share link; when set, the other
	// fields are ignored.
	Share string `json:"share,omitempty"`
}

// SessionResponse wraps a session ID with its current state.
type SessionResponse struct {
	ID    string        `json:"id"`
	State quiz.Snapshot `json:"state"`
}

func handleCreateSession(sessions *Registry, codec share.Codec) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateSessionRequest
		if err := readJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		var cfg quiz.Config
		if req.Share != "" {
			cfg = codec.Decode(req.Share)
		} else {
			cfg = codec.Decode("")
			cfg.Seed = req.Seed
			cfg.Song = req.Song
			if req.DurationSec != nil {
				cfg.DurationSec = *req.DurationSec
			}
			if req.PassKm != nil {
				cfg.PassKm = *req.PassKm
			}
			if req.Music != nil {
				cfg.Music = *req.Music
			}
			if m, ok := quiz.ParseMode(req.Mode); ok {
				cfg.Mode = m
			}
		}

		id, sess, err := sessions.Create(cfg)
		if errors.Is(err, quiz.ErrEmptyBank) {
			writeError(w, http.StatusUnprocessableEntity, "selected mode has no questions")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusCreated, SessionResponse{ID: id, State: sess.Snapshot()})
	}
}

func handleSessionState(sessions *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := sessions.Get(chi.URLParam(r, "id"))
		if !ok {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		writeJSON(w, http.StatusOK, SessionResponse{ID: chi.URLParam(r, "id"), State: sess.Snapshot()})
	}
}

// GuessRequest carries a clicked coordinate. Both fields absent means a
// forced timeout guess, which always fails with the sentinel distance.
type GuessRequest struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

func handleGuess(sessions *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := sessions.Get(chi.URLParam(r, "id"))
		if !ok {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}

		var req GuessRequest
		if err := readJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		var guess *geo.Point
		if req.Lat != nil && req.Lon != nil {
			guess = &geo.Point{Lat: *req.Lat, Lon: *req.Lon}
		}

		// The engine ignores guesses outside the awaiting-guess phase;
		// over HTTP that silence becomes a visible conflict.
		res, accepted := sess.SubmitGuess(guess)
		if !accepted {
			writeError(w, http.StatusConflict, "session is not accepting guesses")
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

func handlePause(sessions *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		sess, ok := sessions.Get(id)
		if !ok {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		sess.Pause()
		writeJSON(w, http.StatusOK, SessionResponse{ID: id, State: sess.Snapshot()})
	}
}
