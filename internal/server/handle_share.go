package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/serageo/globequiz/internal/share"
)

// ShareResponse carries the replayable link for a session.
type ShareResponse struct {
	Query string `json:"query"`
	URL   string `json:"url"`
}

func handleShare(sessions *Registry, codec share.Codec, baseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := sessions.Get(chi.URLParam(r, "id"))
		if !ok {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}

		// Pin the effective seed so the link replays this exact order even
		// when the session was started without one.
		cfg := sess.Config()
		cfg.Seed = sess.Seed()

		writeJSON(w, http.StatusOK, ShareResponse{
			Query: codec.Encode(cfg),
			URL:   codec.BuildURL(baseURL, cfg),
		})
	}
}

func handleConfig(codec share.Codec) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Decode never fails: malformed values fall back to defaults and
		// clamps, so any pasted link yields a playable config.
		writeJSON(w, http.StatusOK, codec.Decode(r.URL.RawQuery))
	}
}
