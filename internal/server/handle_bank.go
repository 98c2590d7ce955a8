package server

import (
	"net/http"

	"github.com/serageo/globequiz/internal/quiz"
)

// ModeInfo describes one selectable mode.
type ModeInfo struct {
	Mode      string `json:"mode"`
	Questions int    `json:"questions"`
}

func handleModes(catalog *quiz.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		modes := make([]ModeInfo, 0, len(quiz.Modes()))
		for _, m := range quiz.Modes() {
			modes = append(modes, ModeInfo{Mode: string(m), Questions: catalog.Size(m)})
		}
		writeJSON(w, http.StatusOK, modes)
	}
}

// QuestionsResponse is the normalized bank for a mode. Coordinates are
// included: the globe renderer needs them for the reveal arc and markers.
type QuestionsResponse struct {
	Mode      string          `json:"mode"`
	Questions []quiz.Question `json:"questions"`
}

func handleQuestions(catalog *quiz.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := r.URL.Query().Get("mode")
		if raw == "" {
			raw = string(quiz.ModeAll)
		}
		m, ok := quiz.ParseMode(raw)
		if !ok {
			writeError(w, http.StatusBadRequest, "unknown mode")
			return
		}
		writeJSON(w, http.StatusOK, QuestionsResponse{Mode: string(m), Questions: catalog.Bank(m)})
	}
}
