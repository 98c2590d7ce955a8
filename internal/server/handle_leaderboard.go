package server

import (
	"net/http"
)

// LeaderboardResponse lists the best final scores, descending.
type LeaderboardResponse struct {
	Scores []ScoreEntry `json:"scores"`
}

func handleLeaderboard(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scores, err := store.TopScores(r.Context(), topScoreLimit)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if scores == nil {
			scores = []ScoreEntry{}
		}
		writeJSON(w, http.StatusOK, LeaderboardResponse{Scores: scores})
	}
}

func handleResetLeaderboard(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.ResetScores(r.Context()); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
