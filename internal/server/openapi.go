package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/serageo/globequiz/internal/quiz"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// sessionParams declares the {id} path parameter shared by the
// per-session operations; without it the reflector rejects the path.
type sessionParams struct {
	ID string `path:"id" description:"Session ID"`
}

type guessParams struct {
	ID string `path:"id" description:"Session ID"`
	GuessRequest
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "GlobeQuiz API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the globe geography quiz.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// GET /api/modes
	getModes, _ := r.NewOperationContext(http.MethodGet, "/api/modes")
	getModes.SetSummary("List modes")
	getModes.SetDescription("Returns the selectable question modes with their bank sizes.")
	getModes.AddRespStructure([]ModeInfo{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getModes)

	// GET /api/questions
	getQuestions, _ := r.NewOperationContext(http.MethodGet, "/api/questions")
	getQuestions.SetSummary("List questions")
	getQuestions.SetDescription("Returns the normalized question bank for a mode (default: all).")
	getQuestions.AddRespStructure(QuestionsResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getQuestions.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(getQuestions)

	// GET /api/leaderboard
	getLeaderboard, _ := r.NewOperationContext(http.MethodGet, "/api/leaderboard")
	getLeaderboard.SetSummary("Leaderboard")
	getLeaderboard.SetDescription("Returns the top final scores, descending.")
	getLeaderboard.AddRespStructure(LeaderboardResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getLeaderboard)

	// GET /api/config
	getConfig, _ := r.NewOperationContext(http.MethodGet, "/api/config")
	getConfig.SetSummary("Decode share link")
	getConfig.SetDescription("Decodes share-link query parameters into a clamped session config with defaults applied.")
	getConfig.AddRespStructure(quiz.Config{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getConfig)

	// POST /api/sessions
	postSessions, _ := r.NewOperationContext(http.MethodPost, "/api/sessions")
	postSessions.SetSummary("Start a session")
	postSessions.SetDescription("Starts a timed quiz run with a freshly shuffled question order.")
	postSessions.AddReqStructure(CreateSessionRequest{})
	postSessions.AddRespStructure(SessionResponse{}, openapi.WithHTTPStatus(http.StatusCreated))
	postSessions.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnprocessableEntity))
	_ = r.AddOperation(postSessions)

	// GET /api/sessions/{id}
	getSession, _ := r.NewOperationContext(http.MethodGet, "/api/sessions/{id}")
	getSession.SetSummary("Session state")
	getSession.SetDescription("Returns the live state: current question, countdown, score, and counters.")
	getSession.AddReqStructure(sessionParams{})
	getSession.AddRespStructure(SessionResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getSession.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getSession)

	// POST /api/sessions/{id}/guess
	postGuess, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{id}/guess")
	postGuess.SetSummary("Submit a guess")
	postGuess.SetDescription("Evaluates a clicked coordinate against the current question. An empty body is a forced timeout guess.")
	postGuess.AddReqStructure(guessParams{})
	postGuess.AddRespStructure(quiz.Result{}, openapi.WithHTTPStatus(http.StatusOK))
	postGuess.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	postGuess.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(postGuess)

	// POST /api/sessions/{id}/pause
	postPause, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{id}/pause")
	postPause.SetSummary("Pause a session")
	postPause.SetDescription("Stops the run without resetting counters. There is no resume; start a new session instead.")
	postPause.AddReqStructure(sessionParams{})
	postPause.AddRespStructure(SessionResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postPause.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(postPause)

	// GET /api/sessions/{id}/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/sessions/{id}/events")
	getEvents.SetSummary("SSE event stream")
	getEvents.SetDescription("Server-Sent Events stream of results, advances, camera focus, audio cues, and the final score.")
	getEvents.AddReqStructure(sessionParams{})
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	_ = r.AddOperation(getEvents)

	// GET /api/sessions/{id}/share
	getShare, _ := r.NewOperationContext(http.MethodGet, "/api/sessions/{id}/share")
	getShare.SetSummary("Share link")
	getShare.SetDescription("Returns a query string and URL that replay this session's exact question order.")
	getShare.AddReqStructure(sessionParams{})
	getShare.AddRespStructure(ShareResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getShare.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getShare)

	// POST /api/admin/login
	postLogin, _ := r.NewOperationContext(http.MethodPost, "/api/admin/login")
	postLogin.SetSummary("Admin login")
	postLogin.SetDescription("Authenticate with email and password. Sets admin_session cookie.")
	postLogin.AddReqStructure(AdminLoginRequest{})
	postLogin.AddRespStructure(AdminMeResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postLogin.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(postLogin)

	// POST /api/admin/logout
	postLogout, _ := r.NewOperationContext(http.MethodPost, "/api/admin/logout")
	postLogout.SetSummary("Admin logout")
	postLogout.SetDescription("Clears admin session and cookie.")
	postLogout.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postLogout)

	// GET /api/admin/me
	getMe, _ := r.NewOperationContext(http.MethodGet, "/api/admin/me")
	getMe.SetSummary("Current admin")
	getMe.SetDescription("Returns the currently authenticated admin. Requires admin_session cookie.")
	getMe.AddRespStructure(AdminMeResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getMe.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(getMe)

	// DELETE /api/admin/leaderboard
	delLeaderboard, _ := r.NewOperationContext(http.MethodDelete, "/api/admin/leaderboard")
	delLeaderboard.SetSummary("Reset leaderboard")
	delLeaderboard.SetDescription("Deletes all recorded scores. Requires admin_session cookie.")
	delLeaderboard.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	delLeaderboard.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(delLeaderboard)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Write(data)
	}
}
