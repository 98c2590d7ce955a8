package server

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

var errNoAdminSession = errors.New("no valid admin session")

// topScoreLimit caps the leaderboard: only the best final scores survive.
const topScoreLimit = 3

// ScoreEntry is one leaderboard row.
type ScoreEntry struct {
	Score     int    `json:"score"`
	Mode      string `json:"mode"`
	Seed      string `json:"seed"`
	CreatedAt string `json:"createdAt"`
}

type adminSession struct {
	AdminID string
	Email   string
}

// Store persists final scores and admin accounts. The quiz engine never
// touches it directly; the session sink feeds it.
type Store interface {
	TopScores(ctx context.Context, limit int) ([]ScoreEntry, error)
	SubmitScore(ctx context.Context, score int, mode, seed string) error
	ResetScores(ctx context.Context) error

	AdminByEmail(ctx context.Context, email string) (adminID, passwordHash string, err error)
	CreateAdminSession(ctx context.Context, adminID string) (sessionID string, err error)
	DeleteAdminSession(ctx context.Context, sessionID string) error
	AdminFromSession(ctx context.Context, sessionID string) (adminSession, error)

	// EnsureAdmin creates the account if the email is not yet registered.
	EnsureAdmin(ctx context.Context, email, passwordHash string) error
}
