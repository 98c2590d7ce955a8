package server

import (
	"context"
	"errors"
	"testing"

	"github.com/serageo/globequiz/internal/database"
	"github.com/serageo/globequiz/internal/migrations"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := migrations.Run(db); err != nil {
		t.Fatalf("running migrations: %v", err)
	}
	return NewSQLiteStore(db)
}

func TestSubmitScoreKeepsOnlyTop(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	for _, score := range []int{100, 50, 300, 200, 10} {
		if err := store.SubmitScore(ctx, score, "cities", "seed"); err != nil {
			t.Fatalf("submitting %d: %v", score, err)
		}
	}

	entries, err := store.TopScores(ctx, 10)
	if err != nil {
		t.Fatalf("top scores: %v", err)
	}
	if len(entries) != topScoreLimit {
		t.Fatalf("got %d entries, want %d", len(entries), topScoreLimit)
	}
	want := []int{300, 200, 100}
	for i, e := range entries {
		if e.Score != want[i] {
			t.Errorf("entry %d: score = %d, want %d", i, e.Score, want[i])
		}
	}
}

func TestTopScoresTieBreaksByInsertion(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	if err := store.SubmitScore(ctx, 100, "cities", "first"); err != nil {
		t.Fatal(err)
	}
	if err := store.SubmitScore(ctx, 100, "cities", "second"); err != nil {
		t.Fatal(err)
	}

	entries, err := store.TopScores(ctx, 10)
	if err != nil {
		t.Fatalf("top scores: %v", err)
	}
	if len(entries) != 2 || entries[0].Seed != "first" || entries[1].Seed != "second" {
		t.Errorf("tied scores out of insertion order: %+v", entries)
	}
}

func TestResetScores(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	if err := store.SubmitScore(ctx, 100, "all", "seed"); err != nil {
		t.Fatal(err)
	}
	if err := store.ResetScores(ctx); err != nil {
		t.Fatalf("resetting scores: %v", err)
	}
	entries, err := store.TopScores(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("entries after reset: %+v", entries)
	}
}

func TestAdminSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	if err := store.EnsureAdmin(ctx, "admin@example.com", "hash-1"); err != nil {
		t.Fatalf("ensuring admin: %v", err)
	}

	adminID, hash, err := store.AdminByEmail(ctx, "admin@example.com")
	if err != nil {
		t.Fatalf("admin by email: %v", err)
	}
	if adminID == "" || hash != "hash-1" {
		t.Fatalf("admin = %q / %q", adminID, hash)
	}

	if _, _, err := store.AdminByEmail(ctx, "nobody@example.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown email err = %v, want ErrNotFound", err)
	}

	sessionID, err := store.CreateAdminSession(ctx, adminID)
	if err != nil {
		t.Fatalf("creating session: %v", err)
	}
	if sessionID == "" {
		t.Fatal("empty session id")
	}

	sess, err := store.AdminFromSession(ctx, sessionID)
	if err != nil {
		t.Fatalf("resolving session: %v", err)
	}
	if sess.AdminID != adminID || sess.Email != "admin@example.com" {
		t.Errorf("session = %+v", sess)
	}

	if err := store.DeleteAdminSession(ctx, sessionID); err != nil {
		t.Fatalf("deleting session: %v", err)
	}
	if _, err := store.AdminFromSession(ctx, sessionID); !errors.Is(err, errNoAdminSession) {
		t.Errorf("deleted session err = %v, want errNoAdminSession", err)
	}
}

func TestEnsureAdminKeepsExistingHash(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	if err := store.EnsureAdmin(ctx, "admin@example.com", "original"); err != nil {
		t.Fatal(err)
	}
	if err := store.EnsureAdmin(ctx, "admin@example.com", "replacement"); err != nil {
		t.Fatal(err)
	}

	_, hash, err := store.AdminByEmail(ctx, "admin@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if hash != "original" {
		t.Errorf("hash = %q, want the original to survive", hash)
	}
}
