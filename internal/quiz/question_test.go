package quiz_test

import (
	"testing"

	"github.com/serageo/globequiz/internal/quiz"
)

func TestNormalize(t *testing.T) {
	raw := []quiz.RawEntry{
		{Name: "Tokyo", Lat: 35.6762, Lon: 139.6503, Hint: "Capital of Japan"},
		{Name: "Nowhere", Lat: 123.0, Lon: -500.0},
	}

	qs := quiz.Normalize(raw)
	if len(qs) != 2 {
		t.Fatalf("got %d questions, want 2", len(qs))
	}

	if qs[0].ID != 1 || qs[1].ID != 2 {
		t.Errorf("ids = %d, %d, want 1, 2", qs[0].ID, qs[1].ID)
	}
	if qs[0].Hint != "Capital of Japan" {
		t.Errorf("hint = %q", qs[0].Hint)
	}
	if qs[1].Hint != "" {
		t.Errorf("missing hint = %q, want empty", qs[1].Hint)
	}
	// Coordinates pass through unvalidated, even out-of-range ones.
	if qs[1].Coord.Lat != 123.0 || qs[1].Coord.Lon != -500.0 {
		t.Errorf("coord = %v, want passthrough", qs[1].Coord)
	}
}

func TestNormalizeIDsArePositional(t *testing.T) {
	a := quiz.RawEntry{Name: "A", Lat: 1, Lon: 1}
	b := quiz.RawEntry{Name: "B", Lat: 2, Lon: 2}

	fwd := quiz.Normalize([]quiz.RawEntry{a, b})
	rev := quiz.Normalize([]quiz.RawEntry{b, a})

	if fwd[0].Name != "A" || rev[0].Name != "B" {
		t.Fatal("order not preserved")
	}
	if fwd[0].ID != 1 || rev[0].ID != 1 {
		t.Error("ids should follow position, not content")
	}
}

func TestLoadCatalogRejectsUnknownCategory(t *testing.T) {
	if _, err := quiz.LoadCatalog([]byte(`{"oceans": []}`)); err == nil {
		t.Fatal("expected error for unknown category")
	}
	if _, err := quiz.LoadCatalog([]byte(`{"all": []}`)); err == nil {
		t.Fatal("expected error for reserved category name")
	}
	if _, err := quiz.LoadCatalog([]byte(`not json`)); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestBankAllIsDenseUnion(t *testing.T) {
	c, err := quiz.LoadCatalog([]byte(`{
		"cities":    [{"name": "Tokyo", "lat": 35.6762, "lon": 139.6503}],
		"landmarks": [{"name": "Eiffel Tower", "lat": 48.8584, "lon": 2.2945}],
		"countries": [{"name": "Japan", "lat": 36.204824, "lon": 138.252924}]
	}`))
	if err != nil {
		t.Fatalf("loading catalog: %v", err)
	}

	all := c.Bank(quiz.ModeAll)
	if len(all) != 3 {
		t.Fatalf("all bank size = %d, want 3", len(all))
	}
	// Fixed concatenation order: cities, landmarks, nature, countries.
	wantNames := []string{"Tokyo", "Eiffel Tower", "Japan"}
	for i, q := range all {
		if q.ID != i+1 {
			t.Errorf("question %d: id = %d, want %d", i, q.ID, i+1)
		}
		if q.Name != wantNames[i] {
			t.Errorf("question %d: name = %q, want %q", i, q.Name, wantNames[i])
		}
	}

	if got := c.Size(quiz.ModeAll); got != 3 {
		t.Errorf("Size(all) = %d, want 3", got)
	}
	if got := c.Size(quiz.ModeNature); got != 0 {
		t.Errorf("Size(nature) = %d, want 0", got)
	}
}

func TestDefaultCatalogHasEveryMode(t *testing.T) {
	c := quiz.DefaultCatalog()
	for _, m := range quiz.Modes() {
		if c.Size(m) == 0 {
			t.Errorf("mode %q has no questions", m)
		}
	}
	if c.Size(quiz.ModeAll) <= c.Size(quiz.ModeCities) {
		t.Error("all mode should union every category")
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range quiz.Modes() {
		got, ok := quiz.ParseMode(string(m))
		if !ok || got != m {
			t.Errorf("ParseMode(%q) = %q, %v", m, got, ok)
		}
	}
	if _, ok := quiz.ParseMode("oceans"); ok {
		t.Error("ParseMode accepted unknown mode")
	}
	if _, ok := quiz.ParseMode(""); ok {
		t.Error("ParseMode accepted empty mode")
	}
}

func TestConfigClamped(t *testing.T) {
	cfg := quiz.Config{DurationSec: 5, PassKm: 99999, Mode: "oceans"}.Clamped()
	if cfg.DurationSec != quiz.MinDurationSec {
		t.Errorf("duration = %d, want %d", cfg.DurationSec, quiz.MinDurationSec)
	}
	if cfg.PassKm != quiz.MaxPassKm {
		t.Errorf("passKm = %v, want %v", cfg.PassKm, float64(quiz.MaxPassKm))
	}
	if cfg.Mode != quiz.ModeAll {
		t.Errorf("mode = %q, want all", cfg.Mode)
	}

	inRange := quiz.Config{DurationSec: 60, PassKm: 300, Mode: quiz.ModeCities}
	if got := inRange.Clamped(); got != inRange {
		t.Errorf("in-range config changed: %+v", got)
	}
}
