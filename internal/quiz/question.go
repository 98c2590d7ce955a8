// Package quiz defines the core quiz domain: the place catalog, question
// normalization, session configuration, and the timed session state
// machine. Everything here is in-memory; persistence and transport live
// with the caller.
package quiz

import (
	"encoding/json"
	"fmt"

	"github.com/serageo/globequiz/internal/geo"
)

// Mode selects a named subset of the catalog for a session. The set is
// closed so a typo can never silently produce an empty bank.
type Mode string

const (
	ModeCities    Mode = "cities"
	ModeLandmarks Mode = "landmarks"
	ModeNature    Mode = "nature"
	ModeCountries Mode = "countries"
	// ModeAll is the union of every category in catalog order.
	ModeAll Mode = "all"
)

// Categories lists the concrete sub-catalogs in their fixed concatenation
// order. ModeAll unions them in exactly this order, so normalized IDs stay
// stable across runs.
func Categories() []Mode {
	return []Mode{ModeCities, ModeLandmarks, ModeNature, ModeCountries}
}

// Modes lists every selectable mode, ModeAll last.
func Modes() []Mode {
	return append(Categories(), ModeAll)
}

// ParseMode maps a string onto the closed mode set.
func ParseMode(s string) (Mode, bool) {
	for _, m := range Modes() {
		if s == string(m) {
			return m, true
		}
	}
	return "", false
}

// RawEntry is a catalog row before normalization.
type RawEntry struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	Hint string  `json:"hint,omitempty"`
}

// Question is an immutable normalized catalog entry. ID is the 1-based
// position within the bank it was normalized into.
type Question struct {
	ID    int       `json:"id"`
	Name  string    `json:"name"`
	Hint  string    `json:"hint"`
	Coord geo.Point `json:"coord"`
}

// Normalize turns raw catalog rows into questions. IDs are positional, not
// content-derived: reordering the raw catalog changes them. A missing hint
// becomes the empty string. Coordinates pass through unvalidated; some
// entries deliberately stand for broad regions by an approximate center.
func Normalize(raw []RawEntry) []Question {
	qs := make([]Question, len(raw))
	for i, r := range raw {
		qs[i] = Question{
			ID:    i + 1,
			Name:  r.Name,
			Hint:  r.Hint,
			Coord: geo.Point{Lat: r.Lat, Lon: r.Lon},
		}
	}
	return qs
}

// Catalog holds the raw place entries grouped by category.
type Catalog struct {
	groups map[Mode][]RawEntry
}

// LoadCatalog parses a JSON catalog of the form {"cities": [...], ...}.
// Unknown category keys are rejected so catalog edits fail loudly.
func LoadCatalog(data []byte) (*Catalog, error) {
	var groups map[string][]RawEntry
	if err := json.Unmarshal(data, &groups); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	c := &Catalog{groups: make(map[Mode][]RawEntry, len(groups))}
	for key, entries := range groups {
		m, ok := ParseMode(key)
		if !ok || m == ModeAll {
			return nil, fmt.Errorf("catalog: unknown category %q", key)
		}
		c.groups[m] = entries
	}
	return c, nil
}

// Bank returns the normalized question bank for a mode. ModeAll
// concatenates every category in Categories() order before normalizing,
// so IDs are dense and contiguous across the union. An unknown mode yields
// an empty bank; Session.Start turns that into an error.
func (c *Catalog) Bank(m Mode) []Question {
	if m == ModeAll {
		var all []RawEntry
		for _, cat := range Categories() {
			all = append(all, c.groups[cat]...)
		}
		return Normalize(all)
	}
	return Normalize(c.groups[m])
}

// Size reports the number of questions a mode would draw from.
func (c *Catalog) Size(m Mode) int {
	if m == ModeAll {
		n := 0
		for _, cat := range Categories() {
			n += len(c.groups[cat])
		}
		return n
	}
	return len(c.groups[m])
}
