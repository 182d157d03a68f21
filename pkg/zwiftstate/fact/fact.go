// Package fact defines the closed set of state facts the extractor derives.
//
// This package is separated from the main zwiftstate package so the CLI
// can validate fact selections without importing the extractor itself.
package fact

import (
	"sort"
	"strings"
)

// Name identifies one discrete piece of derived game state.
type Name string

const (
	// GameVersion is the installed/running game version (dotted triple).
	GameVersion Name = "game_version"

	// FlagID is the player's country flag id, from the preferences file.
	FlagID Name = "flag_id"

	// PlayerID is the network player id logged at login.
	PlayerID Name = "player_id"

	// JerseyID is the most recently selected jersey.
	JerseyID Name = "jersey_id"

	// BikeID is the most recently selected bike.
	BikeID Name = "bike_id"

	// SportID is the most recently selected sport (0 = default/cycling).
	SportID Name = "sport_id"

	// WorldID is the most recently loaded world asset bundle (0 = unset).
	WorldID Name = "world_id"

	// CourseID is derived from WorldID, never read from file.
	CourseID Name = "course_id"
)

// allNames is the canonical list of all fact names.
// Add new facts here when extending the extractor.
var allNames = []Name{
	GameVersion, FlagID, PlayerID, JerseyID, BikeID, SportID, WorldID, CourseID,
}

// Names returns a sorted list of all valid fact names.
// This is the single source of truth for fact enumeration.
func Names() []string {
	names := make([]string, len(allNames))
	for i, n := range allNames {
		names[i] = string(n)
	}
	sort.Strings(names)
	return names
}

// nameByString maps lowercase string names to Name for efficient lookup.
// Built once from allNames at package initialization.
var nameByString = func() map[string]Name {
	m := make(map[string]Name, len(allNames))
	for _, n := range allNames {
		m[string(n)] = n
	}
	return m
}()

// ParseName converts a string to Name if valid.
// It is case-insensitive and trims leading/trailing whitespace.
// Returns the name and true if found, zero value and false otherwise.
func ParseName(s string) (Name, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	n, ok := nameByString[s]
	return n, ok
}
