package zwiftstate

import (
	"context"
	"regexp"
	"strconv"

	"github.com/zwiftstate/zwiftstate-go/pkg/zwiftstate/fact"
)

// Log and preferences patterns. The jersey and bike phrasings changed
// across game versions; the alternations cover every phrasing observed,
// since the semantic event did not change.
var (
	// [11:23:45] NETCLIENT:[INFO] Player ID: 1234567
	rePlayerID = regexp.MustCompile(`\[[^\]]*\]\s*NETCLIENT:\[INFO\] Player ID: (\d+)`)

	// [11:23:45] >set Jersey: 24 / Jersey set 24 / Jersey has been set 24
	reJerseyID = regexp.MustCompile(`\[[^\]]*\]\s*(?:>set Jersey: |Jersey set |Jersey has been set )(\d+)`)

	// [11:23:45] >set Bike: 9 / Bike set 9 / Bike has been set 9
	reBikeID = regexp.MustCompile(`\[[^\]]*\]\s*(?:>set Bike: |Bike set |Bike has been set )(\d+)`)

	// [11:23:45] Setting sport to 1
	reSportID = regexp.MustCompile(`\[[^\]]*\]\s*Setting sport to (\S+)`)

	// [11:23:45] Loading WAD file 'assets/Worlds/world4/data.wad'
	reWorldID = regexp.MustCompile(`\[[^\]]*\]\s*Loading WAD file '[^']*[Ww]orlds/world(\d+)/`)

	// <flag>208</flag> in prefs.xml
	reFlagID = regexp.MustCompile(`<flag>(\d+)</flag>`)
)

// FlagID returns the player's country flag id from the preferences file.
// Unlike the log-derived facts, preferences hold a single current value,
// so the first match wins. The boolean is false when the fact is unknown
// (missing file, no match).
func (m *Monitor) FlagID(ctx context.Context) (uint32, bool) {
	if m.cfg.flagID != nil {
		return *m.cfg.flagID, true
	}

	s, ok := m.firstMatch(ctx, m.prefsFile, reFlagID, 1)
	if !ok {
		return 0, false
	}
	return m.parseID(string(fact.FlagID), s)
}

// PlayerID returns the network player id from the most recent login
// line in the session log. The boolean is false when the fact is
// unknown.
func (m *Monitor) PlayerID(ctx context.Context) (uint32, bool) {
	if m.cfg.playerID != nil {
		return *m.cfg.playerID, true
	}

	s, ok := m.lastMatch(ctx, m.logFile, rePlayerID, 1)
	if !ok {
		return 0, false
	}
	return m.parseID(string(fact.PlayerID), s)
}

// JerseyID returns the most recently selected jersey id from the
// session log. The boolean is false when the fact is unknown.
func (m *Monitor) JerseyID(ctx context.Context) (uint32, bool) {
	s, ok := m.lastMatch(ctx, m.logFile, reJerseyID, 1)
	if !ok {
		return 0, false
	}
	return m.parseID(string(fact.JerseyID), s)
}

// BikeID returns the most recently selected bike id from the session
// log. The boolean is false when the fact is unknown.
func (m *Monitor) BikeID(ctx context.Context) (uint32, bool) {
	s, ok := m.lastMatch(ctx, m.logFile, reBikeID, 1)
	if !ok {
		return 0, false
	}
	return m.parseID(string(fact.BikeID), s)
}

// SportID returns the most recently selected sport. The game logs the
// sport as a token that is usually numeric; a non-numeric token is not
// an error and yields the default sport 0.
func (m *Monitor) SportID(ctx context.Context) uint32 {
	if m.cfg.sportID != nil {
		return *m.cfg.sportID
	}

	s, ok := m.lastMatch(ctx, m.logFile, reSportID, 1)
	if !ok {
		return 0
	}
	id, ok := m.parseID(string(fact.SportID), s)
	if !ok {
		return 0
	}
	return id
}

// WorldID returns the most recently loaded world index from the session
// log, or 0 when no world has been loaded.
func (m *Monitor) WorldID(ctx context.Context) uint32 {
	if m.cfg.worldID != nil {
		return *m.cfg.worldID
	}

	s, ok := m.lastMatch(ctx, m.logFile, reWorldID, 1)
	if !ok {
		return 0
	}
	id, ok := m.parseID(string(fact.WorldID), s)
	if !ok {
		return 0
	}
	return id
}

// CourseID returns the course corresponding to the current world. It is
// never read from a file: course geometry is keyed to the world asset
// bundle by a fixed mapping. Worlds 0 and 1 both map to course 6.
func (m *Monitor) CourseID(ctx context.Context) uint32 {
	if m.cfg.courseID != nil {
		return *m.cfg.courseID
	}

	course := courseForWorld(m.WorldID(ctx))
	m.logValue(string(fact.CourseID), course)
	return course
}

// courseForWorld maps a world asset index to its course geometry id.
func courseForWorld(world uint32) uint32 {
	switch world {
	case 0, 1:
		return 6
	case 2:
		return 2
	default:
		return world + 4
	}
}

// parseID parses a captured decimal token and emits the operator-facing
// diagnostic. A non-numeric capture degrades to "unknown".
func (m *Monitor) parseID(name, s string) (uint32, bool) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		m.logDebug("non-numeric capture", "fact", name, "capture", s)
		return 0, false
	}
	m.logValue(name, uint32(id))
	return uint32(id), true
}

// Snapshot is a one-call capture of every fact. Facts that can be
// unknown are pointers and marshal as absent rather than zero.
type Snapshot struct {
	GameVersion string  `json:"game_version"`
	FlagID      *uint32 `json:"flag_id,omitempty"`
	PlayerID    *uint32 `json:"player_id,omitempty"`
	JerseyID    *uint32 `json:"jersey_id,omitempty"`
	BikeID      *uint32 `json:"bike_id,omitempty"`
	SportID     uint32  `json:"sport_id"`
	WorldID     uint32  `json:"world_id"`
	CourseID    uint32  `json:"course_id"`
}

// Snapshot reads every fact once and returns them together. Each fact
// is derived independently, exactly as the individual accessors would.
func (m *Monitor) Snapshot(ctx context.Context) Snapshot {
	snap := Snapshot{
		GameVersion: m.GameVersion(ctx),
		SportID:     m.SportID(ctx),
		WorldID:     m.WorldID(ctx),
		CourseID:    m.CourseID(ctx),
	}
	if id, ok := m.FlagID(ctx); ok {
		snap.FlagID = &id
	}
	if id, ok := m.PlayerID(ctx); ok {
		snap.PlayerID = &id
	}
	if id, ok := m.JerseyID(ctx); ok {
		snap.JerseyID = &id
	}
	if id, ok := m.BikeID(ctx); ok {
		snap.BikeID = &id
	}
	return snap
}
