// Package zwiftstate derives the runtime state of a locally installed
// Zwift process from the artifacts it leaves on disk.
//
// This package allows you to:
//   - Resolve the installed/running game version
//   - Extract the player, jersey, bike, sport and world selection from
//     the session log and preferences file
//   - Derive the active course from the loaded world
//
// Nothing is read from the live process: every fact comes from the
// version pointer and manifest in the installation directory, the
// append-only session log, and the preferences file, all of which the
// game writes at its own pace. Each accessor re-reads the relevant file
// in full, so repeated calls always observe the latest flushed state.
//
// # Basic Usage
//
//	m := zwiftstate.New()
//	if err := m.Init(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("version:", m.GameVersion(ctx))
//	if id, ok := m.PlayerID(ctx); ok {
//	    fmt.Println("player:", id)
//	}
//	fmt.Println("course:", m.CourseID(ctx))
//
// Construction-time overrides bypass file derivation per fact:
//
//	m := zwiftstate.New(
//	    zwiftstate.WithGameVersion("1.83.0"),
//	    zwiftstate.WithWorldID(2),
//	)
//
// # Error Model
//
// Accessors never fail. A missing file, a read error or a pattern miss
// degrades to the fact's documented default or "unknown" result, with
// diagnostics going to the logger supplied via WithLogger. The one
// exception is Init, which propagates a documents-resolver failure.
//
// # Disclaimer
//
// This is an unofficial tool and is not affiliated with Zwift Inc.
package zwiftstate
