package zwiftstate

import (
	"context"
	"path/filepath"
	"regexp"
	"strings"
)

// DefaultGameVersion is returned when no version source yields a value.
const DefaultGameVersion = "0.0.0"

var (
	// sversion="1.83.0 (139872)" — the capture stops at the first
	// character that is not a digit or a dot, dropping the build suffix.
	reManifestVersion = regexp.MustCompile(`sversion="(\d+\.\d+\.\d+)`)

	// [11:23:45] Game Version: 1.83.0
	reLogVersion = regexp.MustCompile(`\[[^\]]*\]\s*Game Version: (\d+\.\d+\.\d+)`)
)

// GameVersion returns the game version as a dotted triple.
//
// Resolution order:
//  1. the construction-time override, verbatim;
//  2. the version pointer file, read as text, trimmed and stripped of
//     null padding, naming a manifest relative to the installation
//     directory whose sversion attribute carries the version — this
//     reflects the currently-installed build even before the game has
//     logged anything this session;
//  3. the last "Game Version" line in the session log, which reflects
//     what actually last ran;
//  4. DefaultGameVersion.
//
// Failures in tier 2 or 3 are logged and fall through; GameVersion
// never returns an error.
func (m *Monitor) GameVersion(ctx context.Context) string {
	if m.cfg.gameVersion != nil {
		return *m.cfg.gameVersion
	}

	if v, ok := m.manifestVersion(ctx); ok {
		return v
	}

	if v, ok := m.lastMatch(ctx, m.logFile, reLogVersion, 1); ok {
		m.logDebug("game version from log", "version", v)
		return v
	}

	return DefaultGameVersion
}

// manifestVersion resolves tier 2: pointer file to manifest to version.
func (m *Monitor) manifestVersion(ctx context.Context) (string, bool) {
	pointer, ok := m.readFile(ctx, m.versionFile)
	if !ok {
		return "", false
	}

	// The pointer may be a fixed-width, null-padded record.
	name := strings.TrimSpace(strings.ReplaceAll(pointer, "\x00", ""))
	if name == "" {
		m.logDebug("version pointer file is empty", "path", m.versionFile)
		return "", false
	}

	manifest, ok := m.readFile(ctx, filepath.Join(m.installDir, name))
	if !ok {
		m.logDebug("version manifest not readable", "manifest", name)
		return "", false
	}

	match := reManifestVersion.FindStringSubmatch(manifest)
	if match == nil {
		m.logDebug("manifest has no sversion attribute", "manifest", name)
		return "", false
	}

	m.logDebug("game version from manifest", "version", match[1], "manifest", name)
	return match[1], true
}
