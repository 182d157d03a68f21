package zwiftstate

import (
	"context"
	"fmt"
	"os"
	"regexp"
)

// readFile loads the file at path in full. A missing file is "no data",
// not an error: the writer process creates these files at its own pace.
// Read failures are logged and also degrade to "no data".
func (m *Monitor) readFile(ctx context.Context, path string) (string, bool) {
	if path == "" {
		return "", false
	}
	if err := ctx.Err(); err != nil {
		m.logDebug("read canceled", "path", path, "error", err)
		return "", false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			m.logDebug("read failed", "path", path, "error", err)
		}
		return "", false
	}
	return string(data), true
}

// lastMatch scans the file at path once, top to bottom, and returns the
// designated 1-based capture group of the last non-overlapping match of
// re. The log is an append-only session transcript, so the most recent
// mention of a state-changing event is authoritative. Returns false on
// a missing or unreadable file or when nothing matches.
func (m *Monitor) lastMatch(ctx context.Context, path string, re *regexp.Regexp, group int) (string, bool) {
	content, ok := m.readFile(ctx, path)
	if !ok {
		return "", false
	}

	matches := re.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return "", false
	}
	return captureGroup(matches[len(matches)-1], group)
}

// firstMatch is lastMatch's counterpart for documents that hold a single
// current value rather than a transcript: the first match wins and the
// rest of the file is left unexamined.
func (m *Monitor) firstMatch(ctx context.Context, path string, re *regexp.Regexp, group int) (string, bool) {
	content, ok := m.readFile(ctx, path)
	if !ok {
		return "", false
	}

	match := re.FindStringSubmatch(content)
	if match == nil {
		return "", false
	}
	return captureGroup(match, group)
}

func captureGroup(match []string, group int) (string, bool) {
	if group < 1 || group >= len(match) {
		return "", false
	}
	return match[group], true
}

// hex32 renders a fact value the way operators see it in the game's own
// tooling: zero-padded, 8 hex digits.
func hex32(v uint32) string {
	return fmt.Sprintf("0x%08X", v)
}
