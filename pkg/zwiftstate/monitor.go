package zwiftstate

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/zwiftstate/zwiftstate-go/internal/gamepaths"
)

// Monitor derives game state from on-disk artifacts: the version pointer
// and manifest in the installation directory, the append-only session
// log, and the preferences file. It never talks to the game process and
// never writes to any inspected file.
//
// A Monitor is configured once at construction. Accessors re-read the
// relevant file on every call, so each call observes the latest state
// the game has flushed to disk. Intended usage is single-goroutine;
// paths are written at most once (construction, then Init) and only
// read afterwards.
type Monitor struct {
	cfg *config

	// Resolved lazily by Init, at most once per Monitor.
	logFile      string
	prefsFile    string
	docsResolved bool
	installDir   string
	versionFile  string
}

// New creates a Monitor. When no installation directory is supplied, a
// platform default is derived; failure to derive one is logged and
// degrades to "unset", which downstream reads treat as file-not-found.
func New(opts ...Option) *Monitor {
	cfg := applyOptions(opts)

	m := &Monitor{
		cfg:       cfg,
		logFile:   cfg.logFile,
		prefsFile: cfg.prefsFile,
	}

	dir, err := gamepaths.FindInstallDir(cfg.installDir)
	if err != nil {
		m.logDebug("install directory not resolved", "error", err)
	}
	m.installDir = dir

	m.versionFile = cfg.versionFile
	if m.versionFile == "" && m.installDir != "" {
		m.versionFile = filepath.Join(m.installDir, gamepaths.VersionPointerName)
	}

	return m
}

// Init resolves the session log and preferences paths from the
// documents-directory resolver. The resolver is called at most once per
// Monitor; Init is a no-op when both paths are already set, either from
// construction or from a prior call.
//
// This is the only operation that returns an error: a resolver failure
// is propagated to the caller. Accessors called without a successful
// Init fall back to their documented defaults.
func (m *Monitor) Init(ctx context.Context) error {
	if m.logFile != "" && m.prefsFile != "" {
		return nil
	}
	if m.docsResolved {
		return nil
	}

	docs, err := m.cfg.docsDir(ctx)
	if err != nil {
		return err
	}
	m.docsResolved = true

	if m.logFile == "" {
		m.logFile = filepath.Join(docs, filepath.FromSlash(gamepaths.LogRelPath))
	}
	if m.prefsFile == "" {
		m.prefsFile = filepath.Join(docs, filepath.FromSlash(gamepaths.PrefsRelPath))
	}

	m.logDebug("user-data paths resolved", "log", m.logFile, "prefs", m.prefsFile)
	return nil
}

// CloseProcess exists for interface symmetry with monitors that hold a
// handle to the game process. This monitor only reads files, so it has
// nothing to release.
func (m *Monitor) CloseProcess() error {
	return nil
}

// logDebug logs via the configured logger, if any.
func (m *Monitor) logDebug(msg string, args ...any) {
	if m.cfg.logger != nil {
		m.cfg.logger.Debug(msg, args...)
	}
}

// logValue emits the operator-facing diagnostic for a derived numeric
// fact, including the zero-padded hex rendering.
func (m *Monitor) logValue(name string, v uint32) {
	if m.cfg.logger != nil {
		m.cfg.logger.Debug("fact derived",
			"fact", name, "value", v, slog.String("hex", hex32(v)))
	}
}
