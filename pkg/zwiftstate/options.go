package zwiftstate

import (
	"context"
	"log/slog"

	"github.com/zwiftstate/zwiftstate-go/internal/gamepaths"
)

// DocumentsDirFunc resolves the user's documents directory. It may block
// (e.g. a shell-folder lookup) and is called at most once per Monitor,
// during Init.
type DocumentsDirFunc func(ctx context.Context) (string, error)

// Option configures a Monitor using the functional options pattern.
type Option func(*config)

// config holds the immutable construction-time configuration.
type config struct {
	installDir  string
	versionFile string
	logFile     string
	prefsFile   string
	docsDir     DocumentsDirFunc
	logger      *slog.Logger

	// Overrides are pointers so an explicit zero is distinguishable
	// from "not provided".
	gameVersion *string
	flagID      *uint32
	playerID    *uint32
	sportID     *uint32
	worldID     *uint32
	courseID    *uint32
}

// defaultConfig returns a config with sensible defaults.
func defaultConfig() *config {
	return &config{
		docsDir: gamepaths.DocumentsDir,
	}
}

// applyOptions applies functional options to a config.
func applyOptions(opts []Option) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// WithInstallDir sets the game installation directory.
// If not set, a platform default is derived (see internal/gamepaths).
// Can also be set via the ZWIFTSTATE_INSTALLDIR environment variable.
func WithInstallDir(dir string) Option {
	return func(c *config) {
		c.installDir = dir
	}
}

// WithVersionFile sets the path to the version pointer file.
// If not set, it is resolved relative to the installation directory.
func WithVersionFile(path string) Option {
	return func(c *config) {
		c.versionFile = path
	}
}

// WithLogFile sets the path to the session log file.
// If not set, Init resolves it under the user's documents directory.
func WithLogFile(path string) Option {
	return func(c *config) {
		c.logFile = path
	}
}

// WithPrefsFile sets the path to the preferences file.
// If not set, Init resolves it under the user's documents directory.
func WithPrefsFile(path string) Option {
	return func(c *config) {
		c.prefsFile = path
	}
}

// WithDocumentsDirFunc sets the documents-directory resolver used by Init.
// The default resolver derives the directory from the user's home.
func WithDocumentsDirFunc(fn DocumentsDirFunc) Option {
	return func(c *config) {
		if fn != nil {
			c.docsDir = fn
		}
	}
}

// WithLogger sets the slog logger for diagnostic output.
// If nil (default), logging is disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithGameVersion overrides the game version. The accessor returns it
// verbatim and never touches a file.
func WithGameVersion(version string) Option {
	return func(c *config) {
		c.gameVersion = &version
	}
}

// WithFlagID overrides the country flag id. Zero is honored.
func WithFlagID(id uint32) Option {
	return func(c *config) {
		c.flagID = &id
	}
}

// WithPlayerID overrides the player id. Zero is honored.
func WithPlayerID(id uint32) Option {
	return func(c *config) {
		c.playerID = &id
	}
}

// WithSportID overrides the sport id. Zero is honored.
func WithSportID(id uint32) Option {
	return func(c *config) {
		c.sportID = &id
	}
}

// WithWorldID overrides the world id. Zero is honored.
// CourseID derivation uses the override when present.
func WithWorldID(id uint32) Option {
	return func(c *config) {
		c.worldID = &id
	}
}

// WithCourseID overrides the course id, bypassing derivation from WorldID.
func WithCourseID(id uint32) Option {
	return func(c *config) {
		c.courseID = &id
	}
}
