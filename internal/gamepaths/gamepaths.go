// Package gamepaths provides Zwift installation and user-data path detection.
package gamepaths

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// EnvInstallDir is the environment variable name for specifying the
// game installation directory.
const EnvInstallDir = "ZWIFTSTATE_INSTALLDIR"

// Fixed names and user-data-relative subpaths written by the game.
const (
	// VersionPointerName is the installation-relative file naming the
	// currently-active version manifest.
	VersionPointerName = "Zwift_ver_cur_filename.txt"

	// LogRelPath is the session log path relative to the user's
	// documents directory.
	LogRelPath = "Zwift/Logs/Log.txt"

	// PrefsRelPath is the preferences file path relative to the user's
	// documents directory.
	PrefsRelPath = "Zwift/prefs.xml"
)

// Sentinel errors.
var (
	ErrInstallDirNotFound = errors.New("install directory not found")
	ErrDocumentsNotFound  = errors.New("documents directory not found")
)

// DefaultInstallDir returns the platform-default game installation
// directory, or "" when the platform has no default (or the inputs
// needed to compute one are missing).
func DefaultInstallDir() string {
	switch runtime.GOOS {
	case "windows":
		programFiles := os.Getenv("ProgramFiles(x86)")
		if programFiles == "" {
			programFiles = `C:\Program Files (x86)`
		}
		if _, err := os.Stat(programFiles); err != nil {
			programFiles = `C:\Program Files`
		}
		return filepath.Join(programFiles, "Zwift")
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, "Library", "Application Support", "Zwift")
	default:
		return ""
	}
}

// FindInstallDir returns the game installation directory.
//
// Priority:
//  1. explicit (if non-empty)
//  2. ZWIFTSTATE_INSTALLDIR environment variable
//  3. Platform default from DefaultInstallDir()
//
// Returns ErrInstallDirNotFound if no valid directory is found.
// The returned path has symlinks resolved for consistency.
func FindInstallDir(explicit string) (string, error) {
	if explicit != "" {
		if resolved := resolveDir(explicit); resolved != "" {
			return resolved, nil
		}
		return "", fmt.Errorf("%w: specified directory does not exist", ErrInstallDirNotFound)
	}

	if envDir := os.Getenv(EnvInstallDir); envDir != "" {
		if resolved := resolveDir(envDir); resolved != "" {
			return resolved, nil
		}
		return "", fmt.Errorf("%w: %s environment variable points to invalid directory", ErrInstallDirNotFound, EnvInstallDir)
	}

	if dir := DefaultInstallDir(); dir != "" {
		if resolved := resolveDir(dir); resolved != "" {
			return resolved, nil
		}
	}

	return "", ErrInstallDirNotFound
}

// DocumentsDir resolves the user's documents directory. It is the
// default documents resolver injected into the extractor; callers may
// substitute their own (e.g. a shell-folder lookup on Windows).
func DocumentsDir(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDocumentsNotFound, err)
	}
	return filepath.Join(home, "Documents"), nil
}

// resolveDir resolves symlinks and validates that dir exists.
// Returns the resolved path if valid, empty string otherwise.
func resolveDir(dir string) string {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return ""
	}

	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		// Fallback to original path if symlink resolution fails
		// (e.g., permission issues, broken links)
		resolved = dir
	}

	return resolved
}
