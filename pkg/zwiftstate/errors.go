package zwiftstate

import "github.com/zwiftstate/zwiftstate-go/internal/gamepaths"

// Sentinel errors returned by this package.
var (
	// ErrInstallDirNotFound is reported (via the diagnostic logger) when
	// the game installation directory cannot be found or accessed.
	ErrInstallDirNotFound = gamepaths.ErrInstallDirNotFound

	// ErrDocumentsNotFound is returned by Init when the default
	// documents-directory resolver fails.
	ErrDocumentsNotFound = gamepaths.ErrDocumentsNotFound
)
