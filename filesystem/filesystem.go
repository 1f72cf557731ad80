// Package filesystem routes every file access through a swappable afero backend.
//
// Production code uses the OS filesystem; tests switch to an in-memory one so that
// state files, caches and logs never touch the real disk.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active backend.
func API() afero.Afero {
	return backend
}

// SetOsFs restores the native filesystem.
func SetOsFs() {
	SetFs(afero.NewOsFs())
}

// SetMemMapFs switches to a volatile in-memory filesystem.
func SetMemMapFs() {
	SetFs(afero.NewMemMapFs())
}

// SetFs installs an arbitrary afero filesystem, e.g. a read-only one in tests.
func SetFs(fs afero.Fs) {
	backend = afero.Afero{Fs: fs}
}
