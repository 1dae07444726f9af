// Package platform provides cross-platform filesystem operations: symlink
// creation, permission management, and marking scripts executable. On Unix
// systems it uses native symlinks and chmod directly. On Windows it falls
// back to file copying with a .target sidecar when developer mode symlinks
// are unavailable, and permission calls become no-ops.
package platform
