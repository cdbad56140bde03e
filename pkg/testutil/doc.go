// Package testutil provides fixtures for testing pacls components.
//
// Key components:
//   - GzipBytes / NewIndexServer: an AUR endpoint serving a package index
//   - LocalDBFs: an in-memory pacman database directory
//   - FakePacman: a shell script standing in for the pacman binary
//
// Usage guidelines:
//   - Prefer LocalDBFs over real directories; it needs no cleanup
//   - All test data should be defined inline, not in external files
package testutil
