// Package pacman reads local pacman state and runs pacman on behalf of
// pacls.
//
// Three pieces live here:
//
//   - ReadDatabases lists the sync repositories declared in pacman.conf.
//   - LocalDB answers "is this package installed" from the local database
//     directory (<dbpath>/local).
//   - Runner lists sync databases by executing `pacman -Sl`, leaving the
//     output format entirely to pacman.
//
// Filesystem access goes through afero so tests can run against an
// in-memory tree.
package pacman
