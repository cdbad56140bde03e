package pacman

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/arthur-debert/pacls/pkg/errors"
	"github.com/arthur-debert/pacls/pkg/logging"
)

// localDir is the directory under the pacman dbpath holding one entry per
// installed package.
const localDir = "local"

// LocalDB is a read-only view of the installed package database.
type LocalDB struct {
	fs     afero.Fs
	dir    string
	logger zerolog.Logger

	once  sync.Once
	names map[string]struct{}
	err   error
}

// NewLocalDB returns a LocalDB for the pacman database rooted at dbPath
// (usually /var/lib/pacman). Nothing is read until the first query.
func NewLocalDB(fs afero.Fs, dbPath string) *LocalDB {
	return &LocalDB{
		fs:     fs,
		dir:    filepath.Join(dbPath, localDir),
		logger: logging.GetLogger("pacman.localdb"),
	}
}

// Load scans the local database once. Later calls return the first result.
// A missing directory is treated as an empty database.
func (db *LocalDB) Load() error {
	db.once.Do(func() {
		db.names, db.err = db.scan()
	})
	return db.err
}

func (db *LocalDB) scan() (map[string]struct{}, error) {
	names := make(map[string]struct{})

	entries, err := afero.ReadDir(db.fs, db.dir)
	if err != nil {
		if os.IsNotExist(err) {
			db.logger.Debug().Str("dir", db.dir).Msg("Local database missing, treating as empty")
			return names, nil
		}
		return nil, errors.Wrapf(err, errors.ErrLocalDB, "read %s", db.dir).
			WithDetail("dir", db.dir)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name, ok := packageName(entry.Name())
		if !ok {
			db.logger.Trace().Str("entry", entry.Name()).Msg("Skipping unrecognised local entry")
			continue
		}
		names[name] = struct{}{}
	}

	db.logger.Debug().Str("dir", db.dir).Int("installed", len(names)).Msg("Local database loaded")
	return names, nil
}

// Installed reports whether a package with the given name is installed.
// It returns false when the database could not be loaded.
func (db *LocalDB) Installed(name []byte) bool {
	if err := db.Load(); err != nil {
		return false
	}
	_, ok := db.names[string(name)]
	return ok
}

// Count returns the number of installed packages.
func (db *LocalDB) Count() int {
	if err := db.Load(); err != nil {
		return 0
	}
	return len(db.names)
}

// packageName extracts the package name from a local entry named
// <name>-<pkgver>-<pkgrel>. Neither pkgver nor pkgrel may contain a dash,
// so the name is everything before the second to last one.
func packageName(entry string) (string, bool) {
	rel := strings.LastIndexByte(entry, '-')
	if rel <= 0 || rel == len(entry)-1 {
		return "", false
	}
	ver := strings.LastIndexByte(entry[:rel], '-')
	if ver <= 0 || ver == rel-1 {
		return "", false
	}
	return entry[:ver], true
}
