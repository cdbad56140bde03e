package pacman

import (
	"bufio"
	"strings"

	"github.com/spf13/afero"

	"github.com/arthur-debert/pacls/pkg/errors"
)

// optionsSection is the only pacman.conf section that is not a repository.
const optionsSection = "options"

// ReadDatabases returns the repository sections of the pacman.conf at path,
// in declaration order. Include directives are not followed: they can only
// add servers to a repository, never declare a new one.
func ReadDatabases(fs afero.Fs, path string) ([]string, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPacmanConf, "open %s", path).
			WithDetail("path", path)
	}
	defer func() { _ = f.Close() }()

	var dbs []string
	seen := make(map[string]bool)
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !strings.HasPrefix(line, "[") {
			continue
		}
		if !strings.HasSuffix(line, "]") {
			return nil, errors.Newf(errors.ErrPacmanConf, "%s:%d: malformed section header %q", path, lineNo, line).
				WithDetail("path", path).
				WithDetail("line", lineNo)
		}

		name := strings.TrimSpace(line[1 : len(line)-1])
		if name == "" || name == optionsSection || seen[name] {
			continue
		}
		seen[name] = true
		dbs = append(dbs, name)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, errors.ErrPacmanConf, "read %s", path).
			WithDetail("path", path)
	}

	return dbs, nil
}

// SyncDatabases resolves the local database set: the configured list when
// one is given, otherwise the repositories of pacman.conf.
type SyncDatabases struct {
	Fs         afero.Fs
	ConfPath   string
	Configured []string
}

// Databases returns the resolved database names.
func (s SyncDatabases) Databases() ([]string, error) {
	if len(s.Configured) > 0 {
		return append([]string(nil), s.Configured...), nil
	}
	return ReadDatabases(s.Fs, s.ConfPath)
}
