package testutil

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// DBPath is the database directory used by LocalDBFs.
const DBPath = "/var/lib/pacman"

// GzipBytes compresses data the way the AUR serves packages.gz.
func GzipBytes(t *testing.T, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// IndexServer is an httptest server publishing a gzipped package index at
// /packages.gz. Other paths answer 404.
type IndexServer struct {
	*httptest.Server
	hits atomic.Int32
}

// Hits counts the requests served so far.
func (s *IndexServer) Hits() int {
	return int(s.hits.Load())
}

// NewIndexServer starts an IndexServer for index. It is closed when the
// test ends.
func NewIndexServer(t *testing.T, index string) *IndexServer {
	t.Helper()
	body := GzipBytes(t, index)

	s := &IndexServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.hits.Add(1)
		if r.URL.Path != "/packages.gz" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(body)
	}))
	t.Cleanup(s.Close)
	return s
}

// LocalDBFs returns an in-memory filesystem holding a pacman local
// database under DBPath with one directory per entry.
func LocalDBFs(t *testing.T, entries ...string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	local := path.Join(DBPath, "local")
	require.NoError(t, fs.MkdirAll(local, 0755))
	require.NoError(t, afero.WriteFile(fs, path.Join(local, "ALPM_DB_VERSION"), []byte("9\n"), 0644))
	for _, e := range entries {
		require.NoError(t, fs.MkdirAll(path.Join(local, e), 0755))
		require.NoError(t, afero.WriteFile(fs, path.Join(local, e, "desc"), []byte("%NAME%\n"), 0644))
	}
	return fs
}

// FakePacman writes a pacman stand-in into dir. It echoes its arguments
// on one line and exits with the status in FAKE_PACMAN_EXIT.
func FakePacman(t *testing.T, dir string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	bin := filepath.Join(dir, "pacman")
	script := "#!/bin/sh\necho \"$@\"\nexit ${FAKE_PACMAN_EXIT:-0}\n"
	require.NoError(t, os.WriteFile(bin, []byte(script), 0755))
	return bin
}
