package utils

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("PACLS_TEST_ROOT", "/mnt")

	tests := []struct {
		name string
		path string
		want string
	}{
		{"empty", "", ""},
		{"absolute", "/etc/pacman.conf", "/etc/pacman.conf"},
		{"relative", "pacman", "pacman"},
		{"home", "~", home},
		{"under home", "~/.config/pacls/theme.yaml", filepath.Join(home, ".config/pacls/theme.yaml")},
		{"tilde inside", "/srv/~user", "/srv/~user"},
		{"env var", "$PACLS_TEST_ROOT/var/lib/pacman", "/mnt/var/lib/pacman"},
		{"braced env var", "${PACLS_TEST_ROOT}/etc/pacman.conf", "/mnt/etc/pacman.conf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.path))
		})
	}
}
