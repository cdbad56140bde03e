package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/pacls/pkg/errors"
	"github.com/arthur-debert/pacls/pkg/pacman"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "pacman status is passed on",
			err:  errors.Wrap(&pacman.ExitError{Code: 3}, errors.ErrDelegate, "pacman -Sl nosuchdb"),
			want: 3,
		},
		{
			name: "pacman killed by a signal",
			err:  errors.Wrap(&pacman.ExitError{Code: -1}, errors.ErrDelegate, "pacman -Sl core"),
			want: 1,
		},
		{
			name: "other errors",
			err:  errors.New(errors.ErrHTTPStatus, "get https://aur.archlinux.org/packages.gz: 503 Service Unavailable"),
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}
