package aur

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexNames(t *testing.T) {
	tests := []struct {
		name string
		data string
		want []string
	}{
		{
			name: "header and empty lines dropped",
			data: "header\nfoo\n\nbar\nbaz\n",
			want: []string{"foo", "bar", "baz"},
		},
		{
			name: "no trailing newline",
			data: "# AUR package list, generated on Fri, 16 Oct 2026\nfoo\nbar",
			want: []string{"foo", "bar"},
		},
		{
			name: "duplicates pass through",
			data: "h\nfoo\nfoo\n",
			want: []string{"foo", "foo"},
		},
		{
			name: "first line skipped even when it looks like a package",
			data: "yay\nparu\n",
			want: []string{"paru"},
		},
		{
			name: "empty first line is the header",
			data: "\nfoo\n",
			want: []string{"foo"},
		},
		{
			name: "header only",
			data: "header\n",
			want: nil,
		},
		{
			name: "empty body",
			data: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := ParseIndex([]byte(tt.data))
			assert.Equal(t, tt.want, collect(idx))
		})
	}
}

func TestIndexNamesRestartable(t *testing.T) {
	idx := ParseIndex([]byte("header\nfoo\nbar\n"))

	first := collect(idx)
	second := collect(idx)
	assert.Equal(t, []string{"foo", "bar"}, first)
	assert.Equal(t, first, second)
}

func TestIndexNamesEarlyStop(t *testing.T) {
	idx := ParseIndex([]byte("header\nfoo\nbar\nbaz\n"))

	var got []string
	for name := range idx.Names() {
		got = append(got, string(name))
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"foo", "bar"}, got)
}
