package targets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartition(t *testing.T) {
	databases := []string{"core", "extra", "multilib"}

	tests := []struct {
		name       string
		targets    []string
		wantLocal  []string
		wantRemote bool
	}{
		{
			name:       "empty targets select everything",
			targets:    nil,
			wantLocal:  []string{"core", "extra", "multilib"},
			wantRemote: true,
		},
		{
			name:       "empty slice behaves like nil",
			targets:    []string{},
			wantLocal:  []string{"core", "extra", "multilib"},
			wantRemote: true,
		},
		{
			name:       "aur only",
			targets:    []string{"aur"},
			wantLocal:  []string{},
			wantRemote: true,
		},
		{
			name:       "aur alongside local names",
			targets:    []string{"core", "aur", "extra"},
			wantLocal:  []string{"core", "extra"},
			wantRemote: true,
		},
		{
			name:       "repeated aur markers collapse",
			targets:    []string{"aur", "core", "aur"},
			wantLocal:  []string{"core"},
			wantRemote: true,
		},
		{
			name:       "no aur leaves targets unchanged",
			targets:    []string{"extra", "core"},
			wantLocal:  []string{"extra", "core"},
			wantRemote: false,
		},
		{
			name:       "unknown and duplicate names pass through",
			targets:    []string{"custom", "core", "core"},
			wantLocal:  []string{"custom", "core", "core"},
			wantRemote: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := Partition(tt.targets, databases)
			assert.Equal(t, tt.wantLocal, sel.Local)
			assert.Equal(t, tt.wantRemote, sel.Remote)
			assert.Equal(t, len(tt.wantLocal) > 0, sel.HasLocal())
		})
	}
}

func TestPartitionWithoutDatabases(t *testing.T) {
	sel := Partition(nil, nil)
	assert.Empty(t, sel.Local)
	assert.True(t, sel.Remote)
	assert.False(t, sel.HasLocal())
}

func TestPartitionDoesNotAliasInputs(t *testing.T) {
	databases := []string{"core", "extra"}
	sel := Partition(nil, databases)
	sel.Local[0] = "changed"
	assert.Equal(t, "core", databases[0])

	targets := []string{"aur", "core"}
	_ = Partition(targets, databases)
	assert.Equal(t, []string{"aur", "core"}, targets)
}
