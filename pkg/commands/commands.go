// Package commands provides high-level command implementations for pacls.
//
// This package contains the command orchestration layer that coordinates
// between the CLI interface and the listing pipeline.
//
// Each command is implemented in its own subdirectory:
//   - synclist/ - SyncList command
//
// This file re-exports the command functions so the CLI depends on one
// package.
package commands

import (
	"context"

	"github.com/arthur-debert/pacls/pkg/commands/synclist"
)

// SyncList lists sync databases through pacman, then the AUR.
type SyncListOptions = synclist.SyncListOptions

func SyncList(ctx context.Context, opts SyncListOptions) error {
	return synclist.SyncList(ctx, opts)
}
