// Package synclist implements the sync listing command: pacman's own
// listing for local databases followed by the AUR package index.
package synclist

import (
	"context"
	"io"
	"os"

	"github.com/arthur-debert/pacls/pkg/aur"
	"github.com/arthur-debert/pacls/pkg/listing"
	"github.com/arthur-debert/pacls/pkg/logging"
	"github.com/arthur-debert/pacls/pkg/pacman"
	"github.com/arthur-debert/pacls/pkg/style"
	"github.com/arthur-debert/pacls/pkg/targets"
)

// DatabaseSource supplies the local database set.
type DatabaseSource interface {
	Databases() ([]string, error)
}

// IndexSource supplies the AUR package index.
type IndexSource interface {
	Fetch(ctx context.Context) (*aur.Index, error)
}

// loader is implemented by lookups that must be loaded before use, such
// as pacman.LocalDB.
type loader interface {
	Load() error
	Count() int
}

// SyncListOptions defines the options for the SyncList command.
type SyncListOptions struct {
	// Targets are the requested sources. Empty means every database and the AUR.
	Targets []string
	// Databases is only consulted when Targets is empty.
	Databases DatabaseSource
	// Delegate lists local databases.
	Delegate pacman.Delegate
	// Index fetches the AUR package names.
	Index IndexSource
	// Installed marks installed AUR packages. Unused in quiet mode.
	Installed listing.Lookup
	// Quiet prints bare package names.
	Quiet bool
	// Decorators style decorated lines.
	Decorators style.Decorators
	// Out receives AUR lines. Defaults to os.Stdout.
	Out io.Writer
}

// SyncList lists the requested sync databases through pacman, then the
// AUR. The two run one after the other; the first error ends the command.
func SyncList(ctx context.Context, opts SyncListOptions) error {
	log := logging.GetLogger("commands.synclist")
	log.Debug().Str("command", "SyncList").Strs("targets", opts.Targets).Msg("Executing command")

	var dbs []string
	if len(opts.Targets) == 0 && opts.Databases != nil {
		var err error
		if dbs, err = opts.Databases.Databases(); err != nil {
			return err
		}
	}

	sel := targets.Partition(opts.Targets, dbs)
	log.Debug().Strs("local", sel.Local).Bool("aur", sel.Remote).Msg("Targets partitioned")

	if sel.HasLocal() {
		if err := opts.Delegate.SyncList(ctx, sel.Local); err != nil {
			return err
		}
	}

	if !sel.Remote {
		log.Info().Str("command", "SyncList").Msg("Command finished")
		return nil
	}

	return listAUR(ctx, opts)
}

func listAUR(ctx context.Context, opts SyncListOptions) error {
	log := logging.GetLogger("commands.synclist")

	idx, err := opts.Index.Fetch(ctx)
	if err != nil {
		return err
	}

	installed := opts.Installed
	if opts.Quiet {
		installed = nil
	} else if l, ok := installed.(loader); ok {
		if err := l.Load(); err != nil {
			return err
		}
		log.Debug().Int("installed", l.Count()).Msg("Local database loaded")
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	decorators := opts.Decorators
	if decorators.Repo == nil || decorators.Package == nil || decorators.Version == nil || decorators.Installed == nil {
		decorators = style.Plain()
	}

	r := &listing.Renderer{
		Quiet:      opts.Quiet,
		Decorators: decorators,
		Installed:  installed,
	}
	n := r.Render(out, idx.Names())

	log.Info().Str("command", "SyncList").Int("aurPackages", n).Msg("Command finished")
	return nil
}
