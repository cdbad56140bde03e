package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/arthur-debert/pacls/cmd/pacls"
	"github.com/arthur-debert/pacls/pkg/errors"
	"github.com/arthur-debert/pacls/pkg/pacman"
	"github.com/arthur-debert/pacls/pkg/style"
)

func main() {
	rootCmd := pacls.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode reports err and picks the process status. pacman has already
// written its own diagnostics, so its failures only pass the status on.
func exitCode(err error) int {
	log.Debug().EmbedObject(errors.LogObject(err)).Err(err).Msg("Command failed")

	if code, ok := pacman.ExitCode(err); ok {
		if code > 0 {
			return code
		}
		return 1
	}

	fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf(pacls.MsgErrorFormat, err)))
	return 1
}
