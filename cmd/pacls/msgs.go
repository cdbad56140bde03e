package pacls

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "List pacman sync databases and the AUR"
	MsgListShort       = "List available packages"
	MsgConfigShort     = "Print the effective configuration"
	MsgConfigLong      = "Print the configuration after merging defaults, the config file, PACLS_* variables and flags, as TOML."
	MsgDatabasesShort  = "Print the sync databases listed by default"
	MsgDatabasesLong   = "Print the local database set: the databases setting when non-empty, otherwise the repositories declared in pacman.conf."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Output
	MsgVersionFormat = "pacls %s\n"
	MsgErrorFormat   = "Error: %v"

	// Error messages
	MsgErrNoCommand  = "no command specified"
	MsgErrDumpConfig = "failed to render configuration: %w"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig     = "Configuration file (default $XDG_CONFIG_HOME/pacls/pacls.toml)"
	MsgFlagQuiet      = "Print package names only"
	MsgFlagColor      = "Color output: auto, always or never"
	MsgFlagAURURL     = "Base URL of the AUR"
	MsgFlagPacmanConf = "pacman configuration file"
	MsgFlagDBPath     = "pacman database directory"
	MsgFlagPacmanBin  = "pacman executable"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/list-long.txt
	msgListLongRaw string
	MsgListLong    = strings.TrimSpace(msgListLongRaw)

	//go:embed msgs/list-example.txt
	msgListExampleRaw string
	MsgListExample    = strings.TrimRight(msgListExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = msgUsageTemplateRaw
)
