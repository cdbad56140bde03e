package pacls

import (
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/pacls/internal/version"
	"github.com/arthur-debert/pacls/pkg/aur"
	"github.com/arthur-debert/pacls/pkg/commands"
	"github.com/arthur-debert/pacls/pkg/config"
	"github.com/arthur-debert/pacls/pkg/logging"
	"github.com/arthur-debert/pacls/pkg/pacman"
	"github.com/arthur-debert/pacls/pkg/style"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity  int
		configFile string
	)

	rootCmd := &cobra.Command{
		Use:     "pacls",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", MsgFlagConfig)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newDatabasesCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	initTopics(rootCmd)

	return rootCmd
}

// flagKeys maps command-line flags to the configuration keys they override.
var flagKeys = map[string]string{
	"color":       "display.color",
	"aur-url":     "aur.url",
	"pacman-conf": "pacman.conf",
	"dbpath":      "pacman.dbpath",
	"pacman-bin":  "pacman.bin",
}

// loadConfig layers the flags the user set over the configuration files.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	overrides := map[string]interface{}{}
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			overrides[key] = f.Value.String()
		}
	}

	file, _ := cmd.Flags().GetString("config")
	return config.Load(config.LoadOptions{File: file, Overrides: overrides})
}

func syncDatabases(cfg *config.Config) pacman.SyncDatabases {
	return pacman.SyncDatabases{
		Fs:         afero.NewOsFs(),
		ConfPath:   cfg.Pacman.Conf,
		Configured: cfg.Databases,
	}
}

// listDecorators builds the theme for w. The theme file, when configured,
// replaces the built-in theme.
func listDecorators(cfg config.DisplayConfig, w io.Writer) (style.Decorators, error) {
	mode, err := style.ParseColorMode(cfg.Color)
	if err != nil {
		return style.Decorators{}, err
	}

	r := style.NewRenderer(w, mode)
	if cfg.Theme == "" {
		return style.DefaultTheme(r).Decorators(), nil
	}

	theme, err := style.LoadThemeFile(cfg.Theme, r)
	if err != nil {
		return style.Decorators{}, err
	}
	return theme.Decorators(), nil
}

func newListCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:     "list [targets...] [-- pacman-args...]",
		Aliases: []string{"sl"},
		Short:   MsgListShort,
		Long:    MsgListLong,
		Example: MsgListExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			targets, passthrough := args, []string(nil)
			if dash := cmd.ArgsLenAtDash(); dash >= 0 {
				targets, passthrough = args[:dash], args[dash:]
			}

			out := cmd.OutOrStdout()
			opts := commands.SyncListOptions{
				Targets:   targets,
				Databases: syncDatabases(cfg),
				Delegate: pacman.NewRunner(pacman.RunnerOptions{
					Bin:    cfg.Pacman.Bin,
					Config: cfg.Pacman.Conf,
					DBPath: cfg.Pacman.DBPath,
					Args:   passthrough,
					Quiet:  quiet,
					Stdin:  cmd.InOrStdin(),
					Stdout: out,
					Stderr: cmd.ErrOrStderr(),
				}),
				Index: aur.NewFetcher(aur.Options{
					Client:    &http.Client{Timeout: cfg.HTTP.Timeout},
					BaseURL:   cfg.AUR.URL,
					UserAgent: cfg.AUR.UserAgent,
				}),
				Quiet: quiet,
				Out:   out,
			}

			if !quiet {
				opts.Installed = pacman.NewLocalDB(afero.NewOsFs(), cfg.Pacman.DBPath)
				if opts.Decorators, err = listDecorators(cfg.Display, out); err != nil {
					return err
				}
			}

			log.Info().
				Strs("targets", targets).
				Str("aur_url", cfg.AUR.URL).
				Bool("quiet", quiet).
				Msg("Listing packages")

			return commands.SyncList(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, MsgFlagQuiet)
	cmd.Flags().String("color", string(style.ColorAuto), MsgFlagColor)
	cmd.Flags().String("aur-url", aur.DefaultURL, MsgFlagAURURL)
	cmd.Flags().String("pacman-conf", "", MsgFlagPacmanConf)
	cmd.Flags().String("dbpath", "", MsgFlagDBPath)
	cmd.Flags().String("pacman-bin", pacman.DefaultBin, MsgFlagPacmanBin)

	_ = cmd.RegisterFlagCompletionFunc("color", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{string(style.ColorAuto), string(style.ColorAlways), string(style.ColorNever)}, cobra.ShellCompDirectiveNoFileComp
	})
	cmd.ValidArgsFunction = targetCompletion

	return cmd
}

// targetCompletion offers the configured databases and the AUR marker.
func targetCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	dbs, err := syncDatabases(cfg).Databases()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	candidates := append(dbs, "aur")
	var available []string
	for _, c := range candidates {
		found := false
		for _, arg := range args {
			if arg == c {
				found = true
				break
			}
		}
		if !found {
			available = append(available, c)
		}
	}

	return available, cobra.ShellCompDirectiveNoFileComp
}

func newDatabasesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "databases",
		Short:   MsgDatabasesShort,
		Long:    MsgDatabasesLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			dbs, err := syncDatabases(cfg).Databases()
			if err != nil {
				return err
			}

			for _, db := range dbs {
				fmt.Fprintln(cmd.OutOrStdout(), db)
			}
			return nil
		},
	}

	cmd.Flags().String("pacman-conf", "", MsgFlagPacmanConf)

	return cmd
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			data, err := cfg.TOML()
			if err != nil {
				return fmt.Errorf(MsgErrDumpConfig, err)
			}

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.String())
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
