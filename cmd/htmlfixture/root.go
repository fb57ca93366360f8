package htmlfixture

import (
	"fmt"

	"github.com/arthur-debert/htmlfixture/internal/version"
	"github.com/arthur-debert/htmlfixture/pkg/config"
	"github.com/arthur-debert/htmlfixture/pkg/filesystem"
	"github.com/arthur-debert/htmlfixture/pkg/fixture"
	"github.com/arthur-debert/htmlfixture/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// app is the state shared by all subcommands of one invocation
type app struct {
	verbosity int
	base      string
	root      string

	cfg     *config.Config
	fs      filesystem.FS
	manager *fixture.Manager
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "htmlfixture",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.base, "base", "", MsgFlagBase)
	rootCmd.PersistentFlags().StringVar(&a.root, "config-root", "", MsgFlagRoot)

	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newShowCmd(a))
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// setup loads configuration and builds the fixture manager
func (a *app) setup(cmd *cobra.Command) error {
	if a.root == "" {
		a.root = config.RootFromEnv()
	}

	overrides := map[string]interface{}{}
	if a.base != "" {
		overrides["fixtures.base"] = a.base
	}
	if a.verbosity > 0 {
		overrides["logging.verbosity"] = a.verbosity
	}

	cfg, err := config.Load(a.root, overrides)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logging.SetupLoggerTo(cmd.ErrOrStderr(), cfg.Logging.Verbosity)
	log.Debug().Str("command", cmd.Name()).Str("root", a.root).Msg("Command started")

	a.fs = filesystem.NewBasePathFS(a.root)
	a.manager, err = fixture.NewFromConfig(cfg, fixture.WithFS(a.fs))
	return err
}
