package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/atelier-tools/vitrine/internal/version"
	"github.com/atelier-tools/vitrine/pkg/config"
	"github.com/atelier-tools/vitrine/pkg/logging"
	"github.com/atelier-tools/vitrine/pkg/source"
	"github.com/atelier-tools/vitrine/pkg/utils"
)

// NewRootCmd creates the root command and its subcommand tree.
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "vitrine",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().String("source", "", MsgFlagSource)
	rootCmd.PersistentFlags().String("config", ".", MsgFlagConfig)

	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newPreviewCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newAssetsCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newDocsCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// loadConfig assembles the effective configuration from the config
// directory and persistent flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Root().PersistentFlags()
	configDir, _ := flags.GetString("config")
	sourcePath, _ := flags.GetString("source")

	var opts []config.Option
	if sourcePath != "" {
		opts = append(opts, config.WithOverride("source.path", utils.ExpandPath(sourcePath)))
	}
	return config.Load(utils.ExpandPath(configDir), opts...)
}

// newSession builds a catalog session for a command invocation.
func newSession(cmd *cobra.Command) (*source.Source, *config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	return source.New(cfg), cfg, nil
}
