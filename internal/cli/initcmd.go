package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/atelier-tools/vitrine/pkg/config"
	"github.com/atelier-tools/vitrine/pkg/utils"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: MsgInitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir, _ := cmd.Root().PersistentFlags().GetString("config")
			configDir = utils.ExpandPath(configDir)
			path := filepath.Join(configDir, "vitrine.toml")

			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf(MsgErrConfigExists, path)
				}
			}

			content, err := toml.Marshal(config.Default())
			if err != nil {
				return err
			}

			if err := os.MkdirAll(configDir, 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(path, content, 0o644); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), MsgInitCreated, path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration file")

	return cmd
}
