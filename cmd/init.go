package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/PolarWolf314/ghsecrets/internal/configs"
	"github.com/PolarWolf314/ghsecrets/internal/ui"

	"github.com/spf13/cobra"
)

// NewInitCmd returns the init command.
func NewInitCmd() *cobra.Command {
	var (
		names []string
		dir   string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter .ghsecrets.toml",
		Long: `Creates a .ghsecrets.toml listing the secret names to publish.
Without --secret the default names are written.

Examples:
  ghsecrets init
  ghsecrets init -s API_KEY -s DB_PASSWORD
  ghsecrets init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			Logger.Infof("Starting init command")

			if len(names) == 0 {
				names = configs.DefaultSecretNames
			}
			normalized, err := configs.NormalizeSecretNames(names)
			if err != nil {
				return err
			}

			path := filepath.Join(dir, configs.ConfigFileNames[0])
			Logger.Debugf("Writing %d secret names to %s (force=%t)", len(normalized), path, force)
			if err := configs.WriteDefaultFile(path, normalized, force); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.SuccessLine("Created %s", ui.Path.Sprint(path)))
			fmt.Fprintln(out, ui.HintLine("Set the values in your environment or %s, then run %s",
				ui.Path.Sprint(configs.DefaultEnvFile), ui.Code.Sprint("ghsecrets publish")))
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&names, "secret", "s", nil, "secret name to include (repeatable)")
	cmd.Flags().StringVar(&dir, "dir", ".", "directory to write the file in")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}
