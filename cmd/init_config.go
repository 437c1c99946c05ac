package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rpgo/portfolio-montecarlo/internal/config"
)

func newInitConfigCmd() *cobra.Command {
	var (
		outputPath string
		force      bool
	)

	initCmd := &cobra.Command{
		Use:   "init-config",
		Short: "Write an example scenario configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				if _, err := os.Stat(outputPath); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", outputPath)
				}
			}
			example := config.NewInputParser().CreateExampleConfiguration()
			if err := config.SaveConfiguration(example, outputPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", outputPath)
			return nil
		},
	}

	initCmd.Flags().StringVarP(&outputPath, "output", "o", "scenarios.yaml", "Destination file")
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return initCmd
}
