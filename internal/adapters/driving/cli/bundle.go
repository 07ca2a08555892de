package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var bundleCmd = &cobra.Command{
	Use:   "bundle <source> <bundle.db>",
	Short: "Convert a dataset into a SQLite bundle",
	Long: `Read a dataset (JSON or an existing bundle) and write it to a SQLite
bundle that can be shipped and opened read-only with --dataset.

Example:
  reliefdir bundle organizations.json organizations.db`,
	Args:        cobra.ExactArgs(2),
	Annotations: map[string]string{annotationNoDataset: "true"},
	RunE:        runBundle,
}

func init() {
	rootCmd.AddCommand(bundleCmd)
}

func runBundle(cmd *cobra.Command, args []string) error {
	if bundleService == nil {
		return errors.New("bundle service not configured")
	}

	n, err := bundleService.Bundle(commandContext(cmd), args[0], args[1])
	if err != nil {
		return fmt.Errorf("bundle failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d organizations to %s\n", n, args[1])
	return nil
}
