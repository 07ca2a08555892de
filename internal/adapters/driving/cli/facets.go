package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/reliefdir/internal/core/domain"
)

var facetsJSON bool

var facetsCmd = &cobra.Command{
	Use:   "facets",
	Short: "List the values available to each filter",
	Args:  cobra.NoArgs,
	RunE:  runFacets,
}

func init() {
	facetsCmd.Flags().BoolVar(&facetsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(facetsCmd)
}

func runFacets(cmd *cobra.Command, _ []string) error {
	directory, err := requireDirectory()
	if err != nil {
		return err
	}

	facets, err := directory.Facets(commandContext(cmd))
	if err != nil {
		return fmt.Errorf("facets failed: %w", err)
	}

	if facetsJSON {
		return printJSON(cmd, facets)
	}
	writeFacets(cmd.OutOrStdout(), facets)
	return nil
}

func writeFacets(w io.Writer, facets domain.Facets) {
	groups := []struct {
		title  string
		values []string
	}{
		{"Types", facets.Types},
		{"Help Types", facets.HelpTypes},
		{"Statuses", facets.Statuses},
		{"Tags", facets.Tags},
	}

	for i, g := range groups {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (%d)\n", g.title, len(g.values))
		for _, v := range g.values {
			fmt.Fprintf(w, "  %s\n", v)
		}
	}
}
