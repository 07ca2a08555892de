package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/reliefdir/internal/core/domain"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show every field of one organization",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	directory, err := requireDirectory()
	if err != nil {
		return err
	}

	org, err := directory.Get(commandContext(cmd), args[0])
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("organization %q not found", args[0])
	}
	if err != nil {
		return fmt.Errorf("show failed: %w", err)
	}

	if showJSON {
		return printJSON(cmd, org)
	}
	writeDetail(cmd.OutOrStdout(), org)
	return nil
}

// writeDetail prints every field of org.
func writeDetail(w io.Writer, org *domain.Organization) {
	fmt.Fprintln(w, org.Name)
	fmt.Fprintln(w, strings.Repeat("=", len([]rune(org.Name))))
	fmt.Fprintln(w)

	fields := []struct {
		label string
		value string
	}{
		{"ID", org.ID},
		{"Type", org.Type},
		{"Help Type", org.HelpType},
		{"Status", org.Status},
		{"Amount", org.Amount},
		{"Contact", org.Contact},
		{"Date", org.Date},
		{"Tags", strings.Join(org.Tags, ", ")},
		{"Source", org.Source},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		fmt.Fprintf(w, "  %-10s %s\n", f.label+":", f.value)
	}

	if org.Details != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, org.Details)
	}
}
