package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/reliefdir/internal/core/domain"
)

var summaryJSON bool

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show directory statistics",
	Long: `Show the total number of organizations, how many are active and the
total financial aid in millions. Only amounts written with the configured
currency symbol are counted.`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func init() {
	summaryCmd.Flags().BoolVar(&summaryJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(summaryCmd)
}

// summaryOutput is the JSON shape of the summary command.
type summaryOutput struct {
	domain.Summary
	FormattedAid string              `json:"formattedAid"`
	Link         domain.ExternalLink `json:"link"`
}

func runSummary(cmd *cobra.Command, _ []string) error {
	directory, err := requireDirectory()
	if err != nil {
		return err
	}

	summary, err := directory.Summary(commandContext(cmd))
	if err != nil {
		return fmt.Errorf("summary failed: %w", err)
	}
	link := externalLink()

	if summaryJSON {
		return printJSON(cmd, summaryOutput{
			Summary:      summary,
			FormattedAid: summary.FormatAid(),
			Link:         link,
		})
	}
	writeSummary(cmd.OutOrStdout(), summary, link)
	return nil
}

// externalLink reads the link from settings, falling back to the default.
func externalLink() domain.ExternalLink {
	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil && !settings.Link.IsZero() {
			return settings.Link
		}
	}
	return domain.DefaultExternalLink()
}

func writeSummary(w io.Writer, summary domain.Summary, link domain.ExternalLink) {
	fmt.Fprintf(w, "Total Organizations:  %d\n", summary.Total)
	fmt.Fprintf(w, "Active Programs:      %d\n", summary.Active)
	fmt.Fprintf(w, "Total Financial Aid:  %s\n", summary.FormatAid())
	if !link.IsZero() {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "More help providers: %s\n", link.Name)
		fmt.Fprintf(w, "  %s\n", link.URL)
	}
}
