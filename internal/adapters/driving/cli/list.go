package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/reliefdir/internal/core/domain"
)

var (
	listSearch   string
	listType     string
	listHelpType string
	listStatus   string
	listTag      string
	listJSON     bool
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List organizations",
	Long: `List organizations in dataset order, optionally filtered.

The search text matches the name, details and type case-insensitively.
Every other filter matches exactly; "all" disables it.

Examples:
  reliefdir list --search vet
  reliefdir list --status Active --tag "Financial Aid"
  reliefdir list --type NGO --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "text to search in name, details and type")
	listCmd.Flags().StringVar(&listType, "type", domain.All, "organization type")
	listCmd.Flags().StringVar(&listHelpType, "help-type", domain.All, "help type")
	listCmd.Flags().StringVar(&listStatus, "status", domain.All, "status, e.g. Active or Paused")
	listCmd.Flags().StringVarP(&listTag, "tag", "t", domain.All, "tag")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(listCmd)
}

// resetListFlags restores the list filters to their defaults.
func resetListFlags() {
	listSearch = ""
	listType = domain.All
	listHelpType = domain.All
	listStatus = domain.All
	listTag = domain.All
	listJSON = false
}

// listSelection builds the selection from the list flags.
func listSelection() domain.Selection {
	return domain.NewSelection().
		WithSearchTerm(listSearch).
		WithType(listType).
		WithHelpType(listHelpType).
		WithStatus(listStatus).
		WithTag(listTag)
}

func runList(cmd *cobra.Command, _ []string) error {
	directory, err := requireDirectory()
	if err != nil {
		return err
	}

	result, err := directory.Filter(commandContext(cmd), listSelection())
	if err != nil {
		return fmt.Errorf("list failed: %w", err)
	}

	if listJSON {
		return printJSON(cmd, result.Records)
	}

	writeList(cmd.OutOrStdout(), result, maxCardTags())
	return nil
}

// maxCardTags reads the tag limit from settings, falling back to the default.
func maxCardTags() int {
	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil {
			return settings.Display.MaxCardTags
		}
	}
	return domain.DefaultAppSettings().Display.MaxCardTags
}

func writeList(w io.Writer, result *domain.FilterResult, tagLimit int) {
	if result.IsEmpty() {
		fmt.Fprintln(w, domain.EmptyResultMessage)
		fmt.Fprintln(w, domain.EmptyResultHint)
		return
	}

	for i := range result.Records {
		writeCard(w, &result.Records[i], tagLimit)
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "Showing %d of %d organizations\n", result.Count(), result.Total)
}

// writeCard prints the compact form of one organization.
func writeCard(w io.Writer, org *domain.Organization, tagLimit int) {
	fmt.Fprintf(w, "[%s] %s\n", org.ID, org.Name)

	meta := nonEmpty(org.Type, org.HelpType, org.Status)
	if len(meta) > 0 {
		fmt.Fprintf(w, "    %s\n", strings.Join(meta, " · "))
	}
	if org.Amount != "" {
		fmt.Fprintf(w, "    Amount: %s\n", org.Amount)
	}
	if tags := formatTags(org, tagLimit); tags != "" {
		fmt.Fprintf(w, "    Tags: %s\n", tags)
	}
}

// formatTags joins the visible tags and appends "+N more" for the rest.
func formatTags(org *domain.Organization, limit int) string {
	shown, more := org.VisibleTags(limit)
	if len(shown) == 0 {
		return ""
	}
	out := strings.Join(shown, ", ")
	if more > 0 {
		out += fmt.Sprintf(", +%d more", more)
	}
	return out
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
