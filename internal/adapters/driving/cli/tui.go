package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/reliefdir/internal/adapters/driving/tui"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive directory browser.

The header shows the total number of organizations, how many are active and
the confirmed financial aid. Search narrows the list by name, details and
type; the filters narrow it by type, help type, status and tag.

Controls:
  (type)     - Search
  Tab        - Next field (search, filters, list)
  ←/→        - Change the focused filter
  ↑/k, ↓/j   - Navigate organizations
  Enter      - Show details
  1-9        - Toggle a popular category
  x          - Clear search and filters
  c / o      - Copy contact / open source (details)
  Esc        - Back
  ?          - Toggle help
  q          - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = errors.New("TUI crashed")
		}
	}()

	ports := tui.NewPorts(viewEngine, actionService, settingsService)

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	app.WithContext(commandContext(cmd))

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
