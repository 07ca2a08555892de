package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/reliefdir/internal/core/domain"
)

var settingsFormat string

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the dataset location and display options.

Use subcommands to configure specific settings or run the interactive wizard.`,
	Annotations: map[string]string{annotationNoDataset: "true"},
	RunE:        runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsDatasetCmd = &cobra.Command{
	Use:   "dataset <path>",
	Short: "Set the dataset location",
	Long: `Set the dataset file loaded at startup.

The format is detected from the extension (.json, .db, .sqlite) unless
--format is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsDataset,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure all settings step by step.`,
	RunE:  runSettingsWizard,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsReset,
}

func init() {
	settingsDatasetCmd.Flags().StringVar(&settingsFormat, "format", "", "dataset format (json or sqlite)")
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsDatasetCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Dataset]")
	path := settings.Dataset.Path
	if path == "" {
		path = "(not set)"
	}
	cmd.Printf("  Path: %s\n", path)
	cmd.Printf("  Format: %s\n", settings.Dataset.Format.Description())
	cmd.Println()

	cmd.Println("[Display]")
	cmd.Printf("  Currency Symbol: %s\n", settings.Display.CurrencySymbol)
	cmd.Printf("  Tags Per Card: %d\n", settings.Display.MaxCardTags)
	cmd.Printf("  Quick Tags: %s\n", strings.Join(settings.Display.QuickTags, ", "))
	cmd.Println()

	cmd.Println("[Link]")
	cmd.Printf("  Name: %s\n", settings.Link.Name)
	cmd.Printf("  URL: %s\n", settings.Link.URL)
	cmd.Println()

	cmd.Printf("Config file: %s\n", settingsService.ConfigPath())
	return nil
}

func runSettingsDataset(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	format := domain.DatasetFormat(settingsFormat)
	if err := settingsService.SetDatasetPath(args[0], format); err != nil {
		return fmt.Errorf("failed to set dataset: %w", err)
	}

	cmd.Printf("Dataset set to %s (%s)\n", args[0], format.Description())
	return nil
}

func runSettingsReset(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	defaults := settingsService.GetDefaults()
	if err := settingsService.Save(&defaults); err != nil {
		return fmt.Errorf("failed to reset settings: %w", err)
	}

	cmd.Printf("Settings reset to defaults in %s\n", settingsService.ConfigPath())
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("reliefdir Settings Wizard")
	cmd.Println("=========================")
	cmd.Println()

	reader := bufio.NewReader(cmd.InOrStdin())

	// Step 1: Dataset
	cmd.Println("Step 1: Dataset")
	cmd.Println("---------------")
	cmd.Printf("Path to the dataset [%s]: ", settings.Dataset.Path)
	if input := readLine(reader); input != "" {
		settings.Dataset.Path = input
	}

	formats := []domain.DatasetFormat{
		domain.DatasetFormatAuto,
		domain.DatasetFormatJSON,
		domain.DatasetFormatSQLite,
	}
	for i, f := range formats {
		cmd.Printf("  %d. %s\n", i+1, f.Description())
	}
	cmd.Print("Enter choice [1]: ")
	settings.Dataset.Format = formats[parseChoice(readLine(reader), len(formats), 1)-1]
	cmd.Println()

	// Step 2: Display
	cmd.Println("Step 2: Display")
	cmd.Println("---------------")
	cmd.Printf("Currency counted in the aid total [%s]: ", settings.Display.CurrencySymbol)
	if input := readLine(reader); input != "" {
		settings.Display.CurrencySymbol = input
	}
	cmd.Printf("Tags shown per organization [%d]: ", settings.Display.MaxCardTags)
	settings.Display.MaxCardTags = parsePositive(readLine(reader), settings.Display.MaxCardTags)
	cmd.Println()

	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Println("Configuration Complete!")
	cmd.Println("=======================")
	cmd.Printf("Saved to %s\n", settingsService.ConfigPath())
	return nil
}

func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

func parsePositive(input string, defaultVal int) int {
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 {
		return defaultVal
	}
	return val
}
