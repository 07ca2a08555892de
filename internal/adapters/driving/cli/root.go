package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/reliefdir/internal/core/ports/driving"
	"github.com/custodia-labs/reliefdir/internal/logger"
)

// annotationNoDataset marks commands that run without a loaded dataset.
const annotationNoDataset = "reliefdir.no-dataset"

// Options are the global flag values handed to the Bootstrapper.
type Options struct {
	// DatasetPath overrides the configured dataset location.
	DatasetPath string

	// ConfigDir overrides the configuration directory.
	ConfigDir string

	// Verbose enables debug logging.
	Verbose bool

	// LoadDataset is false for commands that only need settings.
	LoadDataset bool
}

// Services are the core services the commands drive.
type Services struct {
	Directory driving.DirectoryService
	View      driving.ViewEngine
	Actions   driving.RecordActionService
	Settings  driving.SettingsService
	Bundle    driving.BundleService
}

// Bootstrapper builds the services once flags have been parsed.
type Bootstrapper func(ctx context.Context, opts Options) (*Services, error)

var (
	version = "dev"

	directoryService driving.DirectoryService
	viewEngine       driving.ViewEngine
	actionService    driving.RecordActionService
	settingsService  driving.SettingsService
	bundleService    driving.BundleService

	bootstrap Bootstrapper

	flagDataset   string
	flagConfigDir string
	flagVerbose   bool

	// isTerminal reports whether stdout is an interactive terminal.
	isTerminal = func() bool {
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
)

var rootCmd = &cobra.Command{
	Use:   "reliefdir",
	Short: "Browse organizations offering wildfire relief",
	Long: `reliefdir is a directory of companies and organizations offering help
after the wildfires: financial aid, accommodation, veterinary care, supplies
and more.

Run without arguments to open the interactive browser. When output is not a
terminal the full list is printed instead.`,
	SilenceUsage:      true,
	PersistentPreRunE: runBootstrap,
	RunE:              runRoot,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataset, "dataset", "d", "",
		"path to the dataset (.json, .db or .sqlite)")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "",
		"configuration directory (default ~/.reliefdir)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetBootstrapper sets the function that builds services before each command.
func SetBootstrapper(b Bootstrapper) {
	bootstrap = b
}

// SetServices installs the services used by the commands.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	directoryService = s.Directory
	viewEngine = s.View
	actionService = s.Actions
	settingsService = s.Settings
	bundleService = s.Bundle
}

func runBootstrap(cmd *cobra.Command, _ []string) error {
	if flagVerbose {
		logger.SetVerbose(true)
	}
	if bootstrap == nil {
		return nil
	}

	opts := Options{
		DatasetPath: flagDataset,
		ConfigDir:   flagConfigDir,
		Verbose:     flagVerbose,
		LoadDataset: needsDataset(cmd),
	}
	logger.Debug("Bootstrapping %q with %+v", cmd.CommandPath(), opts)

	services, err := bootstrap(cmd.Context(), opts)
	if err != nil {
		return err
	}
	SetServices(services)
	return nil
}

// needsDataset walks up from cmd looking for annotationNoDataset.
func needsDataset(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if _, ok := c.Annotations[annotationNoDataset]; ok {
			return false
		}
	}
	return true
}

func runRoot(cmd *cobra.Command, args []string) error {
	if isTerminal() {
		return runTUI(cmd, args)
	}
	resetListFlags()
	return runList(cmd, args)
}

// requireDirectory returns the directory service or a configuration error.
func requireDirectory() (driving.DirectoryService, error) {
	if directoryService == nil {
		return nil, errors.New("directory service not configured")
	}
	return directoryService, nil
}

// commandContext returns the command context, never nil.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// printJSON writes v as indented JSON to stdout.
func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
