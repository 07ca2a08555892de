package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/reliefdir/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/reliefdir/internal/core/domain"
	"github.com/custodia-labs/reliefdir/internal/core/services"
)

func testOrganizations() []domain.Organization {
	return []domain.Organization{
		{
			ID:       "1",
			Name:     "Paws Rescue",
			Type:     "NGO",
			HelpType: "Veterinary",
			Status:   "Active",
			Amount:   "€10,000",
			Contact:  "info@paws.example",
			Details:  "Free veterinary care for injured animals.",
			Date:     "July 2025",
			Tags:     []string{"Veterinary", "Animal Care", "Medical Care", "Emergency Supplies", "Food Service", "Collection Point", "Accommodation"},
			Source:   "https://paws.example",
		},
		{
			ID:       "2",
			Name:     "Limassol Municipality",
			Type:     "Government",
			HelpType: "Accommodation",
			Status:   "Paused",
			Amount:   "Free housing",
			Tags:     []string{"Accommodation"},
		},
		{
			ID:       "3",
			Name:     "Food Bank",
			Type:     "NGO",
			HelpType: "Food",
			Status:   "Active",
			Amount:   "€20,000",
			Tags:     []string{"Food Service", "Financial Aid"},
		},
	}
}

// mockBundler records the last bundle request.
type mockBundler struct {
	src, dst string
	count    int
	err      error
}

func (m *mockBundler) Bundle(_ context.Context, src, dst string) (int, error) {
	m.src, m.dst = src, dst
	return m.count, m.err
}

// setupTestServices installs memory-backed services and disables bootstrap.
func setupTestServices(t *testing.T) *Services {
	t.Helper()

	store, err := memory.NewRecordStore(testOrganizations())
	require.NoError(t, err)

	directory := services.NewDirectoryService(store)
	s := &Services{
		Directory: directory,
		View:      services.NewViewEngine(directory, domain.DefaultExternalLink()),
		Settings:  services.NewSettingsService(memory.NewConfigStore()),
		Bundle:    &mockBundler{},
	}

	prevBootstrap := bootstrap
	bootstrap = nil
	SetServices(s)
	t.Cleanup(func() {
		bootstrap = prevBootstrap
		SetServices(nil)
	})
	return s
}

// resetFlags clears every flag variable a previous run may have set.
func resetFlags() {
	resetListFlags()
	showJSON = false
	facetsJSON = false
	summaryJSON = false
	settingsFormat = ""
	mcpPort = 0
	mcpHost = "127.0.0.1"
	flagDataset = ""
	flagConfigDir = ""
	flagVerbose = false
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	if args == nil {
		// nil args make cobra fall back to os.Args
		args = []string{}
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}
