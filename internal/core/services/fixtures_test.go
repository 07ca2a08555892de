package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/reliefdir/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/reliefdir/internal/core/domain"
)

// --- Fixtures ---

func testOrganizations() []domain.Organization {
	return []domain.Organization{
		{
			ID:       "1",
			Name:     "Paws Rescue",
			Type:     "NGO",
			HelpType: "Animal Care",
			Status:   domain.StatusActive,
			Amount:   "€10,000",
			Contact:  "+357 99 000000",
			Details:  "Veterinary treatment for injured animals",
			Tags:     []string{"Veterinary", "Animal Care"},
			Source:   "https://example.org/paws",
		},
		{
			ID:       "2",
			Name:     "Limassol Municipality",
			Type:     "Government",
			HelpType: "Accommodation",
			Status:   domain.StatusPaused,
			Amount:   "no amount",
			Details:  "Temporary housing for displaced families",
		},
		{
			ID:       "3",
			Name:     "Relief Bank Fund",
			Type:     "Bank",
			HelpType: "Financial Aid",
			Status:   "Closed",
			Amount:   "Up to €1,224,500 in grants",
			Details:  "Grants for rebuilding homes",
			Tags:     []string{"Financial Aid"},
		},
		{
			ID:       "4",
			Name:     "Food Bank",
			Type:     "NGO",
			HelpType: "Food Service",
			Status:   domain.StatusActive,
			Amount:   "$5,000",
			Details:  "Hot meals for volunteers",
			Tags:     []string{"Food Service", "Collection Point"},
		},
	}
}

func newTestStore(t *testing.T, records []domain.Organization) *memory.RecordStore {
	t.Helper()
	store, err := memory.NewRecordStore(records)
	require.NoError(t, err)
	return store
}

func ids(records []domain.Organization) []string {
	out := make([]string, 0, len(records))
	for i := range records {
		out = append(out, records[i].ID)
	}
	return out
}

// --- Mock implementations ---

var errStoreDown = errors.New("store down")

// failingRecordStore implements driven.RecordStore and fails every call.
type failingRecordStore struct {
	listCalls int
}

func (f *failingRecordStore) List(_ context.Context) ([]domain.Organization, error) {
	f.listCalls++
	return nil, errStoreDown
}

func (f *failingRecordStore) Get(_ context.Context, _ string) (*domain.Organization, error) {
	return nil, errStoreDown
}

func (f *failingRecordStore) Count(_ context.Context) (int, error) {
	return 0, errStoreDown
}

// flakyRecordStore fails its first List calls with the caller's context
// error, then serves records.
type flakyRecordStore struct {
	failures  int
	records   []domain.Organization
	listCalls int
}

func (f *flakyRecordStore) List(ctx context.Context) ([]domain.Organization, error) {
	f.listCalls++
	if f.listCalls <= f.failures {
		return nil, ctx.Err()
	}
	return f.records, nil
}

func (f *flakyRecordStore) Get(_ context.Context, _ string) (*domain.Organization, error) {
	return nil, domain.ErrNotFound
}

func (f *flakyRecordStore) Count(_ context.Context) (int, error) {
	return len(f.records), nil
}

// mockClipboard implements driven.Clipboard for testing.
type mockClipboard struct {
	copied []string
	err    error
}

func (m *mockClipboard) Copy(_ context.Context, text string) error {
	if m.err != nil {
		return m.err
	}
	m.copied = append(m.copied, text)
	return nil
}

// mockOpener implements driven.URLOpener for testing.
type mockOpener struct {
	opened []string
	err    error
}

func (m *mockOpener) Open(_ context.Context, url string) error {
	if m.err != nil {
		return m.err
	}
	m.opened = append(m.opened, url)
	return nil
}
