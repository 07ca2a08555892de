package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/reliefdir/internal/core/domain"
)

const sampleDataset = `[
  {
    "id": 1,
    "name": "Paws Rescue",
    "type": "NGO",
    "helpType": "Animal Care",
    "status": "Active",
    "amount": "€10,000",
    "contact": "+357 99 000000",
    "details": "Veterinary treatment",
    "date": "July 2025",
    "tags": ["Veterinary", "Animal Care"],
    "source": "https://example.org/paws",
    "extra": "ignored"
  },
  {
    "id": "b-2",
    "name": "City Hall",
    "status": "Paused",
    "amount": "no amount"
  }
]`

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "organizations.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoader_Load(t *testing.T) {
	loader := NewLoader(writeDataset(t, sampleDataset))

	records, err := loader.Load(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, domain.Organization{
		ID:       "1",
		Name:     "Paws Rescue",
		Type:     "NGO",
		HelpType: "Animal Care",
		Status:   "Active",
		Amount:   "€10,000",
		Contact:  "+357 99 000000",
		Details:  "Veterinary treatment",
		Date:     "July 2025",
		Tags:     []string{"Veterinary", "Animal Care"},
		Source:   "https://example.org/paws",
	}, records[0])

	assert.Equal(t, "b-2", records[1].ID)
	assert.NotNil(t, records[1].Tags)
	assert.Empty(t, records[1].Tags)
}

func TestLoader_Format(t *testing.T) {
	loader := NewLoader("x.json")

	assert.Equal(t, domain.DatasetFormatJSON, loader.Format())
	assert.Equal(t, "x.json", loader.Path())
}

func TestLoader_MissingFile(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "missing.json"))

	_, err := loader.Load(context.Background())

	assert.ErrorIs(t, err, domain.ErrDatasetUnavailable)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoader_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLoader(writeDataset(t, sampleDataset)).Load(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestDecode_InvalidJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"not an array", `{"id": 1}`},
		{"truncated", `[{"id": 1`},
		{"boolean id", `[{"id": true}]`},
		{"object id", `[{"id": {}}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestDecode_EmptyArray(t *testing.T) {
	records, err := Decode(strings.NewReader(`[]`))

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestDecode_DuplicateIDs(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"same number", `[{"id": 1}, {"id": 1}]`},
		{"number and string", `[{"id": 7}, {"id": "7"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, domain.ErrDuplicateID)
		})
	}
}

func TestDecode_NumericIDs(t *testing.T) {
	records, err := Decode(strings.NewReader(`[{"id": 42}, {"id": 1.5}, {"id": " 9 "}]`))

	require.NoError(t, err)
	assert.Equal(t, "42", records[0].ID)
	assert.Equal(t, "1.5", records[1].ID)
	assert.Equal(t, " 9 ", records[2].ID)
}

func TestDecode_MissingIDs(t *testing.T) {
	input := `[{"name": "A"}, {"id": null, "name": "A"}, {"name": "B"}]`

	records, err := Decode(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, GenerateID("A", 0), records[0].ID)
	assert.Equal(t, GenerateID("A", 1), records[1].ID)
	assert.Equal(t, GenerateID("B", 2), records[2].ID)
	assert.NotEqual(t, records[0].ID, records[1].ID)
}

func TestGenerateID_Deterministic(t *testing.T) {
	assert.Equal(t, GenerateID("Paws", 3), GenerateID("Paws", 3))
	assert.NotEqual(t, GenerateID("Paws", 3), GenerateID("Paws", 4))
	assert.Len(t, GenerateID("Paws", 3), 36)
}
