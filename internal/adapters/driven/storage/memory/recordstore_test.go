package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/reliefdir/internal/core/domain"
)

func sampleOrganizations() []domain.Organization {
	return []domain.Organization{
		{ID: "1", Name: "Paws Rescue", Type: "NGO", Status: domain.StatusActive, Tags: []string{"Veterinary"}},
		{ID: "2", Name: "City Hall", Type: "Government", Status: domain.StatusPaused},
		{ID: "3", Name: "Bank Fund", Type: "Bank", Status: "Closed", Tags: []string{"Financial Aid"}},
	}
}

func TestNewRecordStore(t *testing.T) {
	store, err := NewRecordStore(sampleOrganizations())

	require.NoError(t, err)
	count, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestNewRecordStore_Empty(t *testing.T) {
	store, err := NewRecordStore(nil)

	require.NoError(t, err)
	records, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestNewRecordStore_DuplicateID(t *testing.T) {
	records := sampleOrganizations()
	records[2].ID = "1"

	store, err := NewRecordStore(records)

	assert.ErrorIs(t, err, domain.ErrDuplicateID)
	assert.Nil(t, store)
}

func TestNewRecordStore_EmptyID(t *testing.T) {
	records := sampleOrganizations()
	records[1].ID = ""

	_, err := NewRecordStore(records)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecordStore_List_PreservesOrder(t *testing.T) {
	store, err := NewRecordStore(sampleOrganizations())
	require.NoError(t, err)

	records, err := store.List(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "1", records[0].ID)
	assert.Equal(t, "2", records[1].ID)
	assert.Equal(t, "3", records[2].ID)
}

func TestRecordStore_Get(t *testing.T) {
	store, err := NewRecordStore(sampleOrganizations())
	require.NoError(t, err)

	org, err := store.Get(context.Background(), "3")

	require.NoError(t, err)
	assert.Equal(t, "Bank Fund", org.Name)
}

func TestRecordStore_Get_NotFound(t *testing.T) {
	store, err := NewRecordStore(sampleOrganizations())
	require.NoError(t, err)

	org, err := store.Get(context.Background(), "42")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, org)
}

func TestRecordStore_IsolatedFromCallers(t *testing.T) {
	input := sampleOrganizations()
	store, err := NewRecordStore(input)
	require.NoError(t, err)

	input[0].Name = "changed"
	input[0].Tags[0] = "changed"

	records, err := store.List(context.Background())
	require.NoError(t, err)
	records[0].Tags[0] = "also changed"

	org, err := store.Get(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Paws Rescue", org.Name)
	assert.Equal(t, []string{"Veterinary"}, org.Tags)
}

func TestRecordStore_ConcurrentReads(t *testing.T) {
	store, err := NewRecordStore(sampleOrganizations())
	require.NoError(t, err)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.List(ctx)
			_, _ = store.Get(ctx, "2")
		}()
	}
	wg.Wait()
}
