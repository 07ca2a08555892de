package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/reliefdir/internal/core/domain"
)

func newTestViewEngine(t *testing.T) *ViewEngine {
	t.Helper()
	directory := NewDirectoryService(newTestStore(t, testOrganizations()))
	return NewViewEngine(directory, domain.DefaultExternalLink())
}

func TestViewEngine_Snapshot_Initial(t *testing.T) {
	engine := newTestViewEngine(t)

	snap, err := engine.Snapshot(context.Background(), domain.NewViewState())

	require.NoError(t, err)
	assert.Equal(t, domain.NewViewState(), snap.State)
	assert.Equal(t, 4, snap.Result.Count())
	assert.Equal(t, 4, snap.Summary.Total)
	assert.Equal(t, []string{"Bank", "Government", "NGO"}, snap.Facets.Types)
	assert.Nil(t, snap.Detail)
	assert.Equal(t, domain.DefaultExternalLink(), snap.Link)
}

func TestViewEngine_Snapshot_FollowsEvents(t *testing.T) {
	engine := newTestViewEngine(t)
	ctx := context.Background()

	state := domain.NewViewState()
	state = domain.Reduce(state, domain.TagToggled{Tag: "Financial Aid"})
	state = domain.Reduce(state, domain.RecordSelected{ID: "3"})

	snap, err := engine.Snapshot(ctx, state)

	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, ids(snap.Result.Records))
	require.NotNil(t, snap.Detail)
	assert.Equal(t, "Relief Bank Fund", snap.Detail.Name)

	state = domain.Reduce(state, domain.DetailClosed{})
	snap, err = engine.Snapshot(ctx, state)

	require.NoError(t, err)
	assert.Nil(t, snap.Detail)
	assert.Equal(t, []string{"3"}, ids(snap.Result.Records))
}

func TestViewEngine_Snapshot_UnknownDetail(t *testing.T) {
	engine := newTestViewEngine(t)
	state := domain.Reduce(domain.NewViewState(), domain.RecordSelected{ID: "missing"})

	snap, err := engine.Snapshot(context.Background(), state)

	require.NoError(t, err)
	assert.Nil(t, snap.Detail)
	assert.True(t, snap.State.Detail.IsOpen())
}

func TestViewEngine_Snapshot_NoMatches(t *testing.T) {
	engine := newTestViewEngine(t)
	state := domain.Reduce(domain.NewViewState(), domain.SearchTermChanged{Term: "xyz"})

	snap, err := engine.Snapshot(context.Background(), state)

	require.NoError(t, err)
	assert.True(t, snap.Result.IsEmpty())
	assert.Equal(t, 4, snap.Summary.Total)
}

func TestViewEngine_Snapshot_NilDirectory(t *testing.T) {
	engine := NewViewEngine(nil, domain.ExternalLink{})

	_, err := engine.Snapshot(context.Background(), domain.NewViewState())

	assert.Error(t, err)
}

func TestViewEngine_Snapshot_StoreError(t *testing.T) {
	engine := NewViewEngine(NewDirectoryService(&failingRecordStore{}), domain.ExternalLink{})

	_, err := engine.Snapshot(context.Background(), domain.NewViewState())

	assert.ErrorIs(t, err, errStoreDown)
}
