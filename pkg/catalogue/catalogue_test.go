package catalogue_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventtix/eventtix/pkg/catalogue"
	"github.com/eventtix/eventtix/pkg/errors"
)

type stubSource struct {
	events []catalogue.Event
	err    error
	calls  int
}

func (s *stubSource) ListEvents(_ context.Context) ([]catalogue.Event, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.events, nil
}

func TestStoreRefresh(t *testing.T) {
	src := &stubSource{events: testEvents()}
	store := catalogue.NewStore(src)

	assert.False(t, store.Loaded())
	require.NoError(t, store.Refresh(context.Background()))

	assert.True(t, store.Loaded())
	assert.False(t, store.Loading())
	assert.NoError(t, store.Err())
	assert.Equal(t, 4, store.Len())
	assert.Equal(t, []int64{1, 2, 3, 4}, ids(store.Events()))
}

func TestStoreRefreshFailureIsSticky(t *testing.T) {
	src := &stubSource{err: errors.New("connection refused")}
	store := catalogue.NewStore(src)

	err := store.Refresh(context.Background())
	require.Error(t, err)
	assert.Error(t, store.Err())
	assert.False(t, store.Loaded())

	// A later successful refresh clears the error state.
	src.err = nil
	src.events = testEvents()
	require.NoError(t, store.Refresh(context.Background()))
	assert.NoError(t, store.Err())
	assert.Equal(t, 2, src.calls)
}

func TestStoreFeatured(t *testing.T) {
	src := &stubSource{events: testEvents()}
	store := catalogue.NewStore(src)
	require.NoError(t, store.Refresh(context.Background()))

	featured, ok := store.Featured()
	require.True(t, ok)
	assert.Equal(t, int64(1), featured.ID)
}

func TestStoreFeaturedSentinelConfigurable(t *testing.T) {
	src := &stubSource{events: testEvents()}
	store := catalogue.NewStore(src, catalogue.WithFeaturedEventID(3))
	require.NoError(t, store.Refresh(context.Background()))

	featured, ok := store.Featured()
	require.True(t, ok)
	assert.Equal(t, "Kutumba", featured.Artist)
}

func TestStoreFeaturedAbsent(t *testing.T) {
	src := &stubSource{events: testEvents()[1:]} // drop the sentinel event
	store := catalogue.NewStore(src)
	require.NoError(t, store.Refresh(context.Background()))

	_, ok := store.Featured()
	assert.False(t, ok)
}

func TestStoreGet(t *testing.T) {
	src := &stubSource{events: testEvents()}
	store := catalogue.NewStore(src)
	require.NoError(t, store.Refresh(context.Background()))

	event, err := store.Get(3)
	require.NoError(t, err)
	assert.Equal(t, "Kutumba", event.Artist)

	_, err = store.Get(99)
	assert.True(t, errors.IsNotFound(err))
}

func TestStoreEventsReturnsCopy(t *testing.T) {
	src := &stubSource{events: testEvents()}
	store := catalogue.NewStore(src)
	require.NoError(t, store.Refresh(context.Background()))

	events := store.Events()
	events[0].Artist = "mutated"

	fresh, _ := store.Find(1)
	assert.Equal(t, "The Midnight Ravens", fresh.Artist)
}
