package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yashwalhekar/adminpanelfrontend/internal/domain"
)

// scriptedStore serves canned list responses and ignores mutations.
type scriptedStore struct {
	mu    sync.Mutex
	items []domain.Ad
	err   error
	calls int
}

func (s *scriptedStore) ListAll(ctx context.Context) ([]domain.Ad, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	out := make([]domain.Ad, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *scriptedStore) set(items []domain.Ad, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	s.err = err
}

func (s *scriptedStore) Create(ctx context.Context, fields domain.Fields) (domain.Ad, error) {
	return domain.Ad{}, nil
}

func (s *scriptedStore) Update(ctx context.Context, id string, fields domain.Fields) (domain.Ad, error) {
	return domain.Ad{}, nil
}

func (s *scriptedStore) Delete(ctx context.Context, id string) error { return nil }

func (s *scriptedStore) SetActive(ctx context.Context, id string, active bool) error { return nil }

var _ domain.Store[domain.Ad] = (*scriptedStore)(nil)

func ads(ids ...string) []domain.Ad {
	out := make([]domain.Ad, len(ids))
	for i, id := range ids {
		out[i] = domain.Ad{ID: id, Title: "ad " + id}
	}
	return out
}

func TestRefreshReplacesWholesale(t *testing.T) {
	store := &scriptedStore{}
	store.set(ads("a", "b", "c"), nil)
	c := New[domain.Ad](store)

	require.NoError(t, c.Refresh(context.Background()))
	assert.Equal(t, 3, c.Len())
	assert.True(t, c.Loaded())

	store.set(ads("x"), nil)
	require.NoError(t, c.Refresh(context.Background()))

	snapshot := c.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, "x", snapshot[0].ID)
}

func TestRefreshFailureKeepsStaleSnapshot(t *testing.T) {
	store := &scriptedStore{}
	store.set(ads("a", "b"), nil)
	c := New[domain.Ad](store)
	require.NoError(t, c.Refresh(context.Background()))

	store.set(nil, &domain.TransportError{Op: "list", Err: fmt.Errorf("connection refused")})
	err := c.Refresh(context.Background())
	require.Error(t, err)

	// Stale but available.
	assert.Equal(t, 2, c.Len())
	snapshot := c.Snapshot()
	assert.Equal(t, "a", snapshot[0].ID)
	assert.Equal(t, "b", snapshot[1].ID)
}

func TestSnapshotIsACopy(t *testing.T) {
	store := &scriptedStore{}
	store.set(ads("a", "b"), nil)
	c := New[domain.Ad](store)
	require.NoError(t, c.Refresh(context.Background()))

	snapshot := c.Snapshot()
	snapshot[0].ID = "mutated"

	fresh := c.Snapshot()
	assert.Equal(t, "a", fresh[0].ID)
}

func TestApplyLocalDelete(t *testing.T) {
	store := &scriptedStore{}
	store.set(ads("a", "b", "c"), nil)
	c := New[domain.Ad](store)
	require.NoError(t, c.Refresh(context.Background()))

	c.ApplyLocalDelete("b")
	assert.Equal(t, 2, c.Len())
	_, found := c.Find("b")
	assert.False(t, found)

	// Deleting an id that is already gone is a no-op.
	c.ApplyLocalDelete("b")
	assert.Equal(t, 2, c.Len())
}

func TestFind(t *testing.T) {
	store := &scriptedStore{}
	store.set(ads("a", "b"), nil)
	c := New[domain.Ad](store)
	require.NoError(t, c.Refresh(context.Background()))

	item, found := c.Find("b")
	require.True(t, found)
	assert.Equal(t, "ad b", item.Title)

	_, found = c.Find("nope")
	assert.False(t, found)
}

// TestCacheConcurrentAccess exercises refresh, reads and local deletes
// from many goroutines under the race detector.
func TestCacheConcurrentAccess(t *testing.T) {
	store := &scriptedStore{}
	store.set(ads("a", "b", "c", "d", "e"), nil)
	c := New[domain.Ad](store)
	require.NoError(t, c.Refresh(context.Background()))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			_ = c.Refresh(context.Background())
		}()
		go func() {
			defer wg.Done()
			_ = c.Snapshot()
			_, _ = c.Find("c")
			_ = c.Len()
		}()
		go func() {
			defer wg.Done()
			c.ApplyLocalDelete("e")
		}()
	}
	wg.Wait()

	assert.True(t, c.Loaded())
}
