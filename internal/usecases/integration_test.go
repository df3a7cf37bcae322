package usecases

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/yashwalhekar/adminpanelfrontend/internal/domain"
	"github.com/yashwalhekar/adminpanelfrontend/internal/notify"
	"github.com/yashwalhekar/adminpanelfrontend/internal/repositories"
	"github.com/yashwalhekar/adminpanelfrontend/internal/session"
	"github.com/yashwalhekar/adminpanelfrontend/internal/stubserver"
)

// newAdStack wires a real manager against the in-memory backend.
func newAdStack(t *testing.T) (*ListManager[domain.Ad], *stubserver.Server, *notify.Recorder) {
	t.Helper()
	log := zaptest.NewLogger(t)

	backend := stubserver.New(log)
	ts := httptest.NewServer(backend)
	t.Cleanup(ts.Close)

	sess := session.New(&session.MemoryTokenStore{}, log)
	require.NoError(t, sess.SetToken(backend.MintToken(time.Hour)))

	client := repositories.NewClient(ts.URL, 5*time.Second, sess, log)
	store := repositories.NewRemoteStore[domain.Ad](client, "ads")

	recorder := &notify.Recorder{}
	return NewListManager(domain.Ads(), store, 5, recorder, log), backend, recorder
}

// TestActivateEndToEnd drives the full exclusivity flow through the
// HTTP client: after activating B while A is active, the refreshed
// collection has exactly one active ad, and it is B.
func TestActivateEndToEnd(t *testing.T) {
	m, backend, _ := newAdStack(t)
	ctx := context.Background()

	backend.Seed("ads", map[string]any{"title": "A", "startDate": "2025-01-01", "endDate": "2025-02-01", "isActive": true})
	idB := backend.Seed("ads", map[string]any{"title": "B", "startDate": "2025-03-01", "endDate": "2025-04-01", "isActive": false})

	require.NoError(t, m.Refresh(ctx))
	require.NoError(t, m.ToggleActive(ctx, idB))

	var activeIDs []string
	for _, ad := range m.Items() {
		if ad.IsActive {
			activeIDs = append(activeIDs, ad.ItemID())
		}
	}
	assert.Equal(t, []string{idB}, activeIDs)
}

func TestEditSaveEndToEnd(t *testing.T) {
	m, backend, recorder := newAdStack(t)
	ctx := context.Background()

	id := backend.Seed("ads", map[string]any{"title": "Old", "startDate": "2025-01-01", "endDate": "2025-02-01", "isActive": false})

	require.NoError(t, m.Refresh(ctx))
	require.NoError(t, m.BeginEdit(id))
	m.SetDraftField("title", "Renamed")
	require.NoError(t, m.SaveEdit(ctx))

	_, editing := m.Editing()
	assert.False(t, editing)
	require.Len(t, m.Items(), 1)
	assert.Equal(t, "Renamed", m.Items()[0].Title)

	entries := recorder.Entries()
	require.NotEmpty(t, entries)
	assert.Equal(t, "success", entries[len(entries)-1].Level)
}

func TestDeleteEndToEnd(t *testing.T) {
	m, backend, _ := newAdStack(t)
	ctx := context.Background()

	id := backend.Seed("ads", map[string]any{"title": "Doomed", "startDate": "2025-01-01", "endDate": "2025-02-01"})

	require.NoError(t, m.Refresh(ctx))
	require.NoError(t, m.Delete(ctx, id))
	assert.Empty(t, m.Items())

	// A second delete of the same id is still a success for the user.
	require.NoError(t, m.Delete(ctx, id))
}

// TestExpiredSessionPropagates verifies that an expired token fails the
// refresh with the screen-fatal auth error instead of a notification.
func TestExpiredSessionPropagates(t *testing.T) {
	log := zaptest.NewLogger(t)

	backend := stubserver.New(log)
	ts := httptest.NewServer(backend)
	t.Cleanup(ts.Close)

	sess := session.New(&session.MemoryTokenStore{}, log)
	require.NoError(t, sess.SetToken(backend.MintToken(-time.Minute)))

	client := repositories.NewClient(ts.URL, 5*time.Second, sess, log)
	store := repositories.NewRemoteStore[domain.Ad](client, "ads")
	m := NewListManager(domain.Ads(), store, 5, &notify.Recorder{}, log)

	err := m.Refresh(context.Background())
	assert.ErrorIs(t, err, domain.ErrAuthExpired)
	assert.Empty(t, sess.Token())
}

func TestCreateEndToEnd(t *testing.T) {
	m, backend, _ := newAdStack(t)
	ctx := context.Background()

	require.NoError(t, m.Create(ctx, domain.Fields{
		"title":     "Fresh",
		"startDate": "2025-05-01",
		"endDate":   "2025-06-01",
		"isActive":  false,
	}))

	require.Len(t, m.Items(), 1)
	assert.Equal(t, "Fresh", m.Items()[0].Title)
	assert.Len(t, backend.Items("ads"), 1)
}
