// Package usecases holds the screen-facing business logic of the admin
// console: one generic list manager per screen, composed of the remote
// store, the list cache, the pager and a single-slot edit session.
package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/yashwalhekar/adminpanelfrontend/internal/cache"
	"github.com/yashwalhekar/adminpanelfrontend/internal/domain"
	"github.com/yashwalhekar/adminpanelfrontend/internal/notify"
	"github.com/yashwalhekar/adminpanelfrontend/internal/pager"
)

// ListManager drives one screen: it refreshes the cached collection,
// derives the visible page, runs the edit session and enforces the
// single-active-item rule where the schema demands it.
//
// Every mutation is advisory until the next refresh reconfirms it; the
// server stays the source of truth.
type ListManager[T domain.Item] struct {
	schema   domain.Schema[T]
	store    domain.Store[T]
	cache    *cache.ListCache[T]
	pager    *pager.Pager
	edit     EditSession
	notifier notify.Notifier
	logger   *zap.Logger
}

// NewListManager wires a manager for one screen. pageSize overrides the
// schema default when positive.
func NewListManager[T domain.Item](
	schema domain.Schema[T],
	store domain.Store[T],
	pageSize int,
	notifier notify.Notifier,
	logger *zap.Logger,
) *ListManager[T] {
	if pageSize < 1 {
		pageSize = schema.PageSize
	}
	return &ListManager[T]{
		schema:   schema,
		store:    store,
		cache:    cache.New(store),
		pager:    pager.New(pageSize),
		notifier: notifier,
		logger:   logger.With(zap.String("screen", schema.Screen)),
	}
}

// Schema returns the screen schema the manager was built with.
func (m *ListManager[T]) Schema() domain.Schema[T] { return m.schema }

// Refresh replaces the cached collection from the server. On a transport
// failure the previous snapshot stays visible and a notification fires;
// an expired session propagates to the caller untouched.
func (m *ListManager[T]) Refresh(ctx context.Context) error {
	if err := m.cache.Refresh(ctx); err != nil {
		if errors.Is(err, domain.ErrAuthExpired) {
			return err
		}
		m.logger.Error("refresh failed", zap.Error(err))
		m.notifier.Error(fmt.Sprintf("failed to load %s", m.schema.Screen))
		return err
	}
	m.pager.Clamp(m.cache.Len())
	m.logger.Debug("collection refreshed", zap.Int("items", m.cache.Len()))
	return nil
}

// Items returns the full cached collection in store order.
func (m *ListManager[T]) Items() []T { return m.cache.Snapshot() }

// Page returns the items visible on the current page.
func (m *ListManager[T]) Page() []T {
	return pager.Window(m.cache.Snapshot(), m.pager.PageSize(), m.pager.Index())
}

// PageInfo returns the current 1-based page index and the total number
// of pages.
func (m *ListManager[T]) PageInfo() (index, total int) {
	return m.pager.Index(), pager.TotalPages(m.cache.Len(), m.pager.PageSize())
}

// NextPage advances one page, clamped at the last page.
func (m *ListManager[T]) NextPage() { m.pager.Next(m.cache.Len()) }

// PrevPage steps back one page, clamped at the first page.
func (m *ListManager[T]) PrevPage() { m.pager.Prev() }

// GoToPage jumps to the given page, clamped into range.
func (m *ListManager[T]) GoToPage(index int) { m.pager.SetIndex(index, m.cache.Len()) }

// Create validates the required fields and pushes a new item, then
// refreshes so the new server-assigned record becomes visible.
func (m *ListManager[T]) Create(ctx context.Context, fields domain.Fields) error {
	if missing := m.schema.MissingRequired(fields); len(missing) > 0 {
		m.notifier.Warning("please fill all required fields: " + strings.Join(missing, ", "))
		return &domain.ValidationError{Message: "missing required fields: " + strings.Join(missing, ", ")}
	}

	item, err := m.store.Create(ctx, fields)
	if err != nil {
		if errors.Is(err, domain.ErrAuthExpired) {
			return err
		}
		m.logger.Error("create failed", zap.Error(err))
		m.notifier.Error(createFailureMessage(m.schema.Screen, err))
		return err
	}

	m.logger.Info("item created", zap.String("id", item.ItemID()))
	m.notifier.Success(m.schema.Screen + " entry created")
	return m.Refresh(ctx)
}

// Delete removes an item and applies the removal locally without a full
// refetch. An item already gone on the server still counts as success.
func (m *ListManager[T]) Delete(ctx context.Context, id string) error {
	err := m.store.Delete(ctx, id)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		if errors.Is(err, domain.ErrAuthExpired) {
			return err
		}
		m.logger.Error("delete failed", zap.String("id", id), zap.Error(err))
		m.notifier.Error("failed to delete " + m.schema.Screen + " entry")
		return err
	}

	m.cache.ApplyLocalDelete(id)
	m.pager.Clamp(m.cache.Len())
	if m.edit.Active() && m.edit.ID() == id {
		m.edit.Cancel()
	}
	m.logger.Info("item deleted", zap.String("id", id))
	m.notifier.Success(m.schema.Screen + " entry deleted")
	return nil
}

// ToggleActive flips the item's active flag. Activating an item on an
// exclusive screen first deactivates every other active item, one call
// at a time; the sequence aborts on the first failure. The cache is
// refreshed afterwards no matter what happened, so the screen never
// shows a state the server has not confirmed.
func (m *ListManager[T]) ToggleActive(ctx context.Context, id string) error {
	if !m.schema.HasActiveFlag() {
		return fmt.Errorf("%s items have no active flag", m.schema.Screen)
	}

	item, ok := m.cache.Find(id)
	if !ok {
		m.notifier.Error(m.schema.Screen + " entry not found")
		return domain.ErrNotFound
	}

	err := m.toggle(ctx, item)

	if refreshErr := m.cache.Refresh(ctx); refreshErr != nil {
		m.logger.Warn("refresh after toggle failed", zap.Error(refreshErr))
		if err == nil {
			err = refreshErr
		}
	}
	m.pager.Clamp(m.cache.Len())

	if err != nil {
		if errors.Is(err, domain.ErrAuthExpired) {
			return err
		}
		m.logger.Error("status update failed", zap.String("id", id), zap.Error(err))
		m.notifier.Error("failed to update status")
		return err
	}

	m.notifier.Success("status updated")
	return nil
}

// toggle issues the status calls without refreshing; ToggleActive owns
// the unconditional refresh.
func (m *ListManager[T]) toggle(ctx context.Context, item T) error {
	id := item.ItemID()

	// Turning an active item off never touches the others.
	if m.schema.ActiveOf(item) {
		return m.store.SetActive(ctx, id, false)
	}

	if m.schema.Exclusive {
		for _, other := range m.cache.Snapshot() {
			if other.ItemID() == id || !m.schema.ActiveOf(other) {
				continue
			}
			if err := m.store.SetActive(ctx, other.ItemID(), false); err != nil {
				return err
			}
		}
	}
	return m.store.SetActive(ctx, id, true)
}

// BeginEdit opens a draft for the given cached item. A draft already in
// progress is silently discarded, matching the screens' historical
// behavior; the discard is logged so it stays visible in diagnostics.
func (m *ListManager[T]) BeginEdit(id string) error {
	item, ok := m.cache.Find(id)
	if !ok {
		return domain.ErrNotFound
	}

	if m.edit.Active() && m.edit.ID() != id {
		m.logger.Warn("unsaved draft discarded by new edit",
			zap.String("previous_id", m.edit.ID()),
			zap.String("id", id),
		)
	}
	m.edit.Begin(id, m.schema.FieldsOf(item))
	return nil
}

// SetDraftField mutates one field of the open draft.
func (m *ListManager[T]) SetDraftField(name string, value any) {
	m.edit.Set(name, value)
}

// CancelEdit discards the open draft without a network call.
func (m *ListManager[T]) CancelEdit() { m.edit.Cancel() }

// Editing returns the id under edit and whether a draft is open.
func (m *ListManager[T]) Editing() (string, bool) { return m.edit.ID(), m.edit.Active() }

// Draft returns a copy of the open draft's fields.
func (m *ListManager[T]) Draft() domain.Fields { return m.edit.Draft() }

// SaveEdit validates and commits the open draft. Validation failures and
// save failures both keep the draft so the operator can correct or
// retry; only a successful save closes the session and refreshes.
func (m *ListManager[T]) SaveEdit(ctx context.Context) error {
	if !m.edit.Active() {
		return fmt.Errorf("no %s entry is being edited", m.schema.Screen)
	}

	draft := m.edit.Draft()
	if missing := m.schema.MissingRequired(draft); len(missing) > 0 {
		m.notifier.Warning("please fill all required fields: " + strings.Join(missing, ", "))
		return &domain.ValidationError{Message: "missing required fields: " + strings.Join(missing, ", ")}
	}

	id := m.edit.ID()
	if _, err := m.store.Update(ctx, id, draft); err != nil {
		if errors.Is(err, domain.ErrAuthExpired) {
			return err
		}
		m.logger.Error("save failed", zap.String("id", id), zap.Error(err))
		m.notifier.Error(saveFailureMessage(m.schema.Screen, err))
		return err
	}

	m.edit.Cancel()
	m.logger.Info("item updated", zap.String("id", id))
	m.notifier.Success(m.schema.Screen + " entry updated")
	return m.Refresh(ctx)
}

func createFailureMessage(screen string, err error) string {
	var verr *domain.ValidationError
	if errors.As(err, &verr) && verr.Message != "" {
		return verr.Message
	}
	return "failed to create " + screen + " entry"
}

func saveFailureMessage(screen string, err error) string {
	if errors.Is(err, domain.ErrNotFound) {
		return screen + " entry no longer exists on the server"
	}
	var verr *domain.ValidationError
	if errors.As(err, &verr) && verr.Message != "" {
		return verr.Message
	}
	return "failed to update " + screen + " entry"
}
