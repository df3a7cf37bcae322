package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/yashwalhekar/adminpanelfrontend/internal/domain"
	"github.com/yashwalhekar/adminpanelfrontend/internal/notify"
	"github.com/yashwalhekar/adminpanelfrontend/internal/repositories"
	"github.com/yashwalhekar/adminpanelfrontend/internal/usecases"
)

// screen is the command surface every managed screen exposes to the CLI.
type screen interface {
	list(ctx context.Context, page int) error
	create(ctx context.Context, sets map[string]string, imagePath string) error
	edit(ctx context.Context, id string, sets map[string]string) error
	toggle(ctx context.Context, id string) error
	remove(ctx context.Context, id string) error
}

// screenRunner adapts one generic list manager to the CLI.
type screenRunner[T domain.Item] struct {
	schema  domain.Schema[T]
	store   *repositories.RemoteStore[T]
	manager *usecases.ListManager[T]
	out     io.Writer
}

func newScreenRunner[T domain.Item](
	schema domain.Schema[T],
	client *repositories.Client,
	pageSize int,
	notifier notify.Notifier,
	logger *zap.Logger,
	out io.Writer,
) *screenRunner[T] {
	store := repositories.NewRemoteStore[T](client, schema.Resource)
	return &screenRunner[T]{
		schema:  schema,
		store:   store,
		manager: usecases.NewListManager(schema, store, pageSize, notifier, logger),
		out:     out,
	}
}

// list renders one page of the collection as a table.
func (s *screenRunner[T]) list(ctx context.Context, page int) error {
	if err := s.manager.Refresh(ctx); err != nil {
		return err
	}
	if page > 0 {
		s.manager.GoToPage(page)
	}

	items := s.manager.Page()
	if len(items) == 0 {
		fmt.Fprintf(s.out, "no %s found\n", s.schema.Screen)
		return nil
	}

	w := tabwriter.NewWriter(s.out, 2, 4, 2, ' ', 0)
	fmt.Fprint(w, "ID")
	for _, col := range s.schema.Columns {
		fmt.Fprintf(w, "\t%s", col)
	}
	fmt.Fprintln(w)

	for _, item := range items {
		fields := s.schema.FieldsOf(item)
		fmt.Fprint(w, item.ItemID())
		for _, col := range s.schema.Columns {
			fmt.Fprintf(w, "\t%v", fields[col])
		}
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	index, total := s.manager.PageInfo()
	fmt.Fprintf(s.out, "page %d of %d\n", index, total)
	return nil
}

// create adds a new entry, uploading an image alongside the fields when
// a path was given.
func (s *screenRunner[T]) create(ctx context.Context, sets map[string]string, imagePath string) error {
	fields := make(domain.Fields, len(sets))
	for k, v := range sets {
		fields[k] = v
	}

	if imagePath == "" {
		return s.manager.Create(ctx, fields)
	}

	if missing := s.schema.MissingRequired(fields); len(missing) > 0 {
		return fmt.Errorf("missing required fields: %v", missing)
	}
	file, err := os.Open(imagePath)
	if err != nil {
		return err
	}
	defer file.Close()

	if _, err := s.store.CreateMultipart(ctx, fields, "image", filepath.Base(imagePath), file); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s entry created\n", s.schema.Screen)
	return nil
}

// edit opens a draft for the item, applies the field changes and saves.
func (s *screenRunner[T]) edit(ctx context.Context, id string, sets map[string]string) error {
	if err := s.manager.Refresh(ctx); err != nil {
		return err
	}
	if err := s.manager.BeginEdit(id); err != nil {
		return err
	}
	for k, v := range sets {
		s.manager.SetDraftField(k, v)
	}
	return s.manager.SaveEdit(ctx)
}

// toggle flips the entry's active flag, honoring the exclusivity rule.
func (s *screenRunner[T]) toggle(ctx context.Context, id string) error {
	if err := s.manager.Refresh(ctx); err != nil {
		return err
	}
	return s.manager.ToggleActive(ctx, id)
}

// remove deletes the entry.
func (s *screenRunner[T]) remove(ctx context.Context, id string) error {
	return s.manager.Delete(ctx, id)
}
