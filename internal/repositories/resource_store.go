package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sort"

	"github.com/yashwalhekar/adminpanelfrontend/internal/domain"
)

// RemoteStore implements domain.Store for one resource collection.
type RemoteStore[T domain.Item] struct {
	client   *Client
	resource string
}

// NewRemoteStore creates a store for the given collection path segment,
// e.g. "ads" or "tagline".
func NewRemoteStore[T domain.Item](client *Client, resource string) *RemoteStore[T] {
	return &RemoteStore[T]{client: client, resource: resource}
}

// ListAll fetches the full collection. The backend is inconsistent about
// the list shape (a bare array, or an array wrapped under a detail key),
// so both are accepted.
func (s *RemoteStore[T]) ListAll(ctx context.Context) ([]T, error) {
	data, err := s.client.do(ctx, http.MethodGet, "/"+s.resource, nil, "")
	if err != nil {
		return nil, err
	}
	return decodeList[T](data, s.resource)
}

// Create adds a new item from a JSON body.
func (s *RemoteStore[T]) Create(ctx context.Context, fields domain.Fields) (T, error) {
	var zero T
	body, err := json.Marshal(fields)
	if err != nil {
		return zero, err
	}

	data, err := s.client.do(ctx, http.MethodPost, "/"+s.resource, bytes.NewReader(body), "application/json")
	if err != nil {
		return zero, err
	}
	return decodeItem[T](data)
}

// CreateMultipart adds a new item whose fields are accompanied by a file
// upload, e.g. an ad banner or a blog cover image.
func (s *RemoteStore[T]) CreateMultipart(ctx context.Context, fields domain.Fields, fileField, fileName string, file io.Reader) (T, error) {
	var zero T

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for _, name := range sortedKeys(fields) {
		if err := writer.WriteField(name, fmt.Sprintf("%v", fields[name])); err != nil {
			return zero, err
		}
	}
	if file != nil {
		part, err := writer.CreateFormFile(fileField, fileName)
		if err != nil {
			return zero, err
		}
		if _, err := io.Copy(part, file); err != nil {
			return zero, err
		}
	}
	if err := writer.Close(); err != nil {
		return zero, err
	}

	data, err := s.client.do(ctx, http.MethodPost, "/"+s.resource, &buf, writer.FormDataContentType())
	if err != nil {
		return zero, err
	}
	return decodeItem[T](data)
}

// Update applies a partial field update to an existing item.
func (s *RemoteStore[T]) Update(ctx context.Context, id string, fields domain.Fields) (T, error) {
	var zero T
	body, err := json.Marshal(fields)
	if err != nil {
		return zero, err
	}

	data, err := s.client.do(ctx, http.MethodPut, "/"+s.resource+"/"+id, bytes.NewReader(body), "application/json")
	if err != nil {
		return zero, err
	}
	return decodeItem[T](data)
}

// Delete removes an item. An item that is already gone counts as a
// successful delete.
func (s *RemoteStore[T]) Delete(ctx context.Context, id string) error {
	_, err := s.client.do(ctx, http.MethodDelete, "/"+s.resource+"/"+id, nil, "")
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	return err
}

// SetActive updates only the item's active flag via the status endpoint.
func (s *RemoteStore[T]) SetActive(ctx context.Context, id string, active bool) error {
	body, err := json.Marshal(map[string]bool{"isActive": active})
	if err != nil {
		return err
	}
	_, err = s.client.do(ctx, http.MethodPut, "/"+s.resource+"/"+id+"/status", bytes.NewReader(body), "application/json")
	return err
}

// decodeList accepts either a bare JSON array or an object wrapping one.
// Well-known wrapper keys are tried first, then any array-valued key in
// stable order.
func decodeList[T any](data []byte, resource string) ([]T, error) {
	var list []T
	if err := json.Unmarshal(data, &list); err == nil {
		return list, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("unexpected list response shape: %w", err)
	}

	for _, key := range []string{"data", "detail", resource} {
		if raw, ok := envelope[key]; ok {
			if err := json.Unmarshal(raw, &list); err == nil {
				return list, nil
			}
		}
	}
	for _, key := range sortedRawKeys(envelope) {
		if err := json.Unmarshal(envelope[key], &list); err == nil {
			return list, nil
		}
	}
	return nil, fmt.Errorf("no item list found in response")
}

// decodeItem accepts either a bare item or one wrapped under "data".
func decodeItem[T any](data []byte) (T, error) {
	var wrapped struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && len(wrapped.Data) > 0 {
		data = wrapped.Data
	}

	var item T
	if err := json.Unmarshal(data, &item); err != nil {
		return item, fmt.Errorf("unexpected item response shape: %w", err)
	}
	return item, nil
}

func sortedKeys(fields domain.Fields) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedRawKeys(m map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var _ domain.Store[domain.Ad] = (*RemoteStore[domain.Ad])(nil)
