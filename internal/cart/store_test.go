package cart

import (
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/chocomarket/chocomarket-backend/pkg/logger"
	"github.com/chocomarket/chocomarket-backend/pkg/redis"
)

type fakeSnapshotClient struct {
	values map[string]string
	getErr error
	setErr error
}

func newFakeSnapshotClient() *fakeSnapshotClient {
	return &fakeSnapshotClient{values: map[string]string{}}
}

func (f *fakeSnapshotClient) Set(_ context.Context, key string, value any, _ time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	switch v := value.(type) {
	case []byte:
		f.values[key] = string(v)
	case string:
		f.values[key] = v
	}
	return nil
}

func (f *fakeSnapshotClient) Get(_ context.Context, key string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	v, ok := f.values[key]
	if !ok {
		return "", redis.Nil
	}
	return v, nil
}

func (f *fakeSnapshotClient) Del(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.values, key)
	}
	return nil
}

func (f *fakeSnapshotClient) CartSnapshotKey(token string) string {
	return "cm:cart:" + token
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func TestStoreRoundtrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newStoreWithClient(newFakeSnapshotClient(), time.Hour, testLogger())

	id := uuid.New()
	c := NewCart(nil)
	c.Add(AddInput{ProductID: id, Grams: intPtr(250)})
	if err := store.Save(ctx, "tok", c); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := store.Load(ctx, "tok")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	line, ok := loaded.Find(id)
	if !ok {
		t.Fatal("expected line after roundtrip")
	}
	if line.Grams == nil || *line.Grams != 250 || line.Quantity != 1 {
		t.Fatalf("unexpected line after roundtrip: %+v", line)
	}
}

func TestStoreMissingKeyIsEmptyCart(t *testing.T) {
	t.Parallel()

	store := newStoreWithClient(newFakeSnapshotClient(), time.Hour, testLogger())
	c, err := store.Load(context.Background(), "absent")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Len() != 0 {
		t.Fatalf("expected empty cart, got %d lines", c.Len())
	}
}

func TestStoreCorruptSnapshotIsEmptyCart(t *testing.T) {
	t.Parallel()

	client := newFakeSnapshotClient()
	client.values["cm:cart:tok"] = "{not json"
	store := newStoreWithClient(client, time.Hour, testLogger())

	c, err := store.Load(context.Background(), "tok")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Len() != 0 {
		t.Fatalf("expected empty cart for corrupt snapshot, got %d lines", c.Len())
	}
}

func TestStoreIgnoresUnknownSnapshotFields(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	payload, _ := json.Marshal([]map[string]any{
		{"product_id": id.String(), "quantity": 2, "legacy_field": true},
	})
	client := newFakeSnapshotClient()
	client.values["cm:cart:tok"] = string(payload)
	store := newStoreWithClient(client, time.Hour, testLogger())

	c, err := store.Load(context.Background(), "tok")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	line, ok := c.Find(id)
	if !ok || line.Quantity != 2 {
		t.Fatalf("expected unknown fields ignored, got %+v ok=%v", line, ok)
	}
}

func TestStoreDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := newFakeSnapshotClient()
	store := newStoreWithClient(client, time.Hour, testLogger())

	c := NewCart(nil)
	c.Add(AddInput{ProductID: uuid.New()})
	if err := store.Save(ctx, "tok", c); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Delete(ctx, "tok"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	loaded, err := store.Load(ctx, "tok")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Len() != 0 {
		t.Fatal("expected empty cart after delete")
	}
}
