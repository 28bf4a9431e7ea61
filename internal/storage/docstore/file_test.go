package docstore

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

func TestFileStoreRoundtrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	ctx := context.Background()

	doc := []byte(`[{"id":"a"}]`)
	if err := store.Save(ctx, "progress", doc); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Load(ctx, "progress")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !bytes.Equal(got, doc) {
		t.Errorf("Load() = %s, want %s", got, doc)
	}
}

func TestFileStoreOverwrite(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	ctx := context.Background()

	if err := store.Save(ctx, "progress", []byte(`[]`)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	want := []byte(`[{"id":"b"}]`)
	if err := store.Save(ctx, "progress", want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Load(ctx, "progress")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Load() = %s, want %s", got, want)
	}
}

func TestFileStoreMissingDocument(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}

	_, err = store.Load(context.Background(), "never-written")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Load() error = %v, want %v", err, ErrNotFound)
	}
}
