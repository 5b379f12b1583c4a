package profiles

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryRepoCreateAndGet(t *testing.T) {
	repo := NewMemoryRepo()

	p := Profile{
		ID:        "p-1",
		Name:      "Ada",
		Age:       36,
		Bio:       "Engineer",
		ImageURL:  "http://localhost/uploads/a.jpg",
		CreatedAt: time.Now().UTC(),
	}
	if err := repo.Create(context.Background(), p); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByID(context.Background(), "p-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != p {
		t.Fatalf("expected %+v, got %+v", p, got)
	}
}

func TestMemoryRepoRejectsDuplicateID(t *testing.T) {
	repo := NewMemoryRepo()

	p := Profile{ID: "p-1", Name: "Ada", CreatedAt: time.Now().UTC()}
	if err := repo.Create(context.Background(), p); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if err := repo.Create(context.Background(), p); err == nil {
		t.Fatalf("expected duplicate id to be rejected")
	}
}

func TestMemoryRepoGetMissingReturnsNotFound(t *testing.T) {
	repo := NewMemoryRepo()

	if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryRepoHonorsCanceledContext(t *testing.T) {
	repo := NewMemoryRepo()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := repo.Create(ctx, Profile{ID: "p-1"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if _, err := repo.GetByID(ctx, "p-1"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
