package scenario

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/suPer8Hu/defi-sim/internal/db/dbtest"
)

func newTestService(t *testing.T, locker Locker) (*Service, *Repo) {
	t.Helper()
	db := dbtest.Open(t, &Query{})
	repo := NewRepo(db)
	return NewService(repo, locker, time.Second, nil), repo
}

func TestCatalog_UniqueSlugs(t *testing.T) {
	rows := Catalog()
	if len(rows) != 14 {
		t.Fatalf("expected 14 seed rows, got %d", len(rows))
	}
	seen := map[string]bool{}
	for _, q := range rows {
		if q.Slug == "" || seen[q.Slug] {
			t.Fatalf("bad or duplicate slug %q", q.Slug)
		}
		seen[q.Slug] = true
		if len(q.RecommendedActions) == 0 {
			t.Fatalf("slug %q has no recommended actions", q.Slug)
		}
	}
}

func TestSeedIfEmpty_Idempotent(t *testing.T) {
	svc, repo := newTestService(t, nil)
	ctx := context.Background()

	n, err := svc.SeedIfEmpty(ctx, Catalog())
	if err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if n != 14 {
		t.Fatalf("expected 14 inserted, got %d", n)
	}

	n, err = svc.SeedIfEmpty(ctx, Catalog())
	if err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected second seed to insert nothing, got %d", n)
	}

	cnt, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if cnt != 14 {
		t.Fatalf("expected 14 rows after two seeds, got %d", cnt)
	}
}

func TestGetBySlug(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()
	if _, err := svc.SeedIfEmpty(ctx, Catalog()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	for _, want := range Catalog() {
		got, err := svc.GetBySlug(ctx, want.Slug)
		if err != nil {
			t.Fatalf("get %q: %v", want.Slug, err)
		}
		if got.Slug != want.Slug {
			t.Fatalf("asked for %q, got %q", want.Slug, got.Slug)
		}
		if got.ID == 0 {
			t.Fatalf("expected id assigned for %q", want.Slug)
		}
		if len(got.RecommendedActions) != len(want.RecommendedActions) ||
			got.RecommendedActions[0] != want.RecommendedActions[0] {
			t.Fatalf("actions not round-tripped for %q: %v", want.Slug, got.RecommendedActions)
		}
	}

	_, err := svc.GetBySlug(ctx, "no-such-scenario")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestList(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()

	qs, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list empty: %v", err)
	}
	if len(qs) != 0 {
		t.Fatalf("expected empty list, got %d", len(qs))
	}

	if _, err := svc.SeedIfEmpty(ctx, Catalog()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	qs, err = svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(qs) != 14 {
		t.Fatalf("expected 14, got %d", len(qs))
	}
}

type fakeLocker struct {
	grant    bool
	err      error
	acquired int
	released int
}

func (l *fakeLocker) TryLock(ctx context.Context, key string, ttl time.Duration) (func(context.Context) error, bool, error) {
	if l.err != nil {
		return nil, false, l.err
	}
	if !l.grant {
		return nil, false, nil
	}
	l.acquired++
	return func(context.Context) error {
		l.released++
		return nil
	}, true, nil
}

func TestSeedIfEmpty_WithLocker(t *testing.T) {
	locker := &fakeLocker{grant: true}
	svc, _ := newTestService(t, locker)

	n, err := svc.SeedIfEmpty(context.Background(), Catalog())
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if n != 14 {
		t.Fatalf("expected 14 inserted, got %d", n)
	}
	if locker.acquired != 1 || locker.released != 1 {
		t.Fatalf("expected one acquire/release, got %d/%d", locker.acquired, locker.released)
	}
}

func TestSeedIfEmpty_LockHeldElsewhere(t *testing.T) {
	svc, repo := newTestService(t, &fakeLocker{grant: false})

	n, err := svc.SeedIfEmpty(context.Background(), Catalog())
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected skip, inserted %d", n)
	}
	cnt, _ := repo.Count(context.Background())
	if cnt != 0 {
		t.Fatalf("expected no rows, got %d", cnt)
	}
}

func TestSeedIfEmpty_LockError(t *testing.T) {
	svc, _ := newTestService(t, &fakeLocker{err: errors.New("redis down")})
	if _, err := svc.SeedIfEmpty(context.Background(), Catalog()); err == nil {
		t.Fatalf("expected lock error to surface")
	}
}
