package scenario

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

const seedLockKey = "defi-sim:seed:queries"

// Locker is an optional cross-instance mutex around seeding.
type Locker interface {
	// TryLock returns ok=false without error when someone else holds key.
	TryLock(ctx context.Context, key string, ttl time.Duration) (release func(context.Context) error, ok bool, err error)
}

type Service struct {
	repo    *Repo
	locker  Locker
	lockTTL time.Duration
	log     *zap.Logger
}

// NewService wires the catalog. locker may be nil, in which case seeding is a
// plain count-then-insert.
func NewService(repo *Repo, locker Locker, lockTTL time.Duration, log *zap.Logger) *Service {
	if lockTTL <= 0 {
		lockTTL = 30 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, locker: locker, lockTTL: lockTTL, log: log}
}

func (s *Service) List(ctx context.Context) ([]Query, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (*Query, error) {
	return s.repo.GetBySlug(ctx, slug)
}

// SeedIfEmpty inserts rows only when the table holds zero rows and reports
// how many rows it inserted.
func (s *Service) SeedIfEmpty(ctx context.Context, rows []Query) (int, error) {
	if s.locker != nil {
		release, ok, err := s.locker.TryLock(ctx, seedLockKey, s.lockTTL)
		if err != nil {
			return 0, fmt.Errorf("acquire seed lock: %w", err)
		}
		if !ok {
			s.log.Info("seed lock held elsewhere, skipping seed")
			return 0, nil
		}
		defer func() {
			if err := release(context.WithoutCancel(ctx)); err != nil {
				s.log.Warn("release seed lock", zap.Error(err))
			}
		}()
	}

	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count queries: %w", err)
	}
	if n > 0 {
		s.log.Debug("catalog already seeded", zap.Int64("rows", n))
		return 0, nil
	}

	// copy so the caller's slice keeps zero ids
	batch := append([]Query(nil), rows...)
	if err := s.repo.CreateBatch(ctx, batch); err != nil {
		return 0, fmt.Errorf("insert seed queries: %w", err)
	}
	s.log.Info("seeded scenario catalog", zap.Int("rows", len(batch)))
	return len(batch), nil
}
