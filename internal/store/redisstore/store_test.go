package redisstore

import (
	"context"
	"os"
	"testing"
	"time"
)

// Runs only against a live redis: REDIS_TEST_ADDR=127.0.0.1:6379 go test ./...
func TestTryLock_Integration(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	ctx := context.Background()
	s, err := New(ctx, addr, "", 0)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer s.Close()

	key := "defi-sim:test:" + t.Name()
	release, ok, err := s.TryLock(ctx, key, 5*time.Second)
	if err != nil || !ok {
		t.Fatalf("first lock: ok=%v err=%v", ok, err)
	}

	if _, ok2, err := s.TryLock(ctx, key, 5*time.Second); err != nil || ok2 {
		t.Fatalf("second lock should be refused: ok=%v err=%v", ok2, err)
	}

	if err := release(ctx); err != nil {
		t.Fatalf("release: %v", err)
	}

	release, ok, err = s.TryLock(ctx, key, 5*time.Second)
	if err != nil || !ok {
		t.Fatalf("relock after release: ok=%v err=%v", ok, err)
	}
	_ = release(ctx)
}
