package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"jobboard/internal/infrastructure/cache"
)

type stepCounter struct {
	n   int64
	err error
}

func (s *stepCounter) IncrWindow(context.Context, string, time.Duration) (int64, time.Duration, error) {
	if s.err != nil {
		return 0, 0, s.err
	}
	s.n++
	return s.n, 30 * time.Second, nil
}

func TestRateLimiterAdapter(t *testing.T) {
	l := rateLimiter(cache.NewRateLimiter(&stepCounter{}, 1, time.Minute))

	res, err := l.Allow(context.Background(), "ratelimit:10.0.0.1")
	if err != nil || !res.Allowed || res.Limit != 1 || res.Remaining != 0 || res.ResetIn != 30*time.Second {
		t.Fatalf("unexpected first hit %+v err=%v", res, err)
	}
	res, err = l.Allow(context.Background(), "ratelimit:10.0.0.1")
	if err != nil || res.Allowed {
		t.Fatalf("expected second hit blocked, got %+v err=%v", res, err)
	}
}

func TestRateLimiterAdapter_PassesErrors(t *testing.T) {
	l := rateLimiter(cache.NewRateLimiter(&stepCounter{err: cache.ErrUnavailable}, 1, time.Minute))
	if _, err := l.Allow(context.Background(), "k"); !errors.Is(err, cache.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestListenAddr(t *testing.T) {
	cases := map[string]string{"4000": ":4000", ":8080": ":8080", " 3000 ": ":3000"}
	for in, want := range cases {
		got, err := ListenAddr(in)
		if err != nil || got != want {
			t.Fatalf("ListenAddr(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ListenAddr(""); err == nil {
		t.Fatalf("expected error for empty port")
	}
}
