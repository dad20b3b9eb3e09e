package database

import (
	"context"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Health reports whether the store is reachable. It replaces a process-wide
// "db ready" flag: the probe is injected where it is needed and the pool is
// asked directly, with the answer cached for ttl.
type Health struct {
	db      Pinger
	ttl     time.Duration
	timeout time.Duration
	logger  *log.Logger
	now     func() time.Time

	// prepare runs once the store first answers a ping. Until it succeeds
	// the store is reported as not ready.
	prepare func(ctx context.Context) error

	group singleflight.Group

	mu        sync.Mutex
	checkedAt time.Time
	ready     bool
	checked   bool
	prepared  bool
	probing   bool
}

func NewHealth(db Pinger, ttl time.Duration, logger *log.Logger) *Health {
	if ttl < 0 {
		ttl = 0
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Health{
		db:      db,
		ttl:     ttl,
		timeout: time.Second,
		logger:  logger,
		now:     time.Now,
	}
}

// OnFirstReady registers fn to run the first time a ping succeeds, e.g.
// migrations deferred because the store was down at startup. A failing fn
// keeps the store not ready and is retried on the next probe.
func (h *Health) OnFirstReady(fn func(ctx context.Context) error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.prepare = fn
	h.prepared = fn == nil
}

// Ready pings the store unless a result younger than ttl is cached. Only one
// probe runs at a time; other callers get the last known answer, or share
// the first probe when there is none yet.
func (h *Health) Ready(ctx context.Context) bool {
	if h == nil || h.db == nil {
		return false
	}

	h.mu.Lock()
	if h.checked && (h.probing || h.now().Sub(h.checkedAt) < h.ttl) {
		ready := h.ready
		h.mu.Unlock()
		return ready
	}
	h.probing = true
	h.mu.Unlock()

	v, _, _ := h.group.Do("probe", func() (any, error) {
		return h.refresh(ctx), nil
	})
	return v.(bool)
}

func (h *Health) refresh(ctx context.Context) bool {
	h.mu.Lock()
	prepare := h.prepare
	if h.prepared {
		prepare = nil
	}
	h.mu.Unlock()

	ready, err := h.probe(ctx, prepare)

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.checked && ready != h.ready {
		if ready {
			h.logger.Printf("[Store] reconnected")
		} else {
			h.logger.Printf("[Store] unreachable: %v", err)
		}
	} else if !ready && prepare != nil && err != nil {
		h.logger.Printf("[Store] not ready: %v", err)
	}
	if ready && prepare != nil {
		h.prepared = true
	}
	h.ready = ready
	h.checked = true
	h.checkedAt = h.now()
	h.probing = false
	return ready
}

func (h *Health) probe(ctx context.Context, prepare func(context.Context) error) (bool, error) {
	pingCtx, cancel := context.WithTimeout(ctx, h.timeout)
	err := h.db.Ping(pingCtx)
	cancel()
	if err != nil {
		return false, err
	}
	if prepare != nil {
		if err := prepare(ctx); err != nil {
			return false, err
		}
	}
	return true, nil
}
