package health

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Checker is implemented by component-level checkers (store, accounts, assets).
type Checker interface {
	Name() string
	IsHealthy() bool
	Start(ctx context.Context, interval time.Duration)
}

// DependencyChecker polls a single Pinger and caches its health.
type DependencyChecker struct {
	name         string
	target       Pinger
	healthy      atomic.Int32
	log          zerolog.Logger
	probeTimeout time.Duration
}

// NewDependencyChecker creates a checker for one external dependency.
func NewDependencyChecker(name string, target Pinger, log zerolog.Logger, probeTimeout time.Duration) *DependencyChecker {
	dc := &DependencyChecker{
		name:         name,
		target:       target,
		log:          log,
		probeTimeout: probeTimeout,
	}
	dc.healthy.Store(0) // start unhealthy until first successful probe
	return dc
}

// Name returns the checker name.
func (dc *DependencyChecker) Name() string { return dc.name }

// IsHealthy returns the cached health status (non-blocking).
func (dc *DependencyChecker) IsHealthy() bool { return dc.healthy.Load() == 1 }

// Start begins periodic health checking.
func (dc *DependencyChecker) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	check := func() {
		to := dc.probeTimeout
		if to <= 0 {
			to = 2 * time.Second
		}
		checkCtx, cancel := context.WithTimeout(ctx, to)
		defer cancel()

		if err := dc.target.HealthPing(checkCtx); err != nil {
			dc.log.Error().Stack().
				Str("checker", dc.name).
				Err(err).
				Msg("dependency health check failed")
			dc.healthy.Store(0)
			return
		}
		dc.healthy.Store(1)
	}

	check()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			check()
		}
	}
}

// ServiceChecker aggregates component checkers into a single service health flag.
type ServiceChecker struct {
	healthy atomic.Int32
	deps    []Checker
	log     zerolog.Logger
}

func NewServiceChecker(log zerolog.Logger, deps ...Checker) *ServiceChecker {
	h := &ServiceChecker{deps: deps, log: log}
	h.healthy.Store(0)
	return h
}

// IsHealthy returns cached service health.
func (h *ServiceChecker) IsHealthy() bool { return h.healthy.Load() == 1 }

// Start periodically evaluates dependency health and updates the service flag.
func (h *ServiceChecker) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := int32(0)
	eval := func() {
		all := true
		for _, c := range h.deps {
			if !c.IsHealthy() {
				all = false
			}
		}
		if all {
			h.healthy.Store(1)
		} else {
			h.healthy.Store(0)
		}
		cur := h.healthy.Load()
		if cur != prev {
			if cur == 1 {
				h.log.Info().Msg("service health: UP")
			} else {
				h.log.Error().Stack().Msg("service health: DOWN")
			}
			prev = cur
		}
	}

	eval()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			eval()
		}
	}
}
