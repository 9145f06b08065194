package jobs

import (
	"context"
	"log"
	"time"

	"helphood/internal/metrics"
)

// probeTimeout bounds a single reachability check.
const probeTimeout = 10 * time.Second

// Pinger checks that the AI upstream is reachable. *gemini.Client implements it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingerFunc adapts a function to the Pinger interface.
type PingerFunc func(ctx context.Context) error

// Ping calls f(ctx).
func (f PingerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

// UpstreamProber periodically checks the AI upstream and publishes the
// result as the helphood_upstream_up gauge. It never affects request
// handling: chat requests always try the upstream when a key is set.
type UpstreamProber struct {
	pinger   Pinger
	interval time.Duration
	report   func(up bool)
}

// NewUpstreamProber creates a new upstream prober.
func NewUpstreamProber(pinger Pinger, interval time.Duration) *UpstreamProber {
	return &UpstreamProber{
		pinger:   pinger,
		interval: interval,
		report:   metrics.SetUpstreamUp,
	}
}

// Start begins the background probe loop and blocks until ctx is done.
func (p *UpstreamProber) Start(ctx context.Context) {
	log.Printf("Upstream prober started (interval: %v)", p.interval)

	// Run immediately on start
	p.probe(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Upstream prober stopped")
			return
		case <-ticker.C:
			p.probe(ctx)
		}
	}
}

// probe runs one check and reports whether it succeeded. A check cut short
// by shutdown is not reported.
func (p *UpstreamProber) probe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	if err := p.pinger.Ping(probeCtx); err != nil {
		if ctx.Err() != nil {
			return
		}
		log.Printf("Upstream prober: upstream unreachable: %v", err)
		p.report(false)
		return
	}
	p.report(true)
}
