package widget

import (
	"math/rand"
	"time"
)

// Simulated reply latency bounds. The delay is sampled uniformly from
// [ReplyDelayMin, ReplyDelayMin+ReplyDelayJitter).
const (
	ReplyDelayMin    = 1000 * time.Millisecond
	ReplyDelayJitter = 1000 * time.Millisecond
)

// Responder draws canned replies and simulated latencies from a pool. Each
// widget instance owns its own Responder and random source.
type Responder struct {
	pool []string
	rng  *rand.Rand
}

// NewResponder creates a responder over the given pool. An empty pool
// falls back to DefaultResponses.
func NewResponder(pool []string, rng *rand.Rand) *Responder {
	if len(pool) == 0 {
		pool = DefaultResponses()
	}
	return &Responder{pool: pool, rng: rng}
}

// Pick returns a reply chosen uniformly at random from the pool.
func (r *Responder) Pick() string {
	return r.pool[r.rng.Intn(len(r.pool))]
}

// Delay returns a simulated reply latency.
func (r *Responder) Delay() time.Duration {
	return ReplyDelayMin + time.Duration(r.rng.Int63n(int64(ReplyDelayJitter)))
}
