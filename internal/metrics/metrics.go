package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Add(n uint64) {
	atomic.AddUint64(&c.value, n)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// Registry holds the process counters reported by the health endpoint.
type Registry struct {
	OrdersPlaced         Counter
	OrderStatusChanges   Counter
	LoginsFailed         Counter
	EventPublishFailures Counter

	uptime *Timer
}

func NewRegistry() *Registry {
	return &Registry{uptime: StartTimer()}
}

type Snapshot struct {
	Uptime               string `json:"uptime"`
	OrdersPlaced         uint64 `json:"ordersPlaced"`
	OrderStatusChanges   uint64 `json:"orderStatusChanges"`
	LoginsFailed         uint64 `json:"loginsFailed"`
	EventPublishFailures uint64 `json:"eventPublishFailures"`
}

func (r *Registry) Snapshot() Snapshot {
	return Snapshot{
		Uptime:               r.uptime.Duration().Round(time.Second).String(),
		OrdersPlaced:         r.OrdersPlaced.Load(),
		OrderStatusChanges:   r.OrderStatusChanges.Load(),
		LoginsFailed:         r.LoginsFailed.Load(),
		EventPublishFailures: r.EventPublishFailures.Load(),
	}
}
