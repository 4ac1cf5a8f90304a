package service

import (
	"strconv"
	"time"
)

// Latency simulates a network round-trip in front of the store, so clients
// exercise their loading states against a local backend the same way they
// would against a remote one. The zero value disables it, which is what
// tests use. Once an operation starts its delay always elapses; there is no
// cancellation path.
type Latency struct {
	Read  time.Duration
	Write time.Duration
}

// DefaultLatency carries the delays the storefront UI is tuned against.
var DefaultLatency = Latency{
	Read:  300 * time.Millisecond,
	Write: 500 * time.Millisecond,
}

func (l Latency) read() {
	if l.Read > 0 {
		time.Sleep(l.Read)
	}
}

func (l Latency) write() {
	if l.Write > 0 {
		time.Sleep(l.Write)
	}
}

// newID derives an opaque id from the wall clock, the scheme the storefront
// has always used for products and orders. Nanosecond precision keeps
// back-to-back writes from colliding.
func newID() string {
	return strconv.FormatInt(time.Now().UnixNano(), 10)
}
