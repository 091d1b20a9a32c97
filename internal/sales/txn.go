package sales

import (
	"strconv"
	"sync"
	"time"
)

// txnSource issues time-derived transaction ids ("TXN" + Unix
// milliseconds). Two sales confirmed in the same millisecond would
// collide, so the source bumps past the last issued value; ids are
// therefore unique within a process run.
type txnSource struct {
	mu   sync.Mutex
	last int64
}

func (s *txnSource) Next(now time.Time) string {
	ms := now.UnixMilli()
	s.mu.Lock()
	defer s.mu.Unlock()
	if ms <= s.last {
		ms = s.last + 1
	}
	s.last = ms
	return "TXN" + strconv.FormatInt(ms, 10)
}
