// Package ident generates the time-derived ids stamped on users and posts.
package ident

import (
	"strconv"
	"sync"
	"time"
)

var (
	mu   sync.Mutex
	last int64

	nowFn = time.Now
)

// TimeID returns the current unix milliseconds as a decimal string. When
// two calls land on the same millisecond the second one is bumped so ids
// stay unique within the process.
func TimeID() string {
	mu.Lock()
	defer mu.Unlock()

	ms := nowFn().UnixMilli()
	if ms <= last {
		ms = last + 1
	}
	last = ms
	return strconv.FormatInt(ms, 10)
}
