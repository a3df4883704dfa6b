//go:build jsonmap_deadlock

package sync

import "github.com/sasha-s/go-deadlock"

type (
	Mutex   = deadlock.Mutex
	RWMutex = deadlock.RWMutex
	Once    = deadlock.Once
)
