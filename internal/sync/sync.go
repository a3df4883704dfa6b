//go:build !jsonmap_deadlock

package sync

import "sync"

type (
	Mutex   = sync.Mutex
	RWMutex = sync.RWMutex
	Once    = sync.Once
)
