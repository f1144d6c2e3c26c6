package stepgrid

import "sync"

var (
	defaultOnce   sync.Once
	defaultFinder *Finder
)

// Default returns a process-wide Finder over an initially empty grid.
// Configure its map with Default().Grid().Configure(w, h).
//
// It exists for callers that want a single shared map; nothing else in this
// package uses it. Queries against it still must not run concurrently.
func Default() *Finder {
	defaultOnce.Do(func() {
		defaultFinder = NewFinder(&Grid{})
	})
	return defaultFinder
}
