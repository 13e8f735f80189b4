//go:build !wasm

package internal

import (
	"sync"

	"github.com/petermattis/goid"
)

// Each goroutine gets its own runtime, so independent graphs never contend;
// the graph itself is single-threaded by construction.
var runtimes sync.Map

func GetRuntime() *Runtime {
	gid := goid.Get()

	if r, ok := runtimes.Load(gid); ok {
		return r.(*Runtime)
	}

	r := NewRuntime()
	runtimes.Store(gid, r)
	return r
}
