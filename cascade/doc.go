/*
Package cascade implements a cascading multi-layer hash table for
build-once, read-many dictionaries.

A table consists of an ordered list of layers with strictly decreasing prime
capacities and an unbounded overflow map. Every layer holds at most one entry
per bucket and never probes or chains. A key is hashed once; its bucket in
layer i is hash mod capacity(i). Insertion walks the layers in order and
stops at the first bucket which is either empty or already holds the same
key. If every layer's bucket is taken by a different key, the entry goes to
the overflow map. Lookup and deletion follow the same path, so a key lives
in at most one place at any time and a successful lookup costs at most
one probe per layer plus one map access.

Layers are sized once at construction and are never rehashed:

	capacity(0) = largest prime <= Capacity
	capacity(i) = largest prime <= min(floor(target(i-1) * Shrink), capacity(i-1)-1)

A Table is not safe for concurrent mutation. Build it, call Freeze, and share
it between any number of readers, or wrap it in Synchronized.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package cascade

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'maxmatch.cascade'
func tracer() tracing.Trace {
	return tracing.Select("maxmatch.cascade")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
