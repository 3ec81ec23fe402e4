package ridethebus

import (
	"sync"
)

var gameNodeSlicePool = sync.Pool{
	New: func() interface{} {
		return make([]GameNode, 0)
	},
}

func allocGameNodeSlice(n int) []GameNode {
	s := gameNodeSlicePool.Get().([]GameNode)
	if cap(s) < n {
		return make([]GameNode, 0, n)
	}

	return s
}

func freeGameNodeSlice(s []GameNode) {
	if cap(s) > 0 {
		gameNodeSlicePool.Put(s[:0])
	}
}
