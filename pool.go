// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comb

import (
	"reflect"
	"sync"
)

// Scratch pool for the argument buffers of reflective calls.
// Buffers live only for the duration of one call and are zeroed before
// being returned, so no argument value is retained across calls.

var argsPool = sync.Pool{
	New: func() any {
		s := make([]reflect.Value, 0, 8)
		return &s
	},
}

func acquireArgs() *[]reflect.Value {
	return argsPool.Get().(*[]reflect.Value)
}

// releaseArgs zeroes the used portion and returns the buffer to the pool.
func releaseArgs(buf *[]reflect.Value, used []reflect.Value) {
	clear(used)
	*buf = used[:0]
	argsPool.Put(buf)
}
