package hybridbfs

import "sync"

// Worker-private buffers for vertices discovered during one expansion step.
// They are pooled so that consecutive steps reuse the backing arrays.
var batchPool = sync.Pool{
	New: func() any {
		b := make([]int32, 0, 1024)
		return &b
	},
}

func acquireBatch() *[]int32 {
	b := batchPool.Get().(*[]int32)
	*b = (*b)[:0]
	return b
}

func releaseBatch(b *[]int32) {
	batchPool.Put(b)
}
