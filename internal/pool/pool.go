package pool

import "sync"

// CopyBufferSize is the size of the pooled buffers used to stream files.
const CopyBufferSize = 32 * 1024 // 32KiB

var copyBufferPool = sync.Pool{
	New: func() any {
		buf := make([]byte, CopyBufferSize)
		return &buf
	},
}

// GetCopyBuffer retrieves a fixed-size copy buffer from the pool.
//
// The caller must call the returned cleanup function (typically with defer)
// to return the buffer to the pool.
//
// Example:
//
//	buf, cleanup := pool.GetCopyBuffer()
//	defer cleanup()
//	io.CopyBuffer(dst, src, buf)
func GetCopyBuffer() ([]byte, func()) {
	ptr, _ := copyBufferPool.Get().(*[]byte)

	return *ptr, func() { copyBufferPool.Put(ptr) }
}
