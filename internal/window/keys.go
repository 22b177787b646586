package window

import (
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/tilewalk/input"
)

// BindKeys forwards key presses and releases from src to q. Keys the demo
// does not use are dropped.
func BindKeys(src gpucontext.EventSource, q *input.Queue) {
	src.OnKeyPress(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		if k := input.FromGPUKey(key); k != input.KeyUnknown {
			q.Push(input.Down(k))
		}
	})
	src.OnKeyRelease(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		if k := input.FromGPUKey(key); k != input.KeyUnknown {
			q.Push(input.Up(k))
		}
	})
}
