package input

import "github.com/gogpu/gpucontext"

// FromGPUKey maps a gogpu key code to a Key.
// Number-row and numpad digits map to the same Key.
func FromGPUKey(k gpucontext.Key) Key {
	switch k {
	case gpucontext.KeyEscape:
		return KeyEscape
	case gpucontext.KeyLeft:
		return KeyLeft
	case gpucontext.KeyRight:
		return KeyRight
	case gpucontext.KeyUp:
		return KeyUp
	case gpucontext.KeyDown:
		return KeyDown
	}

	if k >= gpucontext.Key1 && k <= gpucontext.Key8 {
		return Key1 + Key(k-gpucontext.Key1)
	}
	if k >= gpucontext.KeyNumpad1 && k <= gpucontext.KeyNumpad8 {
		return Key1 + Key(k-gpucontext.KeyNumpad1)
	}
	return KeyUnknown
}
