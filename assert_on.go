//go:build vecassert

package vec

// assert panics when cond is false. Enabled by the vecassert build tag;
// release builds compile the checks out entirely.
func assert(cond bool, msg string) {
	if !cond {
		panic("vec: " + msg)
	}
}
