//go:build !vecassert

package vec

// assert compiles to nothing in release builds. The unchecked operations
// rely on the caller upholding their preconditions; build with the
// vecassert tag to have them verified.
func assert(bool, string) {}
