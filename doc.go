// Package vec implements manually-managed dynamic arrays and stable
// in-place sorts over their backing storage.
//
// # Overview
//
// Two array flavors share one memory layout:
//
//   - Owning holds reference-counted elements: every insertion retains and
//     every removal releases through an injected Lifecycle, so the array is
//     always a set of strong references.
//   - Values holds plain fixed-width values with no ownership semantics at
//     all.
//
// Both sit on a capacity-doubling backing store with explicit count and
// capacity bookkeeping. The containers are deliberately close to the metal:
//
//   - Hot-path operations (Append, InsertAt on Values, RemoveAt, Swap)
//     perform no bounds or capacity checks; their preconditions are the
//     caller's job.
//   - "WithResize" variants and the Checked wrappers form the validating
//     tier for callers that want safety over speed.
//   - Comparisons are plain == (identity for pointer elements), not deep
//     equality.
//
// # Basic Usage
//
//	v := vec.NewValues[int](8)
//	defer v.Release() // Always clean up
//
//	for i := 0; i < 5; i++ {
//		v.AppendWithResize(i)
//	}
//	v.RemoveAt(0)
//	v.SortMerge(func(a, b int) int { return a - b })
//
// # Ownership
//
// An Owning array calls Retain as an element enters a slot and Release as
// it leaves one, whatever those mean to the host: reference counts, pool
// bookkeeping, or nothing (NopLifecycle). Swap and raw copies deliberately
// skip the adjustment, so moving an element between arrays needs an
// explicit re-retain by the caller.
//
//	objs := vec.NewOwning[*Sprite](16, spriteRefs)
//	defer objs.Release() // releases every element, then the buffer
//
//	objs.AppendWithResize(s)
//	objs.Remove(s) // releases s
//
// # Sorting
//
// Two sorts operate directly on the live elements, driven by a three-way
// comparator: a stable adjacent-swap insertion sort for small or
// near-sorted arrays, and a bottom-up iterative merge sort (no recursion,
// O(n) scratch held only for the call). InsertionSortRaw and MergeSortRaw
// apply the same algorithms to opaque fixed-width records packed in a byte
// buffer.
//
// # Thread Safety
//
// None. All access must be externally serialized; there is no internal
// locking and concurrent mutation is undefined behaviour.
//
// # Error Handling
//
// Search misses return the NotFound sentinel, never an error. Precondition
// violations on the unchecked tier are undefined behaviour, promoted to
// panics under the vecassert build tag. The Checked wrappers validate
// everything and return ErrIndexOutOfRange or ErrReleased. Using an array
// after Release panics; the check is one nil test, not a bounds check per
// element.
package vec
