package vec

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange reports an index outside the valid range for the
	// attempted operation.
	ErrIndexOutOfRange = errors.New("vec: index out of range")

	// ErrReleased reports an operation on an array after Release.
	ErrReleased = errors.New("vec: use after Release()")
)

// CheckedOwning wraps an Owning array with the validation its fast paths
// deliberately skip: every index and lifecycle precondition is checked and
// violations come back as structured errors instead of undefined behaviour.
// All operations resize as needed. Use Unchecked to reach the rest of the
// raw API once inputs are trusted.
type CheckedOwning[T comparable] struct {
	a *Owning[T]
}

// NewCheckedOwning creates a checked owning array with max(capacity, 1)
// slots. A nil lifecycle behaves as NopLifecycle.
func NewCheckedOwning[T comparable](capacity int, lc Lifecycle[T]) *CheckedOwning[T] {
	return &CheckedOwning[T]{a: NewOwning[T](capacity, lc)}
}

// Unchecked returns the wrapped array.
func (c *CheckedOwning[T]) Unchecked() *Owning[T] { return c.a }

// Len returns the number of live elements.
func (c *CheckedOwning[T]) Len() int { return c.a.Len() }

// Cap returns the number of allocated slots.
func (c *CheckedOwning[T]) Cap() int { return c.a.Cap() }

// Append appends x, growing the buffer as needed.
func (c *CheckedOwning[T]) Append(x T) error {
	if c.a.buf == nil {
		return ErrReleased
	}
	c.a.AppendWithResize(x)
	return nil
}

// InsertAt inserts x at index i after validating 0 <= i <= Len().
func (c *CheckedOwning[T]) InsertAt(x T, i int) error {
	if c.a.buf == nil {
		return ErrReleased
	}
	if i < 0 || i > c.a.count {
		return fmt.Errorf("%w: insert at %d, length %d", ErrIndexOutOfRange, i, c.a.count)
	}
	c.a.InsertAt(x, i)
	return nil
}

// RemoveAt removes the element at i after validating 0 <= i < Len().
func (c *CheckedOwning[T]) RemoveAt(i int) error {
	if err := c.check(i); err != nil {
		return err
	}
	c.a.RemoveAt(i)
	return nil
}

// FastRemoveAt removes the element at i without preserving order, after
// validating 0 <= i < Len().
func (c *CheckedOwning[T]) FastRemoveAt(i int) error {
	if err := c.check(i); err != nil {
		return err
	}
	c.a.FastRemoveAt(i)
	return nil
}

// Swap exchanges the elements at i and j after validating both indices.
func (c *CheckedOwning[T]) Swap(i, j int) error {
	if err := c.check(i); err != nil {
		return err
	}
	if err := c.check(j); err != nil {
		return err
	}
	c.a.buf[i], c.a.buf[j] = c.a.buf[j], c.a.buf[i]
	return nil
}

// At returns the element at i after validating 0 <= i < Len().
func (c *CheckedOwning[T]) At(i int) (T, error) {
	if err := c.check(i); err != nil {
		var zero T
		return zero, err
	}
	return c.a.buf[i], nil
}

// Clear releases every element and resets the count.
func (c *CheckedOwning[T]) Clear() error {
	if c.a.buf == nil {
		return ErrReleased
	}
	c.a.Clear()
	return nil
}

// Release releases every element and drops the buffer. Unlike the raw
// array, operations after Release return ErrReleased rather than
// panicking.
func (c *CheckedOwning[T]) Release() { c.a.Release() }

func (c *CheckedOwning[T]) check(i int) error {
	if c.a.buf == nil {
		return ErrReleased
	}
	if i < 0 || i >= c.a.count {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, c.a.count)
	}
	return nil
}

// CheckedValues is the validating tier over a Values array, mirroring
// CheckedOwning for the no-ownership variant.
type CheckedValues[T comparable] struct {
	v *Values[T]
}

// NewCheckedValues creates a checked value array with max(capacity, 1)
// slots.
func NewCheckedValues[T comparable](capacity int) *CheckedValues[T] {
	return &CheckedValues[T]{v: NewValues[T](capacity)}
}

// Unchecked returns the wrapped array.
func (c *CheckedValues[T]) Unchecked() *Values[T] { return c.v }

// Len returns the number of live elements.
func (c *CheckedValues[T]) Len() int { return c.v.Len() }

// Cap returns the number of allocated slots.
func (c *CheckedValues[T]) Cap() int { return c.v.Cap() }

// Append appends x, growing the buffer as needed.
func (c *CheckedValues[T]) Append(x T) error {
	if c.v.buf == nil {
		return ErrReleased
	}
	c.v.AppendWithResize(x)
	return nil
}

// InsertAt inserts x at index i, growing the buffer as needed, after
// validating 0 <= i <= Len().
func (c *CheckedValues[T]) InsertAt(x T, i int) error {
	if c.v.buf == nil {
		return ErrReleased
	}
	if i < 0 || i > c.v.count {
		return fmt.Errorf("%w: insert at %d, length %d", ErrIndexOutOfRange, i, c.v.count)
	}
	c.v.InsertAtWithResize(x, i)
	return nil
}

// RemoveAt removes the element at i after validating 0 <= i < Len().
func (c *CheckedValues[T]) RemoveAt(i int) error {
	if err := c.check(i); err != nil {
		return err
	}
	c.v.RemoveAt(i)
	return nil
}

// FastRemoveAt removes the element at i without preserving order, after
// validating 0 <= i < Len().
func (c *CheckedValues[T]) FastRemoveAt(i int) error {
	if err := c.check(i); err != nil {
		return err
	}
	c.v.FastRemoveAt(i)
	return nil
}

// Swap exchanges the values at i and j after validating both indices.
func (c *CheckedValues[T]) Swap(i, j int) error {
	if err := c.check(i); err != nil {
		return err
	}
	if err := c.check(j); err != nil {
		return err
	}
	c.v.buf[i], c.v.buf[j] = c.v.buf[j], c.v.buf[i]
	return nil
}

// At returns the element at i after validating 0 <= i < Len().
func (c *CheckedValues[T]) At(i int) (T, error) {
	if err := c.check(i); err != nil {
		var zero T
		return zero, err
	}
	return c.v.buf[i], nil
}

// Clear resets the count to zero.
func (c *CheckedValues[T]) Clear() error {
	if c.v.buf == nil {
		return ErrReleased
	}
	c.v.Clear()
	return nil
}

// Release drops the buffer. Operations after Release return ErrReleased
// rather than panicking.
func (c *CheckedValues[T]) Release() { c.v.Release() }

func (c *CheckedValues[T]) check(i int) error {
	if c.v.buf == nil {
		return ErrReleased
	}
	if i < 0 || i >= c.v.count {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, c.v.count)
	}
	return nil
}
