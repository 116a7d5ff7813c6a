package own

import "math"

// RefCount is the intrusive reference count behind Counted. Payload types
// embed it; the promoted Refs method is what satisfies the Referent
// capability. A count of zero means the object has not been adopted into
// shared ownership yet, which is distinct from "one owner about to let
// go".
//
// Increments and decrements are plain integer operations. All wrappers
// sharing one object must live on a single owner goroutine or be guarded
// by external locking.
type RefCount struct {
	n int32
}

// Refs returns the count itself, so that embedding RefCount in a payload
// struct promotes the Referent capability onto the payload.
func (r *RefCount) Refs() *RefCount {
	return r
}

// Count reports the current number of sharers.
func (r *RefCount) Count() int32 {
	return r.n
}

func (r *RefCount) inc() {
	if r.n == math.MaxInt32 {
		fault(FaultOverflow, "reference count overflow")
	}
	r.n++
}

func (r *RefCount) dec() int32 {
	if r.n <= 0 {
		fault(FaultUnderflow, "reference count underflow")
	}
	r.n--
	return r.n
}

// Counted shares one object between any number of wrappers and clones it
// lazily: a mutable Get detaches a private copy while the object is
// shared, so mutation through one wrapper is never visible through
// another. The object is disposed exactly once, when its count falls from
// one to zero.
type Counted[T Referent[T]] struct {
	noCopy noCopy
	v      T
}

// AdoptCounted takes p as the wrapper's exclusively held object with a
// count of one. A nil p yields an empty wrapper.
func AdoptCounted[T Referent[T]](p T) *Counted[T] {
	c := &Counted[T]{}
	if !isNil(p) {
		p.Refs().n = 1
		c.v = p
	}
	return c
}

// CountedOf attaches a fresh wrapper to r: see Attach.
func CountedOf[T Referent[T]](r T) *Counted[T] {
	c := &Counted[T]{}
	c.Attach(r)
	return c
}

// Attach releases whatever the wrapper currently holds, then adopts r. An
// r that is not yet under shared ownership (count zero) is cloned and the
// clone held with a count of one; an r that already has sharers is shared
// directly and its count incremented.
func (c *Counted[T]) Attach(r T) {
	c.Drop()
	if isNil(r) {
		return
	}
	if r.Refs().n == 0 {
		cl := r.Clone()
		cl.Refs().n = 1
		c.v = cl
		return
	}
	r.Refs().inc()
	c.v = r
}

// Share returns a new wrapper sharing the held object; the count is
// incremented and nothing is cloned. Sharing an empty wrapper yields an
// empty wrapper.
func (c *Counted[T]) Share() *Counted[T] {
	n := &Counted[T]{}
	if !isNil(c.v) {
		c.v.Refs().inc()
		n.v = c.v
	}
	return n
}

// Assign makes c share rhs's object, releasing the old one first.
// Self-assignment, and assigning a wrapper that already shares the same
// object, are no-ops.
func (c *Counted[T]) Assign(rhs *Counted[T]) {
	if c == rhs {
		return
	}
	if !isNil(c.v) && !isNil(rhs.v) && c.v.Refs() == rhs.v.Refs() {
		return
	}
	c.Drop()
	if !isNil(rhs.v) {
		rhs.v.Refs().inc()
		c.v = rhs.v
	}
}

// Get returns the held object for mutation. If the object currently has
// other sharers, it is cloned first: the original keeps the remaining
// sharers, and the wrapper adopts the private clone with a count of one.
func (c *Counted[T]) Get() T {
	if c == nil {
		var zero T
		return zero
	}
	if !isNil(c.v) && c.v.Refs().n > 1 {
		cl := c.v.Clone()
		c.v.Refs().dec()
		cl.Refs().n = 1
		c.v = cl
	}
	return c.v
}

// Peek returns the held object for read-only use; it never clones. Like
// Drop, it tolerates a nil wrapper.
func (c *Counted[T]) Peek() T {
	if c == nil {
		var zero T
		return zero
	}
	return c.v
}

// Count reports the number of wrappers currently sharing the held object;
// zero for an empty wrapper.
func (c *Counted[T]) Count() int32 {
	if c == nil || isNil(c.v) {
		return 0
	}
	return c.v.Refs().n
}

// Drop releases this wrapper's share. The object is disposed when the
// last sharer lets go; dropping an already-empty wrapper is harmless.
func (c *Counted[T]) Drop() {
	if c == nil || isNil(c.v) {
		return
	}
	v := c.v
	var zero T
	c.v = zero
	if v.Refs().dec() == 0 {
		dispose(v)
	}
}
