package own

// Clonable owns a polymorphic object through its Cloner capability. It has
// the same ownership contract as Value, but copies are produced by the
// object's Clone method, so the most-derived concrete type survives the
// copy. T is typically an interface over a hierarchy of clonable variants.
type Clonable[T Cloner[T]] struct {
	noCopy noCopy
	v      T
}

// ClonableOf clones v and owns the clone.
func ClonableOf[T Cloner[T]](v T) *Clonable[T] {
	if isNil(v) {
		return &Clonable[T]{}
	}
	return &Clonable[T]{v: v.Clone()}
}

// AdoptClonable takes exclusive ownership of v without cloning.
func AdoptClonable[T Cloner[T]](v T) *Clonable[T] {
	c := &Clonable[T]{}
	if !isNil(v) {
		c.v = v
	}
	return c
}

// Get returns the held object without transferring ownership; the zero
// value of T when the wrapper is empty or nil.
func (c *Clonable[T]) Get() T {
	if c == nil {
		var zero T
		return zero
	}
	return c.v
}

// Release transfers the held object out of the wrapper and returns it,
// leaving the wrapper empty.
func (c *Clonable[T]) Release() T {
	v := c.v
	var zero T
	c.v = zero
	return v
}

// Reset disposes the currently held object, if any, and adopts v.
// Resetting to the already-held object keeps it alive.
func (c *Clonable[T]) Reset(v T) {
	old := c.v
	var zero T
	c.v = zero
	if !isNil(v) {
		c.v = v
	}
	if !isNil(old) && !same(old, v) {
		dispose(old)
	}
}

// Clone returns a wrapper owning an independent clone of the held object,
// or an empty wrapper if c is empty.
func (c *Clonable[T]) Clone() *Clonable[T] {
	if isNil(c.v) {
		return &Clonable[T]{}
	}
	return &Clonable[T]{v: c.v.Clone()}
}

// Assign replaces c's object with a clone of rhs's object, or empties c if
// rhs is empty. The clone is taken before the old object is disposed;
// self-assignment is safe.
func (c *Clonable[T]) Assign(rhs *Clonable[T]) {
	if c == rhs {
		return
	}
	var next T
	if !isNil(rhs.v) {
		next = rhs.v.Clone()
	}
	old := c.v
	c.v = next
	if !isNil(old) {
		dispose(old)
	}
}

// Drop disposes the owned object. Dropping twice is harmless.
func (c *Clonable[T]) Drop() {
	if c == nil || isNil(c.v) {
		return
	}
	old := c.v
	var zero T
	c.v = zero
	dispose(old)
}
