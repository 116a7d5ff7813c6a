package own

// Value owns a deep copy of whatever it is constructed or assigned from:
// the held object is never shared with the source. Wrapper copies go
// through Clone and Assign; plain struct assignment is forbidden by the
// embedded noCopy marker.
type Value[T Copier[T]] struct {
	Member[T]
}

// ValueOf deep-copies v and owns the copy.
func ValueOf[T Copier[T]](v T) *Value[T] {
	c := v.Copy()
	return &Value[T]{Member[T]{Unique[T]{p: &c}}}
}

// AdoptValue takes exclusive ownership of p without copying. A nil p
// yields an empty wrapper.
func AdoptValue[T Copier[T]](p *T) *Value[T] {
	return &Value[T]{Member[T]{Unique[T]{p: p}}}
}

// Clone returns a wrapper owning an independent deep copy of the held
// object, or an empty wrapper if v is empty.
func (v *Value[T]) Clone() *Value[T] {
	if v.p == nil {
		return &Value[T]{}
	}
	c := (*v.p).Copy()
	return &Value[T]{Member[T]{Unique[T]{p: &c}}}
}

// Assign replaces v's object with a deep copy of rhs's object, or empties
// v if rhs is empty. The copy is taken before the old object is disposed,
// so there is no transient aliasing and self-assignment is safe.
func (v *Value[T]) Assign(rhs *Value[T]) {
	if v == rhs {
		return
	}
	var next *T
	if rhs.p != nil {
		c := (*rhs.p).Copy()
		next = &c
	}
	old := v.p
	v.p = next
	if old != nil {
		dispose(old)
	}
}

// Equal reports whether both wrappers are empty, or both hold objects that
// compare equal by value.
func (v *Value[T]) Equal(rhs *Value[T]) bool {
	if v.p == nil || rhs.p == nil {
		return v.p == nil && rhs.p == nil
	}
	return (*v.p).Equal(*rhs.p)
}
