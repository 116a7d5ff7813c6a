package own

// Unique is the sole owner of an object: Drop disposes it exactly once.
// The zero value owns nothing. Unique is not copyable and not assignable;
// ownership leaves it only through destruction (or, for the accessible
// variant, Release).
type Unique[T any] struct {
	noCopy noCopy
	p      *T
}

// AdoptUnique takes exclusive ownership of p. A nil p yields an empty
// wrapper.
func AdoptUnique[T any](p *T) *Unique[T] {
	return &Unique[T]{p: p}
}

// Get returns the held pointer without transferring ownership. Like Drop,
// it tolerates a nil wrapper.
func (u *Unique[T]) Get() *T {
	if u == nil {
		return nil
	}
	return u.p
}

// Drop disposes the owned object. The internal pointer is nulled before
// the payload hook runs, so a second teardown path finds nothing to free:
// dropping twice is harmless (lazily constructed singletons can be torn
// down from more than one code path).
func (u *Unique[T]) Drop() {
	if u == nil || u.p == nil {
		return
	}
	p := u.p
	u.p = nil
	dispose(p)
}
