package own

import "reflect"

// Disposer is implemented by payloads that hold resources needing
// deterministic teardown. A wrapper invokes Dispose exactly once per owned
// object at the moment it frees that object; payloads without the method
// are simply left to the garbage collector.
type Disposer interface {
	Dispose()
}

// Copier is the capability Value requires of its payload: copy
// construction plus value equality.
type Copier[T any] interface {
	Copy() T
	Equal(T) bool
}

// Cloner is the capability Clonable and Counted require: a deep copy that
// preserves the concrete runtime type of the receiver. T is usually an
// interface type or a pointer to a concrete type.
type Cloner[T any] interface {
	Clone() T
}

// Referent is the capability Counted requires: Cloner plus access to the
// intrusive reference count. Payload types implement Refs by embedding
// RefCount.
type Referent[T any] interface {
	Cloner[T]
	Refs() *RefCount
}

// dispose runs the payload's Disposer hook, if it has one.
func dispose(v any) {
	if d, ok := v.(Disposer); ok {
		d.Dispose()
	}
}

// same reports whether a and b are the same object: equal pointers for
// pointer-shaped values. Value-shaped payloads are never the same object,
// and no dynamic type is required to be comparable.
func same(a, b any) bool {
	ra := reflect.ValueOf(a)
	rb := reflect.ValueOf(b)
	if ra.Kind() != rb.Kind() {
		return false
	}
	switch ra.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.Map, reflect.Func, reflect.UnsafePointer:
		return ra.Pointer() == rb.Pointer()
	default:
		return false
	}
}

// isNil reports whether v is nil, including a typed nil pointer stored in
// an interface-typed wrapper slot.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
