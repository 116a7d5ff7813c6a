package own

// Member is an accessible exclusive owner: Unique plus raw access,
// explicit release and reset. The name keeps its usual role, a struct
// member that owns one of the struct's parts.
//
// Dereferencing the pointer of an empty Member is the caller's contract
// violation; check Get against nil first when emptiness is possible.
type Member[T any] struct {
	Unique[T]
}

// AdoptMember takes exclusive ownership of p. A nil p yields an empty
// wrapper.
func AdoptMember[T any](p *T) *Member[T] {
	return &Member[T]{Unique[T]{p: p}}
}

// Release transfers the held object out of the wrapper and returns it. The
// wrapper is left empty: a later Drop or Reset will not touch the released
// object, and the caller now manages its lifetime.
func (m *Member[T]) Release() *T {
	p := m.p
	m.p = nil
	return p
}

// Reset disposes the currently held object, if any, and adopts p as the
// new exclusively-owned object. Reset(nil) just frees. Resetting to the
// already-held pointer keeps it alive.
func (m *Member[T]) Reset(p *T) {
	old := m.p
	m.p = p
	if old != nil && old != p {
		dispose(old)
	}
}
