package own

// Slots is a fixed-size run of Member slots, each independently owning at
// most one object; no object is ever referenced by two slots. The
// container is deliberately not copyable: copying would force a policy
// choice between deep copy and sharing that it refuses to make.
type Slots[T any] struct {
	noCopy noCopy
	slots  []Member[T]
}

// NewSlots returns a container with size empty slots. A negative size is a
// contract violation.
func NewSlots[T any](size int) *Slots[T] {
	if size < 0 {
		fault(FaultNegativeSize, "negative slot count %d", size)
	}
	return &Slots[T]{slots: make([]Member[T], size)}
}

// At returns the slot at index. Indexing outside [0, Len) is a contract
// violation and faults; it is not a recoverable condition.
func (s *Slots[T]) At(index int) *Member[T] {
	if index < 0 || index >= len(s.slots) {
		fault(FaultOutOfBounds, "slot index %d out of bounds for length %d", index, len(s.slots))
	}
	return &s.slots[index]
}

// Len reports the current slot count.
func (s *Slots[T]) Len() int {
	return len(s.slots)
}

// Resize replaces the backing array with one of newSize slots. For every
// index present in both arrays, ownership transfers from the old slot to
// the new one: the same object, released from one side and adopted by the
// other, never duplicated. Old slots beyond newSize dispose their objects;
// new slots beyond the old size start empty.
func (s *Slots[T]) Resize(newSize int) {
	if newSize < 0 {
		fault(FaultNegativeSize, "negative slot count %d", newSize)
	}
	next := make([]Member[T], newSize)
	for i := 0; i < len(s.slots) && i < newSize; i++ {
		next[i].Reset(s.slots[i].Release())
	}
	for i := newSize; i < len(s.slots); i++ {
		s.slots[i].Drop()
	}
	s.slots = next
}

// Drop disposes every object still held, in reverse slot order, and
// empties the container.
func (s *Slots[T]) Drop() {
	for i := len(s.slots) - 1; i >= 0; i-- {
		s.slots[i].Drop()
	}
	s.slots = nil
}
