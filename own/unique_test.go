package own_test

import (
	"testing"

	"grip/internal/audit"
	"grip/own"
)

func TestUniqueDropDisposesOnce(t *testing.T) {
	ledger := &audit.Ledger{}
	u := own.AdoptUnique(ledger.NewProbe(7))

	if u.Get() == nil {
		t.Fatalf("expected held object, got nil")
	}
	u.Drop()
	if ledger.Disposed() != 1 {
		t.Fatalf("expected 1 disposal, got %d", ledger.Disposed())
	}
	if u.Get() != nil {
		t.Errorf("expected empty wrapper after drop")
	}
}

func TestUniqueDoubleDropIsHarmless(t *testing.T) {
	ledger := &audit.Ledger{}
	u := own.AdoptUnique(ledger.NewProbe(1))

	// Simulates a double-teardown path: the second drop must find the
	// nulled pointer and free nothing.
	u.Drop()
	u.Drop()

	if ledger.Disposed() != 1 {
		t.Errorf("expected exactly 1 disposal, got %d", ledger.Disposed())
	}
	if ledger.DoubleDisposals() != 0 {
		t.Errorf("object freed twice: %d double disposals", ledger.DoubleDisposals())
	}
}

func TestUniqueNilWrapper(t *testing.T) {
	var u *own.Unique[audit.Probe]
	u.Drop()
	if u.Get() != nil {
		t.Fatalf("nil wrapper returned a pointer")
	}
}

func TestUniqueAdoptNil(t *testing.T) {
	u := own.AdoptUnique[audit.Probe](nil)
	if u.Get() != nil {
		t.Fatalf("expected empty wrapper")
	}
	u.Drop() // no-op
}
