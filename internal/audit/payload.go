package audit

import (
	"bytes"

	"grip/own"
)

// Probe is the payload for the exclusive and shared wrappers. It embeds
// the intrusive count, reports every disposal to its ledger, and carries a
// mutable body so tests can observe copy independence.
type Probe struct {
	own.RefCount
	ledger   *Ledger
	disposed bool
	Body     int
}

// NewProbe creates a live probe tracked by the ledger.
func (l *Ledger) NewProbe(body int) *Probe {
	l.created++
	return &Probe{ledger: l, Body: body}
}

// Dispose implements own.Disposer.
func (p *Probe) Dispose() {
	if p.disposed {
		p.ledger.double++
		return
	}
	p.disposed = true
	p.ledger.disposed++
}

// Disposed reports whether the probe has been disposed.
func (p *Probe) Disposed() bool {
	return p.disposed
}

// Clone implements own.Cloner. The clone is a fresh live object with the
// same body and a zero count.
func (p *Probe) Clone() *Probe {
	return p.ledger.NewProbe(p.Body)
}

// Blob is the payload for the deep-copy wrapper: Copy and Equal work on
// the value, disposal still reports to the ledger.
type Blob struct {
	ledger   *Ledger
	disposed bool
	Data     []byte
}

// NewBlob creates a live blob tracked by the ledger.
func (l *Ledger) NewBlob(data string) Blob {
	l.created++
	return Blob{ledger: l, Data: []byte(data)}
}

// Copy implements own.Copier with an independent copy of the data.
func (b Blob) Copy() Blob {
	b.ledger.created++
	return Blob{ledger: b.ledger, Data: append([]byte(nil), b.Data...)}
}

// Equal implements own.Copier by comparing the data bytes.
func (b Blob) Equal(rhs Blob) bool {
	return bytes.Equal(b.Data, rhs.Data)
}

// Dispose implements own.Disposer.
func (b *Blob) Dispose() {
	if b.disposed {
		b.ledger.double++
		return
	}
	b.disposed = true
	b.ledger.disposed++
}

// Disposed reports whether the blob has been disposed.
func (b *Blob) Disposed() bool {
	return b.disposed
}

// Part is a polymorphic payload family for the clone-based wrapper. Every
// variant clones to its own concrete type behind the interface.
type Part interface {
	Clone() Part
	Kind() string
}

// Gear is a Part variant.
type Gear struct {
	ledger   *Ledger
	disposed bool
	Teeth    int
}

// NewGear creates a live gear tracked by the ledger.
func (l *Ledger) NewGear(teeth int) *Gear {
	l.created++
	return &Gear{ledger: l, Teeth: teeth}
}

// Kind implements Part.
func (g *Gear) Kind() string { return "gear" }

// Clone implements Part.
func (g *Gear) Clone() Part {
	return g.ledger.NewGear(g.Teeth)
}

// Dispose implements own.Disposer.
func (g *Gear) Dispose() {
	if g.disposed {
		g.ledger.double++
		return
	}
	g.disposed = true
	g.ledger.disposed++
}

// Disposed reports whether the gear has been disposed.
func (g *Gear) Disposed() bool {
	return g.disposed
}

// Axle is a Part variant.
type Axle struct {
	ledger   *Ledger
	disposed bool
	Length   int
}

// NewAxle creates a live axle tracked by the ledger.
func (l *Ledger) NewAxle(length int) *Axle {
	l.created++
	return &Axle{ledger: l, Length: length}
}

// Kind implements Part.
func (a *Axle) Kind() string { return "axle" }

// Clone implements Part.
func (a *Axle) Clone() Part {
	return a.ledger.NewAxle(a.Length)
}

// Dispose implements own.Disposer.
func (a *Axle) Dispose() {
	if a.disposed {
		a.ledger.double++
		return
	}
	a.disposed = true
	a.ledger.disposed++
}

// Disposed reports whether the axle has been disposed.
func (a *Axle) Disposed() bool {
	return a.disposed
}
