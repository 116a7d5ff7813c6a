// Package audit provides instrumented payload types and a disposal ledger
// for exercising the ownership wrappers in tests and stress runs.
package audit

import "fmt"

// Ledger tallies payload lifecycles: objects created, objects disposed,
// and disposals that arrived twice for the same object. A Ledger and the
// payloads attached to it are confined to one goroutine.
type Ledger struct {
	created  int
	disposed int
	double   int
}

// Created reports how many payloads were created against the ledger.
func (l *Ledger) Created() int {
	return l.created
}

// Disposed reports how many payloads have been disposed.
func (l *Ledger) Disposed() int {
	return l.disposed
}

// Live reports the number of payloads created but not yet disposed.
func (l *Ledger) Live() int {
	return l.created - l.disposed
}

// DoubleDisposals reports how many disposals hit an already-disposed
// payload.
func (l *Ledger) DoubleDisposals() int {
	return l.double
}

// LeakCheck returns an error when payloads are still alive or a payload
// was disposed more than once.
func (l *Ledger) LeakCheck() error {
	if l.double > 0 {
		return fmt.Errorf("double disposal detected: %d objects disposed twice", l.double)
	}
	if live := l.Live(); live > 0 {
		return fmt.Errorf("leak detected: %d objects still alive", live)
	}
	return nil
}
