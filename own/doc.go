// Package own provides ownership wrappers for objects whose lifecycle must
// be managed explicitly: exclusive owners with guaranteed one-shot disposal,
// deep-copy-on-copy owners, a shared copy-on-write owner backed by an
// intrusive reference count, and a resizable array of exclusively-owned
// slots.
//
// The package is single-threaded by contract. No wrapper synchronizes
// access to its pointer or count; every wrapper sharing one object must be
// manipulated from a single owner goroutine or under external locking.
// Shared ownership is acyclic-only: nothing here detects or breaks
// reference cycles.
//
// Contract violations (out-of-range slot index, count underflow) trap with
// a *Fault panic rather than returning an error; they are programmer
// errors, not runtime conditions.
package own
