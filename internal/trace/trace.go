// Package trace records ownership transitions during stress runs as a
// msgpack stream, and validates recorded streams for lifecycle
// consistency.
package trace

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"
)

// Op identifies the kind of recorded ownership transition.
type Op uint8

const (
	OpAdopt Op = iota + 1
	OpShare
	OpCOWClone
	OpRelease
	OpDispose
	OpResize
)

// String returns the op's wire-stable label.
func (o Op) String() string {
	switch o {
	case OpAdopt:
		return "adopt"
	case OpShare:
		return "share"
	case OpCOWClone:
		return "cow-clone"
	case OpRelease:
		return "release"
	case OpDispose:
		return "dispose"
	case OpResize:
		return "resize"
	default:
		return "unknown"
	}
}

// Current schema version - increment when the record format changes.
const SchemaVersion uint16 = 1

const streamMagic = "griptrace"

type header struct {
	Magic  string `msgpack:"magic"`
	Schema uint16 `msgpack:"schema"`
}

// Event is one recorded ownership transition. Object identifies the
// payload across its lifetime; for OpResize it is unused and Sharers
// carries the new slot count.
type Event struct {
	Seq      uint64 `msgpack:"seq"`
	Scenario string `msgpack:"scenario"`
	Op       Op     `msgpack:"op"`
	Object   uint64 `msgpack:"object"`
	Sharers  int32  `msgpack:"sharers"`
}

// Recorder appends events to a msgpack stream. It is safe for concurrent
// use; scenarios running in parallel share one recorder behind its lock.
// A nil *Recorder discards everything.
type Recorder struct {
	mu  sync.Mutex
	f   *os.File
	enc *msgpack.Encoder
	seq uint64
	err error
}

// Create opens path for writing and emits the stream header.
func Create(path string) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace file: %w", err)
	}
	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(header{Magic: streamMagic, Schema: SchemaVersion}); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to write trace header: %w", err)
	}
	return &Recorder{f: f, enc: enc}, nil
}

// Record appends one event. Encoding errors are sticky and surface from
// Close.
func (r *Recorder) Record(scenarioName string, op Op, object uint64, sharers int) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return
	}
	n, err := safecast.Conv[int32](sharers)
	if err != nil {
		r.err = fmt.Errorf("sharer count out of range: %w", err)
		return
	}
	r.seq++
	ev := Event{Seq: r.seq, Scenario: scenarioName, Op: op, Object: object, Sharers: n}
	if err := r.enc.Encode(&ev); err != nil {
		r.err = fmt.Errorf("failed to encode trace event: %w", err)
	}
}

// Close closes the stream and reports any sticky encoding error.
func (r *Recorder) Close() error {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	closeErr := r.f.Close()
	if r.err != nil {
		return r.err
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close trace file: %w", closeErr)
	}
	return nil
}

// ReadFile loads all events from a recorded stream, checking the header.
func ReadFile(path string) ([]Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace file: %w", err)
	}
	defer f.Close()

	dec := msgpack.NewDecoder(f)
	var h header
	if err := dec.Decode(&h); err != nil {
		return nil, fmt.Errorf("failed to read trace header: %w", err)
	}
	if h.Magic != streamMagic {
		return nil, fmt.Errorf("not a grip trace file: bad magic %q", h.Magic)
	}
	if h.Schema != SchemaVersion {
		return nil, fmt.Errorf("unsupported trace schema %d (want %d)", h.Schema, SchemaVersion)
	}

	var events []Event
	for {
		var ev Event
		if err := dec.Decode(&ev); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to decode trace event: %w", err)
		}
		events = append(events, ev)
	}
	return events, nil
}

// Validate checks per-object lifecycle consistency across the stream:
// every object is adopted before any other event touches it, disposed at
// most once per adoption, and every adopted object is disposed by the end.
func Validate(events []Event) error {
	type state struct {
		adopted  bool
		disposed bool
	}
	objs := make(map[uint64]*state)
	var lastSeq uint64
	for _, ev := range events {
		if ev.Seq <= lastSeq {
			return fmt.Errorf("event %d: sequence not increasing", ev.Seq)
		}
		lastSeq = ev.Seq
		if ev.Sharers < 0 {
			return fmt.Errorf("event %d: negative sharer count %d", ev.Seq, ev.Sharers)
		}
		if ev.Op == OpResize {
			continue
		}
		st := objs[ev.Object]
		if st == nil {
			st = &state{}
			objs[ev.Object] = st
		}
		switch ev.Op {
		case OpAdopt:
			if st.adopted && !st.disposed {
				return fmt.Errorf("event %d: object %d adopted twice", ev.Seq, ev.Object)
			}
			st.adopted = true
			st.disposed = false
		case OpDispose:
			if !st.adopted {
				return fmt.Errorf("event %d: object %d disposed before adoption", ev.Seq, ev.Object)
			}
			if st.disposed {
				return fmt.Errorf("event %d: object %d disposed twice", ev.Seq, ev.Object)
			}
			st.disposed = true
		case OpShare, OpCOWClone, OpRelease:
			if !st.adopted || st.disposed {
				return fmt.Errorf("event %d: %s on object %d outside its lifetime", ev.Seq, ev.Op, ev.Object)
			}
		default:
			return fmt.Errorf("event %d: unknown op %d", ev.Seq, ev.Op)
		}
	}

	leaked := 0
	for _, st := range objs {
		if st.adopted && !st.disposed {
			leaked++
		}
	}
	if leaked > 0 {
		return fmt.Errorf("trace leak: %d objects never disposed", leaked)
	}
	return nil
}
