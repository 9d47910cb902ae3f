package builder

import (
	"time"

	"gridforge/internal/engine"
)

// PlacedPart is one committed placement. The object reference is soft: the
// external timed-destruction service can remove the object while the record
// still exists, so every disposal path checks liveness first.
type PlacedPart struct {
	Object      *engine.GameObject
	Proto       string
	Frame       Frame
	RotationDeg float32
	PlacedAt    time.Time

	valid bool
}

// Valid reports whether the record has not been destroyed yet.
func (p *PlacedPart) Valid() bool {
	return p.valid
}

// destroy invalidates the record and hands the object to dispose, once.
// Safe to call on an already destroyed record.
func (p *PlacedPart) destroy(dispose func(*PlacedPart)) {
	if !p.valid {
		return
	}
	p.valid = false
	dispose(p)
}

// Ledger is the insertion-ordered history of committed placements. Undo
// removes the tail only; the sequence never reorders.
type Ledger struct {
	records []*PlacedPart
}

func (l *Ledger) Append(obj *engine.GameObject, proto string, frame Frame, rotationDeg float32) *PlacedPart {
	rec := &PlacedPart{
		Object:      obj,
		Proto:       proto,
		Frame:       frame,
		RotationDeg: rotationDeg,
		PlacedAt:    time.Now(),
		valid:       true,
	}
	l.records = append(l.records, rec)
	return rec
}

// Undo destroys the most recent record. No-op on an empty ledger.
func (l *Ledger) Undo(dispose func(*PlacedPart)) (*PlacedPart, bool) {
	n := len(l.records)
	if n == 0 {
		return nil, false
	}
	rec := l.records[n-1]
	l.records = l.records[:n-1]
	rec.destroy(dispose)
	return rec, true
}

// Clear destroys every record, oldest first.
func (l *Ledger) Clear(dispose func(*PlacedPart)) {
	for _, rec := range l.records {
		rec.destroy(dispose)
	}
	l.records = nil
}

func (l *Ledger) Len() int {
	return len(l.records)
}

// Records returns the live history, oldest first. Callers must not mutate.
func (l *Ledger) Records() []*PlacedPart {
	return l.records
}
