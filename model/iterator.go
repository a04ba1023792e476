package model

import "github.com/comcifs/gocif/value"

// IteratorState is the packet iterator's lifecycle state (spec.md §4.5).
type IteratorState uint8

const (
	IterNew IteratorState = iota
	IterIterated
	IterRemoved
	IterFinished
)

// PacketIterator provides sequential forward access to a loop's
// packets, with an exclusive-borrow contract: while one is open for a
// loop, other access to that loop has undefined outcome (spec.md §4.5,
// §9). Rollback via Abort is always supported by the in-memory store,
// which journals the loop's packet slice at open time and restores it.
type PacketIterator struct {
	loop  *Loop
	state IteratorState

	pos int // index of the current (ITERATED) packet

	// snapshot is the loop's packet slice at iterator-open time, used to
	// implement Abort. It is only ever read from, never mutated in
	// place, so cloning once up front is sufficient.
	snapshot []Packet
}

func newIterator(l *Loop) *PacketIterator {
	snap := make([]Packet, len(l.packets))
	for i, p := range l.packets {
		snap[i] = p.Clone()
	}
	return &PacketIterator{loop: l, state: IterNew, pos: -1, snapshot: snap}
}

// NewIterator opens a packet iterator directly over the in-memory
// representation of l (equivalent to NewMemStore().NewIterator(l)).
func NewIterator(l *Loop) *PacketIterator { return newIterator(l) }

// State returns the iterator's current lifecycle state.
func (it *PacketIterator) State() IteratorState { return it.state }

// Next advances the iterator. From NEW, ITERATED or REMOVED it moves to
// ITERATED and returns the next packet (a borrowed reference's copy, by
// value) with ok=true, or to FINISHED with ok=false when no packet
// remains.
func (it *PacketIterator) Next() (p Packet, ok bool) {
	if it.state == IterFinished {
		return Packet{}, false
	}
	it.pos++
	if it.pos >= len(it.loop.packets) {
		it.state = IterFinished
		return Packet{}, false
	}
	it.state = IterIterated
	return it.loop.packets[it.pos], true
}

// Update applies a partial packet replacement onto the current row:
// items present in partial overwrite the corresponding value; items not
// mentioned are left unchanged. Valid only in ITERATED; an item name not
// declared by the loop is an error.
func (it *PacketIterator) Update(partial Packet) error {
	if it.state != IterIterated {
		return ErrIteratorState
	}
	for _, n := range partial.Names() {
		if !it.loop.HasName(n) {
			return ErrInvalidPacket
		}
	}
	row := it.loop.packets[it.pos]
	for _, n := range partial.Names() {
		v, _ := partial.Get(n)
		row.Set(n, v)
	}
	it.loop.packets[it.pos] = row
	return nil
}

// UpdateItem is a convenience single-item form of Update.
func (it *PacketIterator) UpdateItem(name string, v value.Value) error {
	p := NewPacket()
	p.Set(name, v)
	return it.Update(p)
}

// Remove deletes the current row and transitions to REMOVED. Valid only
// in ITERATED.
func (it *PacketIterator) Remove() error {
	if it.state != IterIterated {
		return ErrIteratorState
	}
	it.loop.packets = append(it.loop.packets[:it.pos], it.loop.packets[it.pos+1:]...)
	it.pos--
	it.state = IterRemoved
	return nil
}

// Close commits every pending update and remove (which, in the
// in-memory store, have already been applied in place) and releases the
// iterator. After Close the iterator must not be used.
func (it *PacketIterator) Close() error {
	it.state = IterFinished
	it.snapshot = nil
	return nil
}

// Abort attempts to revert every update and remove made through this
// iterator back to the state at the time it was opened. The in-memory
// store always supports this (it journaled a snapshot at open time); a
// Store backed by a non-transactional persistence layer may return
// ErrNotSupported instead (spec.md §4.5, §9 Open Question 2).
func (it *PacketIterator) Abort() error {
	it.loop.packets = it.snapshot
	it.state = IterFinished
	it.snapshot = nil
	return nil
}
