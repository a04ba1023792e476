package model

import "github.com/comcifs/gocif/value"

// ContainerHandle is satisfied by *Block and *Frame via their embedded
// Container methods. Store operations that apply equally to a data
// block or a save frame (loop/scalar management) are expressed in terms
// of this interface, per spec.md §6.4.
type ContainerHandle interface {
	Code() string
	Loops() []*Loop
	LookupLoop(name string) (*Loop, bool)
	AddLoop(*Loop) error
	SetScalar(name string, v value.Value) error
	GetScalar(name string) (value.Value, bool)
	PruneEmptyLoops()
	Frames() []*Frame
	LookupFrame(code string) (*Frame, bool)
	AddFrame(*Frame) error
}

// Store is the boundary to a persistent back end (spec.md §6.4). This
// module ships exactly one implementation, the in-memory NewMemStore.
// The parser, tokenizer and writer work on CIF values directly through
// the CIF/Block/Frame/Loop methods and do not go through Store.
//
// The store is required to enforce the invariants of spec.md §3 and to
// perform every name-normalization comparison (block/frame/item
// uniqueness) — enforcement here simply delegates to the methods on
// CIF/Block/Frame/Loop, which already implement those invariants.
type Store interface {
	CreateCIF() *CIF
	DestroyCIF(*CIF)

	CreateBlock(cif *CIF, code string) (*Block, error)
	LookupBlock(cif *CIF, code string) (*Block, bool)
	Blocks(cif *CIF) []*Block

	CreateFrame(parent ContainerHandle, code string) (*Frame, error)
	LookupFrame(parent ContainerHandle, code string) (*Frame, bool)
	Frames(parent ContainerHandle) []*Frame

	CreateLoop(c ContainerHandle, category *string, names []string) (*Loop, error)
	LookupLoop(c ContainerHandle, name string) (*Loop, bool)
	Loops(c ContainerHandle) []*Loop
	AddItem(l *Loop, name string) error
	RemoveItem(l *Loop, name string) error

	AddPacket(l *Loop, p Packet) error
	NewIterator(l *Loop) *PacketIterator

	SetScalar(c ContainerHandle, name string, v value.Value) error
	GetScalar(c ContainerHandle, name string) (value.Value, bool)
}

// memStore is the in-memory Store implementation. It holds no state of
// its own: CIF/Block/Frame/Loop already own their data, so memStore is a
// thin, invariant-enforcing façade over their methods (spec.md §9's
// "model the CIF as an owned tree of value types" resolution).
type memStore struct{}

// NewMemStore returns the default, in-memory Store.
func NewMemStore() Store { return memStore{} }

func (memStore) CreateCIF() *CIF { return New() }
func (memStore) DestroyCIF(*CIF) {} // owned tree; Go's GC reclaims it

func (memStore) CreateBlock(cif *CIF, code string) (*Block, error) {
	return cif.CreateBlock(code)
}
func (memStore) LookupBlock(cif *CIF, code string) (*Block, bool) { return cif.LookupBlock(code) }
func (memStore) Blocks(cif *CIF) []*Block                         { return cif.Blocks() }

func (memStore) CreateFrame(parent ContainerHandle, code string) (*Frame, error) {
	f, err := NewFrame(code)
	if err != nil {
		return nil, err
	}
	if err := parent.AddFrame(f); err != nil {
		return nil, err
	}
	return f, nil
}
func (memStore) LookupFrame(parent ContainerHandle, code string) (*Frame, bool) {
	return parent.LookupFrame(code)
}
func (memStore) Frames(parent ContainerHandle) []*Frame { return parent.Frames() }

func (memStore) CreateLoop(c ContainerHandle, category *string, names []string) (*Loop, error) {
	l, err := NewLoop(category, names)
	if err != nil {
		return nil, err
	}
	if err := c.AddLoop(l); err != nil {
		return nil, err
	}
	return l, nil
}
func (memStore) LookupLoop(c ContainerHandle, name string) (*Loop, bool) { return c.LookupLoop(name) }
func (memStore) Loops(c ContainerHandle) []*Loop                         { return c.Loops() }
func (memStore) AddItem(l *Loop, name string) error                      { return l.AddItem(name) }
func (memStore) RemoveItem(l *Loop, name string) error                   { return l.RemoveItem(name) }

func (memStore) AddPacket(l *Loop, p Packet) error   { return l.AddPacket(p) }
func (memStore) NewIterator(l *Loop) *PacketIterator { return newIterator(l) }

func (memStore) SetScalar(c ContainerHandle, name string, v value.Value) error {
	return c.SetScalar(name, v)
}
func (memStore) GetScalar(c ContainerHandle, name string) (value.Value, bool) {
	return c.GetScalar(name)
}
