package dungeon

import (
	"errors"
	"fmt"
)

// ErrContract is wrapped by every error caused by a caller breaking the
// store's ownership rules. The store is never mutated when one is returned.
var ErrContract = errors.New("dungeon: contract violation")

// Handle addresses one Thing slot in the store's arena. The zero Handle is
// None; handles of destroyed things go stale and are rejected.
type Handle struct {
	index uint32
	gen   uint32
}

// Sentinel handles.
var (
	None      = Handle{}
	EndOfList = Handle{index: ^uint32(0)}
)

// Valid reports whether h is neither sentinel.
func (h Handle) Valid() bool {
	return h != None && h != EndOfList
}

func (h Handle) String() string {
	switch h {
	case None:
		return "none"
	case EndOfList:
		return "end"
	}
	return fmt.Sprintf("#%d.%d", h.index, h.gen)
}

type placement int

const (
	placeHeld placement = iota
	placeSquare
)

type slot struct {
	thing Thing
	gen   uint32
	live  bool
	next  Handle
	where placement
	x, y  int
}

// Store is the dungeon level: a fixed grid of squares, each owning a chain of
// Things, plus the arena those Things live in. A Thing is either linked into
// exactly one square chain or held by its owner (a hand or an inventory
// slot); the store tracks which.
type Store struct {
	width   int
	height  int
	squares []Square
	slots   []slot // slots[0] backs None and is never used
	free    []uint32
}

// NewStore creates an all-wall level of the given size.
func NewStore(width, height int) *Store {
	s := &Store{
		width:   width,
		height:  height,
		squares: make([]Square, width*height),
		slots:   make([]slot, 1),
	}
	for i := range s.squares {
		s.squares[i].head = EndOfList
	}
	return s
}

// Width returns the map width in squares.
func (s *Store) Width() int { return s.width }

// Height returns the map height in squares.
func (s *Store) Height() int { return s.height }

// InBounds reports whether (x, y) is a square of the map.
func (s *Store) InBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Square returns the square at (x, y), or nil when out of bounds.
func (s *Store) Square(x, y int) *Square {
	if !s.InBounds(x, y) {
		return nil
	}
	return &s.squares[y*s.width+x]
}

// New allocates a held Thing and returns its handle. The caller owns it until
// it is linked into a square.
func (s *Store) New(t Thing) Handle {
	var idx uint32
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.slots = append(s.slots, slot{})
		idx = uint32(len(s.slots) - 1)
	}
	sl := &s.slots[idx]
	sl.thing = t
	sl.live = true
	sl.next = EndOfList
	sl.where = placeHeld
	return Handle{index: idx, gen: sl.gen}
}

// Add allocates a Thing and links it at the end of the chain of (x, y).
func (s *Store) Add(x, y int, t Thing) (Handle, error) {
	if !s.InBounds(x, y) {
		return None, fmt.Errorf("dungeon: add %s at (%d,%d): out of bounds: %w", t.Kind(), x, y, ErrContract)
	}
	h := s.New(t)
	if err := s.Link(h, x, y, t.Cell); err != nil {
		s.release(h.index)
		return None, err
	}
	return h, nil
}

// Destroy frees a held Thing. Its handle and any copies go stale.
func (s *Store) Destroy(h Handle) error {
	sl, err := s.lookup(h)
	if err != nil {
		return fmt.Errorf("dungeon: destroy %v: %w", h, err)
	}
	if sl.where != placeHeld {
		return fmt.Errorf("dungeon: destroy %v: still linked at (%d,%d): %w", h, sl.x, sl.y, ErrContract)
	}
	s.release(h.index)
	return nil
}

func (s *Store) release(idx uint32) {
	sl := &s.slots[idx]
	*sl = slot{gen: sl.gen + 1}
	s.free = append(s.free, idx)
}

func (s *Store) lookup(h Handle) (*slot, error) {
	if !h.Valid() || int(h.index) >= len(s.slots) {
		return nil, fmt.Errorf("invalid handle: %w", ErrContract)
	}
	sl := &s.slots[h.index]
	if !sl.live || sl.gen != h.gen {
		return nil, fmt.Errorf("stale handle: %w", ErrContract)
	}
	return sl, nil
}

// Thing returns the record behind h, or nil if h is not live. The payload
// pointer may be mutated in place.
func (s *Store) Thing(h Handle) *Thing {
	sl, err := s.lookup(h)
	if err != nil {
		return nil
	}
	return &sl.thing
}

// Location reports where h lives: the square coordinates and true when it is
// linked, or false when it is held.
func (s *Store) Location(h Handle) (x, y int, onSquare bool, err error) {
	sl, err := s.lookup(h)
	if err != nil {
		return 0, 0, false, fmt.Errorf("dungeon: locate %v: %w", h, err)
	}
	if sl.where == placeHeld {
		return 0, 0, false, nil
	}
	return sl.x, sl.y, true, nil
}

// FirstThing returns the head of the chain of (x, y), or EndOfList.
func (s *Store) FirstThing(x, y int) Handle {
	sq := s.Square(x, y)
	if sq == nil {
		return EndOfList
	}
	return sq.head
}

// NextThing returns the Thing after h in its chain, or EndOfList.
func (s *Store) NextThing(h Handle) Handle {
	sl, err := s.lookup(h)
	if err != nil || sl.where != placeSquare {
		return EndOfList
	}
	return sl.next
}

// Things returns the chain of (x, y) in order.
func (s *Store) Things(x, y int) []Handle {
	var out []Handle
	for h := s.FirstThing(x, y); h != EndOfList; h = s.NextThing(h) {
		out = append(out, h)
	}
	return out
}

// Link appends a held Thing to the chain of (x, y) on the given cell.
func (s *Store) Link(h Handle, x, y, cell int) error {
	sl, err := s.lookup(h)
	if err != nil {
		return fmt.Errorf("dungeon: link %v: %w", h, err)
	}
	if sl.where != placeHeld {
		return fmt.Errorf("dungeon: link %v: already linked at (%d,%d): %w", h, sl.x, sl.y, ErrContract)
	}
	sq := s.Square(x, y)
	if sq == nil {
		return fmt.Errorf("dungeon: link %v at (%d,%d): out of bounds: %w", h, x, y, ErrContract)
	}
	s.link(sl, sq, h, x, y, cell)
	return nil
}

func (s *Store) link(sl *slot, sq *Square, h Handle, x, y, cell int) {
	sl.thing.Cell = NormalizeModulo4(cell)
	sl.next = EndOfList
	sl.where = placeSquare
	sl.x, sl.y = x, y
	if sq.head == EndOfList {
		sq.head = h
		return
	}
	tail := sq.head
	for s.slots[tail.index].next != EndOfList {
		tail = s.slots[tail.index].next
	}
	s.slots[tail.index].next = h
}

// Unlink removes h from the chain of (x, y). The Thing becomes held by the
// caller.
func (s *Store) Unlink(h Handle, x, y int) error {
	sl, err := s.lookup(h)
	if err != nil {
		return fmt.Errorf("dungeon: unlink %v: %w", h, err)
	}
	sq := s.Square(x, y)
	if sq == nil || sl.where != placeSquare || sl.x != x || sl.y != y {
		return fmt.Errorf("dungeon: unlink %v: not in chain of (%d,%d): %w", h, x, y, ErrContract)
	}
	s.unlink(sl, sq, h)
	return nil
}

func (s *Store) unlink(sl *slot, sq *Square, h Handle) {
	if sq.head == h {
		sq.head = sl.next
	} else {
		prev := sq.head
		for s.slots[prev.index].next != h {
			prev = s.slots[prev.index].next
		}
		s.slots[prev.index].next = sl.next
	}
	sl.next = EndOfList
	sl.where = placeHeld
	sl.x, sl.y = 0, 0
}

// Move relinks h from the chain of (fromX, fromY) to the end of the chain of
// (toX, toY). Both ends are validated before anything changes.
func (s *Store) Move(h Handle, fromX, fromY, toX, toY, cell int) error {
	sl, err := s.lookup(h)
	if err != nil {
		return fmt.Errorf("dungeon: move %v: %w", h, err)
	}
	from := s.Square(fromX, fromY)
	if from == nil || sl.where != placeSquare || sl.x != fromX || sl.y != fromY {
		return fmt.Errorf("dungeon: move %v: not in chain of (%d,%d): %w", h, fromX, fromY, ErrContract)
	}
	to := s.Square(toX, toY)
	if to == nil {
		return fmt.Errorf("dungeon: move %v to (%d,%d): out of bounds: %w", h, toX, toY, ErrContract)
	}
	s.unlink(sl, from, h)
	s.link(sl, to, h, toX, toY, cell)
	return nil
}

// Take lifts h off the chain of (x, y) so a champion can hold it.
func (s *Store) Take(h Handle, x, y int) error {
	if err := s.Unlink(h, x, y); err != nil {
		return fmt.Errorf("dungeon: take: %w", err)
	}
	return nil
}

// Place puts a held Thing down on the given cell of (x, y).
func (s *Store) Place(h Handle, x, y, cell int) error {
	if err := s.Link(h, x, y, cell); err != nil {
		return fmt.Errorf("dungeon: place: %w", err)
	}
	return nil
}

// FirstOfKind returns the first Thing of kind k on (x, y), or EndOfList.
func (s *Store) FirstOfKind(x, y int, k Kind) Handle {
	for h := s.FirstThing(x, y); h != EndOfList; h = s.NextThing(h) {
		if s.slots[h.index].thing.Kind() == k {
			return h
		}
	}
	return EndOfList
}

// PileTop returns the topmost carriable object lying on the given cell of
// (x, y), or EndOfList. Later links lie on top of earlier ones.
func (s *Store) PileTop(x, y, cell int) Handle {
	top := EndOfList
	cell = NormalizeModulo4(cell)
	for h := s.FirstThing(x, y); h != EndOfList; h = s.NextThing(h) {
		t := &s.slots[h.index].thing
		if t.Cell == cell && IconIndex(t.Payload) != NoIcon {
			top = h
		}
	}
	return top
}

// CheckInvariants walks every chain and verifies that each live Thing is
// either linked exactly once, at the square it records, or held and linked
// nowhere.
func (s *Store) CheckInvariants() error {
	seen := make(map[uint32]int, len(s.slots))
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			steps := 0
			for h := s.FirstThing(x, y); h != EndOfList; h = s.slots[h.index].next {
				sl, err := s.lookup(h)
				if err != nil {
					return fmt.Errorf("dungeon: chain (%d,%d) holds %v: %w", x, y, h, err)
				}
				if sl.where != placeSquare || sl.x != x || sl.y != y {
					return fmt.Errorf("dungeon: %v in chain (%d,%d) records another place: %w", h, x, y, ErrContract)
				}
				seen[h.index]++
				if steps++; steps > len(s.slots) {
					return fmt.Errorf("dungeon: chain (%d,%d) is cyclic: %w", x, y, ErrContract)
				}
			}
		}
	}
	for idx := 1; idx < len(s.slots); idx++ {
		sl := &s.slots[idx]
		if !sl.live {
			continue
		}
		n := seen[uint32(idx)]
		switch {
		case sl.where == placeSquare && n != 1:
			return fmt.Errorf("dungeon: #%d linked %d times: %w", idx, n, ErrContract)
		case sl.where == placeHeld && n != 0:
			return fmt.Errorf("dungeon: held #%d found in a chain: %w", idx, ErrContract)
		}
	}
	return nil
}
