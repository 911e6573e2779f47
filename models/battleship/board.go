package battleship

import (
	cerr "github.com/som1414/sea-battle/internal/error"
)

type ShotOutcome uint8

const (
	ShotMiss ShotOutcome = iota
	ShotHit
	ShotSunk
)

func (o ShotOutcome) String() string {
	switch o {
	case ShotMiss:
		return "Miss"
	case ShotHit:
		return "Hit"
	case ShotSunk:
		return "Sunk"
	default:
		return "Unknown"
	}
}

// BoardView is the part of a board the opponent is allowed to look at.
type BoardView interface {
	Size() int
	Out(d Dot) bool
	Cell(d Dot) CellState
	IsFired(d Dot) bool

	// Shots in the order they were fired, oldest first.
	Shots() []Dot
}

type Board struct {
	size   int
	grid   Grid
	ships  []*Ship
	shipAt map[Dot]*Ship

	// Ship cells plus their adjacency buffers; gates placement.
	reserved map[Dot]struct{}

	// Shot cells plus buffers revealed around sunken ships; gates shots.
	fired map[Dot]struct{}
	shots []Dot

	sunk    int
	hit     bool
	hidden  bool
	started bool
}

var _ BoardView = (*Board)(nil)

func NewBoard(size int) *Board {
	return &Board{
		size:     size,
		grid:     NewGrid(size),
		ships:    make([]*Ship, 0),
		shipAt:   make(map[Dot]*Ship),
		reserved: make(map[Dot]struct{}),
		fired:    make(map[Dot]struct{}),
		shots:    make([]Dot, 0),
	}
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) Out(d Dot) bool {
	return !(d.X >= 0 && d.X < b.size && d.Y >= 0 && d.Y < b.size)
}

func (b *Board) Cell(d Dot) CellState {
	return b.grid.At(d)
}

func (b *Board) IsFired(d Dot) bool {
	_, prs := b.fired[d]
	return prs
}

func (b *Board) IsReserved(d Dot) bool {
	_, prs := b.reserved[d]
	return prs
}

func (b *Board) Shots() []Dot {
	shots := make([]Dot, len(b.shots))
	copy(shots, b.shots)
	return shots
}

func (b *Board) Ships() []*Ship {
	ships := make([]*Ship, len(b.ships))
	copy(ships, b.ships)
	return ships
}

func (b *Board) SunkenShips() int {
	return b.sunk
}

// LastShotWasHit reports whether the latest shot wounded a ship
// without sinking it.
func (b *Board) LastShotWasHit() bool {
	return b.hit
}

func (b *Board) Hidden() bool {
	return b.hidden
}

func (b *Board) SetHidden(hidden bool) {
	b.hidden = hidden
}

// AddShip places the ship or returns an error wrapping
// cerr.ErrInvalidPlacement and leaves the board untouched.
func (b *Board) AddShip(ship *Ship) error {
	if b.started {
		return cerr.ErrBoardInPlay()
	}
	if ship.Length() < 1 {
		return cerr.ErrShipLengthInvalid(ship.Length())
	}

	dots := ship.Dots()
	for _, d := range dots {
		if b.Out(d) {
			return cerr.ErrShipOutOfGridBound(d.X, d.Y)
		}
		if b.IsReserved(d) {
			return cerr.ErrShipPositionTaken(d.X, d.Y)
		}
	}

	for _, d := range dots {
		b.grid.set(d, CellShip)
		b.reserved[d] = struct{}{}
		b.shipAt[d] = ship
	}
	b.ships = append(b.ships, ship)

	for _, d := range b.contour(ship) {
		b.reserved[d] = struct{}{}
	}
	return nil
}

// Begin closes placement. Only shots mutate the board afterwards.
func (b *Board) Begin() {
	b.started = true
}

func (b *Board) Started() bool {
	return b.started
}

// ValidateAndFire is the entry point for shots coming from outside
// the computer's strategy.
func (b *Board) ValidateAndFire(d Dot) (ShotOutcome, error) {
	if b.Out(d) {
		return ShotMiss, cerr.ErrXorYOutOfGridBound(d.X, d.Y)
	}
	if b.IsFired(d) {
		return ShotMiss, cerr.ErrAttackPositionAlreadyFilled(d.X, d.Y)
	}
	return b.Fire(d), nil
}

// Fire resolves a shot at a dot known to be in bounds and not fired yet.
func (b *Board) Fire(d Dot) ShotOutcome {
	b.fired[d] = struct{}{}
	b.shots = append(b.shots, d)

	ship, prs := b.shipAt[d]
	if !prs {
		b.grid.set(d, CellMiss)
		b.hit = false
		return ShotMiss
	}

	ship.gotHit()
	if !ship.IsSunk() {
		b.grid.set(d, CellHit)
		b.hit = true
		return ShotHit
	}

	for _, sd := range ship.Dots() {
		b.grid.set(sd, CellSunk)
	}
	b.sunk++
	for _, c := range b.contour(ship) {
		if b.grid.At(c) == CellEmpty {
			b.grid.set(c, CellMiss)
		}
		b.fired[c] = struct{}{}
	}
	b.hit = false
	return ShotSunk
}

func (b *Board) IsDefeated() bool {
	return b.sunk == len(b.ships)
}

// Render returns a copy of the grid. A hidden board shows unhit ship
// cells as empty.
func (b *Board) Render() Grid {
	return b.RenderConcealed(b.hidden)
}

func (b *Board) RenderConcealed(concealed bool) Grid {
	snapshot := b.grid.Clone()
	if !concealed {
		return snapshot
	}
	for i := range snapshot {
		for j := range snapshot[i] {
			if snapshot[i][j] == CellShip {
				snapshot[i][j] = CellEmpty
			}
		}
	}
	return snapshot
}

// contour lists in-bound cells touching the ship, diagonals included,
// that are not ship cells.
func (b *Board) contour(ship *Ship) []Dot {
	seen := make(map[Dot]struct{})
	near := make([]Dot, 0, 2*ship.Length()+6)
	for _, d := range ship.Dots() {
		for _, n := range d.Neighbours() {
			if b.Out(n) || ship.IsHitBy(n) {
				continue
			}
			if _, prs := seen[n]; prs {
				continue
			}
			seen[n] = struct{}{}
			near = append(near, n)
		}
	}
	return near
}
