package battleship

import "fmt"

type CellState uint8

const (
	CellEmpty CellState = iota
	CellShip
	CellHit
	CellMiss

	// Every cell of a sunken ship. Rendered like a hit.
	CellSunk
)

func (c CellState) String() string {
	switch c {
	case CellEmpty:
		return "Empty"
	case CellShip:
		return "Ship"
	case CellHit:
		return "Hit"
	case CellMiss:
		return "Miss"
	case CellSunk:
		return "Sunk"
	default:
		return "Unknown"
	}
}

// Dot is a cell coordinate. X is the row index and Y the column index
// of the grid, both zero based.
type Dot struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewDot(x, y int) Dot {
	return Dot{X: x, Y: y}
}

func (d Dot) String() string {
	return fmt.Sprintf("(%d, %d)", d.X, d.Y)
}

func (d Dot) Add(dx, dy int) Dot {
	return Dot{X: d.X + dx, Y: d.Y + dy}
}

// Orthogonal neighbours in the order up, down, left, right.
func (d Dot) Orthogonal() []Dot {
	return []Dot{d.Add(0, -1), d.Add(0, 1), d.Add(-1, 0), d.Add(1, 0)}
}

// Neighbours returns the 8 surrounding dots, unclipped.
func (d Dot) Neighbours() []Dot {
	near := make([]Dot, 0, 8)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			near = append(near, d.Add(dx, dy))
		}
	}
	return near
}

type Grid [][]CellState

// Creates a new default grid
// All indexes are zero/CellEmpty
func NewGrid(gridSize int) Grid {
	grid := make(Grid, gridSize)

	for i := 0; i < gridSize; i++ {
		grid[i] = make([]CellState, gridSize)
	}
	return grid
}

func (g Grid) At(d Dot) CellState {
	return g[d.X][d.Y]
}

func (g Grid) set(d Dot, s CellState) {
	g[d.X][d.Y] = s
}

func (g Grid) Clone() Grid {
	c := make(Grid, len(g))
	for i := range g {
		c[i] = make([]CellState, len(g[i]))
		copy(c[i], g[i])
	}
	return c
}
