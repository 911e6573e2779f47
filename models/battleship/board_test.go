package battleship_test

import (
	"errors"
	"reflect"
	"testing"

	cerr "github.com/som1414/sea-battle/internal/error"
	mb "github.com/som1414/sea-battle/models/battleship"
)

func TestShipDots(t *testing.T) {
	tests := []struct {
		name     string
		ship     *mb.Ship
		expected []mb.Dot
	}{
		{
			name:     "horizontal extends along x",
			ship:     mb.NewShip(mb.NewDot(0, 0), 2, mb.OrientationHorizontal),
			expected: []mb.Dot{{X: 0, Y: 0}, {X: 1, Y: 0}},
		},
		{
			name:     "vertical extends along y",
			ship:     mb.NewShip(mb.NewDot(2, 1), 3, mb.OrientationVertical),
			expected: []mb.Dot{{X: 2, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 3}},
		},
		{
			name:     "single cell",
			ship:     mb.NewShip(mb.NewDot(5, 5), 1, mb.OrientationVertical),
			expected: []mb.Dot{{X: 5, Y: 5}},
		},
		{
			name:     "dots are not clipped to any board",
			ship:     mb.NewShip(mb.NewDot(9, 9), 4, mb.OrientationHorizontal),
			expected: []mb.Dot{{X: 9, Y: 9}, {X: 10, Y: 9}, {X: 11, Y: 9}, {X: 12, Y: 9}},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			dots := test.ship.Dots()
			if !reflect.DeepEqual(dots, test.expected) {
				t.Fatalf("expected dots: %v\t got: %v", test.expected, dots)
			}
			for _, d := range dots {
				if !test.ship.IsHitBy(d) {
					t.Fatalf("ship should be hit by %s", d)
				}
			}
			if test.ship.Lives() != test.ship.Length() {
				t.Fatalf("expected lives: %d\t got: %d", test.ship.Length(), test.ship.Lives())
			}
		})
	}
}

func TestAddShip(t *testing.T) {
	tests := []struct {
		name     string
		existing []*mb.Ship
		ship     *mb.Ship
		isValid  bool
	}{
		{
			name:    "fits in empty board",
			ship:    mb.NewShip(mb.NewDot(0, 0), 3, mb.OrientationHorizontal),
			isValid: true,
		},
		{
			name:    "leaves the board",
			ship:    mb.NewShip(mb.NewDot(4, 0), 3, mb.OrientationHorizontal),
			isValid: false,
		},
		{
			name:    "negative bow",
			ship:    mb.NewShip(mb.NewDot(-1, 2), 1, mb.OrientationVertical),
			isValid: false,
		},
		{
			name:     "overlaps a ship",
			existing: []*mb.Ship{mb.NewShip(mb.NewDot(2, 0), 3, mb.OrientationVertical)},
			ship:     mb.NewShip(mb.NewDot(0, 1), 3, mb.OrientationHorizontal),
			isValid:  false,
		},
		{
			name:     "touches a ship orthogonally",
			existing: []*mb.Ship{mb.NewShip(mb.NewDot(0, 0), 2, mb.OrientationHorizontal)},
			ship:     mb.NewShip(mb.NewDot(2, 0), 1, mb.OrientationHorizontal),
			isValid:  false,
		},
		{
			name:     "touches a ship diagonally",
			existing: []*mb.Ship{mb.NewShip(mb.NewDot(0, 0), 2, mb.OrientationHorizontal)},
			ship:     mb.NewShip(mb.NewDot(2, 1), 2, mb.OrientationVertical),
			isValid:  false,
		},
		{
			name:     "one cell gap is allowed",
			existing: []*mb.Ship{mb.NewShip(mb.NewDot(0, 0), 2, mb.OrientationHorizontal)},
			ship:     mb.NewShip(mb.NewDot(3, 0), 3, mb.OrientationVertical),
			isValid:  true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			board := mb.NewBoard(mb.GridSizeSmall)
			for _, ship := range test.existing {
				if err := board.AddShip(ship); err != nil {
					t.Fatal(err)
				}
			}

			before := board.Render()
			reservedBefore := reservedDots(board)

			err := board.AddShip(test.ship)
			if test.isValid {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				for _, d := range test.ship.Dots() {
					if board.Cell(d) != mb.CellShip {
						t.Fatalf("expected ship cell at %s\t got: %s", d, board.Cell(d))
					}
				}
				return
			}

			if !errors.Is(err, cerr.ErrInvalidPlacement) {
				t.Fatalf("expected invalid placement error\t got: %v", err)
			}
			if !reflect.DeepEqual(before, board.Render()) {
				t.Fatal("grid changed after failed placement")
			}
			if !reflect.DeepEqual(reservedBefore, reservedDots(board)) {
				t.Fatal("reserved cells changed after failed placement")
			}
			if len(board.Ships()) != len(test.existing) {
				t.Fatalf("expected ships: %d\t got: %d", len(test.existing), len(board.Ships()))
			}
		})
	}
}

func TestAddShipAfterBegin(t *testing.T) {
	board := mb.NewBoard(mb.GridSizeSmall)
	board.Begin()

	err := board.AddShip(mb.NewShip(mb.NewDot(0, 0), 1, mb.OrientationHorizontal))
	if !errors.Is(err, cerr.ErrInvalidPlacement) {
		t.Fatalf("expected invalid placement error\t got: %v", err)
	}
}

func TestSingleShipScenario(t *testing.T) {
	board := mb.NewBoard(mb.GridSizeSmall)
	if err := board.AddShip(mb.NewShip(mb.NewDot(0, 0), 2, mb.OrientationHorizontal)); err != nil {
		t.Fatal(err)
	}

	outcome, err := board.ValidateAndFire(mb.NewDot(0, 0))
	if err != nil || outcome != mb.ShotHit {
		t.Fatalf("expected hit\t got: %s, %v", outcome, err)
	}
	if !board.LastShotWasHit() {
		t.Fatal("expected repeat signal after hit")
	}

	if _, err := board.ValidateAndFire(mb.NewDot(0, 0)); !errors.Is(err, cerr.ErrAlreadyFired) {
		t.Fatalf("expected already fired error\t got: %v", err)
	}

	outcome, err = board.ValidateAndFire(mb.NewDot(1, 0))
	if err != nil || outcome != mb.ShotSunk {
		t.Fatalf("expected sunk\t got: %s, %v", outcome, err)
	}
	if board.LastShotWasHit() {
		t.Fatal("repeat signal should be cleared after sinking")
	}
	if !board.IsDefeated() {
		t.Fatal("board should be defeated")
	}
}

func TestSecondShipInBuffer(t *testing.T) {
	board := mb.NewBoard(mb.GridSizeSmall)
	if err := board.AddShip(mb.NewShip(mb.NewDot(0, 0), 2, mb.OrientationHorizontal)); err != nil {
		t.Fatal(err)
	}

	err := board.AddShip(mb.NewShip(mb.NewDot(2, 0), 1, mb.OrientationHorizontal))
	if !errors.Is(err, cerr.ErrInvalidPlacement) {
		t.Fatalf("expected invalid placement error\t got: %v", err)
	}
}

func TestValidateAndFireErrors(t *testing.T) {
	tests := []struct {
		name        string
		dot         mb.Dot
		expectedErr error
	}{
		{name: "negative x", dot: mb.NewDot(-1, 0), expectedErr: cerr.ErrOutOfBounds},
		{name: "y past edge", dot: mb.NewDot(0, 6), expectedErr: cerr.ErrOutOfBounds},
		{name: "both past edge", dot: mb.NewDot(6, 6), expectedErr: cerr.ErrOutOfBounds},
		{name: "in bounds", dot: mb.NewDot(5, 5), expectedErr: nil},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			board := mb.NewBoard(mb.GridSizeSmall)
			_, err := board.ValidateAndFire(test.dot)
			if !errors.Is(err, test.expectedErr) {
				t.Fatalf("expected error: %v\t got: %v", test.expectedErr, err)
			}
		})
	}
}

func TestFireTwiceAlwaysAlreadyFired(t *testing.T) {
	board := mb.NewBoard(mb.GridSizeSmall)
	if err := board.AddShip(mb.NewShip(mb.NewDot(2, 2), 3, mb.OrientationVertical)); err != nil {
		t.Fatal(err)
	}
	board.Begin()

	for x := 0; x < board.Size(); x++ {
		for y := 0; y < board.Size(); y++ {
			d := mb.NewDot(x, y)
			if board.IsFired(d) {
				continue
			}
			if _, err := board.ValidateAndFire(d); err != nil {
				t.Fatalf("first shot at %s failed: %v", d, err)
			}
			if _, err := board.ValidateAndFire(d); !errors.Is(err, cerr.ErrAlreadyFired) {
				t.Fatalf("second shot at %s: expected already fired\t got: %v", d, err)
			}
		}
	}
}

func TestOutcomeSequence(t *testing.T) {
	board := mb.NewBoard(mb.GridSizeLarge)
	ship := mb.NewShip(mb.NewDot(3, 4), 4, mb.OrientationHorizontal)
	if err := board.AddShip(ship); err != nil {
		t.Fatal(err)
	}
	if err := board.AddShip(mb.NewShip(mb.NewDot(0, 0), 1, mb.OrientationHorizontal)); err != nil {
		t.Fatal(err)
	}
	board.Begin()

	sunkCount := 0
	for i, d := range ship.Dots() {
		outcome, err := board.ValidateAndFire(d)
		if err != nil {
			t.Fatal(err)
		}
		last := i == ship.Length()-1
		if last && outcome != mb.ShotSunk {
			t.Fatalf("expected sunk on the last cell\t got: %s", outcome)
		}
		if !last && outcome != mb.ShotHit {
			t.Fatalf("expected hit on cell %d\t got: %s", i, outcome)
		}
		if outcome == mb.ShotSunk {
			sunkCount++
		}
	}

	if sunkCount != 1 {
		t.Fatalf("expected sunk reported once\t got: %d", sunkCount)
	}
	if ship.Lives() != 0 {
		t.Fatalf("expected no lives left\t got: %d", ship.Lives())
	}
	if board.IsDefeated() {
		t.Fatal("one ship is still afloat")
	}
	if board.SunkenShips() != 1 {
		t.Fatalf("expected sunken ships: %d\t got: %d", 1, board.SunkenShips())
	}
}

func TestSunkRevealsBuffer(t *testing.T) {
	board := mb.NewBoard(mb.GridSizeSmall)
	ship := mb.NewShip(mb.NewDot(1, 1), 2, mb.OrientationVertical)
	if err := board.AddShip(ship); err != nil {
		t.Fatal(err)
	}
	board.Begin()

	for _, d := range ship.Dots() {
		if _, err := board.ValidateAndFire(d); err != nil {
			t.Fatal(err)
		}
	}

	for _, d := range ship.Dots() {
		if board.Cell(d) != mb.CellSunk {
			t.Fatalf("expected sunk cell at %s\t got: %s", d, board.Cell(d))
		}
	}

	// Buffer of a vertical ship at (1,1)-(1,2): x in [0,2], y in [0,3].
	for x := 0; x <= 2; x++ {
		for y := 0; y <= 3; y++ {
			d := mb.NewDot(x, y)
			if ship.IsHitBy(d) {
				continue
			}
			if board.Cell(d) != mb.CellMiss {
				t.Fatalf("expected revealed miss at %s\t got: %s", d, board.Cell(d))
			}
			if _, err := board.ValidateAndFire(d); !errors.Is(err, cerr.ErrAlreadyFired) {
				t.Fatalf("expected already fired at %s\t got: %v", d, err)
			}
		}
	}

	if len(board.Shots()) != ship.Length() {
		t.Fatalf("revealed cells must not enter shot history; shots: %v", board.Shots())
	}
}

func TestRenderConcealed(t *testing.T) {
	board := mb.NewBoard(mb.GridSizeSmall)
	if err := board.AddShip(mb.NewShip(mb.NewDot(0, 0), 3, mb.OrientationHorizontal)); err != nil {
		t.Fatal(err)
	}
	board.Begin()
	if _, err := board.ValidateAndFire(mb.NewDot(1, 0)); err != nil {
		t.Fatal(err)
	}
	if _, err := board.ValidateAndFire(mb.NewDot(5, 5)); err != nil {
		t.Fatal(err)
	}

	board.SetHidden(true)
	hidden := board.Render()
	if hidden[0][0] != mb.CellEmpty || hidden[2][0] != mb.CellEmpty {
		t.Fatal("unhit ship cells must be concealed")
	}
	if hidden[1][0] != mb.CellHit {
		t.Fatalf("expected hit to stay visible\t got: %s", hidden[1][0])
	}
	if hidden[5][5] != mb.CellMiss {
		t.Fatalf("expected miss to stay visible\t got: %s", hidden[5][5])
	}

	board.SetHidden(false)
	if board.Render()[0][0] != mb.CellShip {
		t.Fatal("visible board must show ship cells")
	}

	// Snapshots are copies.
	hidden[3][3] = mb.CellHit
	if board.Cell(mb.NewDot(3, 3)) != mb.CellEmpty {
		t.Fatal("render must not share memory with the board")
	}
}

func TestEmptyBoardIsDefeated(t *testing.T) {
	if !mb.NewBoard(1).IsDefeated() {
		t.Fatal("a board without ships has nothing left to sink")
	}
}

func reservedDots(board *mb.Board) []mb.Dot {
	dots := make([]mb.Dot, 0)
	for x := 0; x < board.Size(); x++ {
		for y := 0; y < board.Size(); y++ {
			if board.IsReserved(mb.NewDot(x, y)) {
				dots = append(dots, mb.NewDot(x, y))
			}
		}
	}
	return dots
}
