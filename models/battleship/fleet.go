package battleship

import (
	"math/rand"

	cerr "github.com/som1414/sea-battle/internal/error"
)

const (
	GridSizeSmall int = 6
	GridSizeLarge int = 10

	MaxPlacementAttempts = 2000
)

var (
	fleetSmall = []int{3, 2, 2, 1, 1, 1, 1}
	fleetLarge = []int{4, 3, 3, 2, 2, 2, 1, 1, 1, 1}
)

func IsGridSizeValid(size int) bool {
	return size == GridSizeSmall || size == GridSizeLarge
}

// FleetFor returns the ship lengths placed on a board of the given size.
func FleetFor(size int) []int {
	src := fleetSmall
	if size == GridSizeLarge {
		src = fleetLarge
	}
	fleet := make([]int, len(src))
	copy(fleet, src)
	return fleet
}

// TryRandomBoard places the fleet at random positions. It gives up
// once maxAttempts placements in total have been tried.
func TryRandomBoard(size int, fleet []int, maxAttempts int, rng *rand.Rand) (*Board, error) {
	board := NewBoard(size)
	attempts := 0
	for _, length := range fleet {
		for {
			attempts++
			if attempts > maxAttempts {
				return nil, cerr.ErrPlacementBudgetExhausted(maxAttempts)
			}

			// Bows may land one past the edge; AddShip rejects those.
			bow := NewDot(rng.Intn(size+1), rng.Intn(size+1))
			ship := NewShip(bow, length, Orientation(rng.Intn(2)))
			if err := board.AddShip(ship); err == nil {
				break
			}
		}
	}
	board.Begin()
	return board, nil
}

// RandomBoard retries TryRandomBoard on a fresh board until the whole
// fleet fits.
func RandomBoard(size int, rng *rand.Rand) *Board {
	fleet := FleetFor(size)
	for {
		board, err := TryRandomBoard(size, fleet, MaxPlacementAttempts, rng)
		if err == nil {
			return board
		}
	}
}
