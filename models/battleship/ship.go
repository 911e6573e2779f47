package battleship

type Orientation uint8

const (
	// Horizontal ships extend along x.
	OrientationHorizontal Orientation = iota
	// Vertical ships extend along y.
	OrientationVertical
)

func (o Orientation) String() string {
	switch o {
	case OrientationHorizontal:
		return "Horizontal"
	case OrientationVertical:
		return "Vertical"
	default:
		return "Unknown"
	}
}

type Ship struct {
	bow         Dot
	length      int
	orientation Orientation
	lives       int
}

func NewShip(bow Dot, length int, orientation Orientation) *Ship {
	return &Ship{
		bow:         bow,
		length:      length,
		orientation: orientation,
		lives:       length,
	}
}

func (sh *Ship) Bow() Dot {
	return sh.bow
}

func (sh *Ship) Length() int {
	return sh.length
}

func (sh *Ship) Orientation() Orientation {
	return sh.orientation
}

func (sh *Ship) Lives() int {
	return sh.lives
}

// Dots returns the cells the ship covers, starting at the bow.
func (sh *Ship) Dots() []Dot {
	dots := make([]Dot, 0, sh.length)
	for i := 0; i < sh.length; i++ {
		if sh.orientation == OrientationVertical {
			dots = append(dots, sh.bow.Add(0, i))
		} else {
			dots = append(dots, sh.bow.Add(i, 0))
		}
	}
	return dots
}

func (sh *Ship) IsHitBy(d Dot) bool {
	for _, sd := range sh.Dots() {
		if sd == d {
			return true
		}
	}
	return false
}

func (sh *Ship) IsSunk() bool {
	return sh.lives == 0
}

func (sh *Ship) gotHit() {
	if sh.lives > 0 {
		sh.lives--
	}
}
