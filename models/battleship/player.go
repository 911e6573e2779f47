package battleship

const (
	PlayerMatchStatusLost      = -1
	PlayerMatchStatusUndefined = 0
	PlayerMatchStatusWon       = 1
)

// Side identifies who owns a board and who is firing.
type Side uint8

const (
	SideUser Side = iota
	SideComputer
)

func (s Side) String() string {
	switch s {
	case SideUser:
		return "User"
	case SideComputer:
		return "Computer"
	default:
		return "Unknown"
	}
}

func (s Side) Other() Side {
	if s == SideUser {
		return SideComputer
	}
	return SideUser
}

// TurnState tells whether the side to move earned an extra shot.
type TurnState uint8

const (
	TurnNormal TurnState = iota
	TurnRepeat
)

func (t TurnState) String() string {
	if t == TurnRepeat {
		return "Repeat"
	}
	return "Normal"
}
