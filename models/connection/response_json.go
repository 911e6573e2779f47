package connection

import (
	mb "github.com/som1414/sea-battle/models/battleship"
)

// GridInt is the wire form of a grid; cells are mb.CellState values.
type GridInt [][]int

func NewGridInt(grid mb.Grid) GridInt {
	gi := make(GridInt, len(grid))
	for i := range grid {
		gi[i] = make([]int, len(grid[i]))
		for j := range grid[i] {
			gi[i][j] = int(grid[i][j])
		}
	}
	return gi
}

type RespSessionId struct {
	SessionID string `json:"session_id"`
}

type RespCreateGame struct {
	GameUuid    string  `json:"game_uuid"`
	GridSize    int     `json:"grid_size"`
	Fleet       []int   `json:"fleet"`
	DefenceGrid GridInt `json:"defence_grid"`
}

// RespAttack describes a single shot, from the user or the computer.
type RespAttack struct {
	X                   int    `json:"x"`
	Y                   int    `json:"y"`
	Outcome             string `json:"outcome"`
	PositionState       int    `json:"position_state"`
	IsTurn              bool   `json:"is_turn"`
	SunkenShipsUser     int    `json:"sunken_ships_user"`
	SunkenShipsComputer int    `json:"sunken_ships_computer"`
}

type RespEndGame struct {
	PlayerMatchStatus int     `json:"player_match_status"`
	ComputerGrid      GridInt `json:"computer_grid"`
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}
