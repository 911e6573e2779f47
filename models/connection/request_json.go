package connection

type ReqCreateGame struct {
	GridSize int `json:"grid_size"`
}

// Coordinates are zero based.
type ReqAttack struct {
	X int `json:"x"`
	Y int `json:"y"`
}
