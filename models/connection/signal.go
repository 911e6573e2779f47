package connection

const (
	CodeSessionID uint8 = iota
	CodeCreateGame
	CodeAttack

	// Pushed by the server for every shot of the computer
	CodeComputerAttack
	CodeEndGame

	// Same grid size, fresh boards
	CodeRematch
	CodeInvalidSignal

	// if the req msg does not contain "code" field
	CodeSignalAbsent
)

type Signal struct {
	Code uint8 `json:"code"`
}

func NewSignal(code uint8) Signal {
	return Signal{Code: code}
}
