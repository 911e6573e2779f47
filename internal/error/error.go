package error

import (
	"errors"
	"fmt"
)

// Kinds callers branch on with errors.Is.
var (
	ErrInvalidPlacement = errors.New("invalid ship placement")
	ErrOutOfBounds      = errors.New("out of grid bound")
	ErrAlreadyFired     = errors.New("position already fired upon")
	ErrNoTargets        = errors.New("no position left to fire at")
	ErrGameFinished     = errors.New("game is finished")
	ErrNotYourTurn      = errors.New("not your turn")
	ErrInvalidGridSize  = errors.New("invalid grid size")
	ErrGameNotExists    = errors.New("game does not exist")
	ErrSessionNotFound  = errors.New("session not found")
)

const (
	ConstErrAttackFailed  = "attack operation failed"
	ConstErrCreateFailed  = "create game operation failed"
	ConstErrRematchFailed = "rematch operation failed"
	ConstErrInvalidSignal = "invalid signal"
)

func ErrGameNotExistsUuid(gameUuid string) error {
	return fmt.Errorf("%w, uuid: %s", ErrGameNotExists, gameUuid)
}

func ErrSessionNotFoundId(sessionId string) error {
	return fmt.Errorf("%w, id: %s", ErrSessionNotFound, sessionId)
}

func ErrXorYOutOfGridBound(x, y int) error {
	return fmt.Errorf("%w: incoming x or y is out of game grid bound\tx: %d\ty: %d", ErrOutOfBounds, x, y)
}

func ErrAttackPositionAlreadyFilled(x, y int) error {
	return fmt.Errorf("%w: current position in grid already taken\tx: %d\ty: %d", ErrAlreadyFired, x, y)
}

func ErrShipOutOfGridBound(x, y int) error {
	return fmt.Errorf("%w: ship cell is out of game grid bound\tx: %d\ty: %d", ErrInvalidPlacement, x, y)
}

func ErrShipPositionTaken(x, y int) error {
	return fmt.Errorf("%w: ship cell touches or overlaps another ship\tx: %d\ty: %d", ErrInvalidPlacement, x, y)
}

func ErrShipLengthInvalid(length int) error {
	return fmt.Errorf("%w: ship length must be positive, got %d", ErrInvalidPlacement, length)
}

func ErrBoardInPlay() error {
	return fmt.Errorf("%w: board already started, placement is closed", ErrInvalidPlacement)
}

func ErrInvalidGridSizeValue(size int) error {
	return fmt.Errorf("%w: %d (must be 6 or 10)", ErrInvalidGridSize, size)
}

func ErrPlacementBudgetExhausted(attempts int) error {
	return fmt.Errorf("%w: could not place fleet within %d attempts", ErrInvalidPlacement, attempts)
}

func ErrNoTargetsLeft() error {
	return ErrNoTargets
}

func ErrGameAlreadyFinished(gameUuid string) error {
	return fmt.Errorf("%w, uuid: %s", ErrGameFinished, gameUuid)
}

func ErrNotPlayerTurn(side string) error {
	return fmt.Errorf("%w: it is not the %s's turn", ErrNotYourTurn, side)
}

func ErrSignalCodeAbsent() error {
	return fmt.Errorf("incoming req payload must contain 'code' field")
}
