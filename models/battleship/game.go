package battleship

import (
	"math/rand"
	"time"

	cerr "github.com/som1414/sea-battle/internal/error"

	"github.com/google/uuid"
)

// Game pits the user against the computer. The user owns userBoard and
// fires at computerBoard; the computer's strategy fires at userBoard.
type Game struct {
	uuid          string
	gridSize      int
	rng           *rand.Rand
	userBoard     *Board
	computerBoard *Board
	strategy      Strategy
	turn          Side
	turnState     TurnState
	isFinished    bool
	winner        Side
	createdAt     time.Time
}

type GameOption func(*Game) error

func WithRand(rng *rand.Rand) GameOption {
	return func(g *Game) error {
		g.rng = rng
		return nil
	}
}

func WithStrategy(strategy Strategy) GameOption {
	return func(g *Game) error {
		g.strategy = strategy
		return nil
	}
}

// WithBoards skips random generation. Both boards must match the
// game's grid size.
func WithBoards(user, computer *Board) GameOption {
	return func(g *Game) error {
		if user.Size() != g.gridSize {
			return cerr.ErrInvalidGridSizeValue(user.Size())
		}
		if computer.Size() != g.gridSize {
			return cerr.ErrInvalidGridSizeValue(computer.Size())
		}
		g.userBoard = user
		g.computerBoard = computer
		return nil
	}
}

func WithUuid(gameUuid string) GameOption {
	return func(g *Game) error {
		g.uuid = gameUuid
		return nil
	}
}

func NewGame(gridSize int, optFuncs ...GameOption) (*Game, error) {
	if !IsGridSizeValid(gridSize) {
		return nil, cerr.ErrInvalidGridSizeValue(gridSize)
	}

	game := Game{
		uuid:      uuid.NewString()[:6],
		gridSize:  gridSize,
		turn:      SideUser,
		turnState: TurnNormal,
		createdAt: time.Now(),
	}
	for _, opt := range optFuncs {
		if err := opt(&game); err != nil {
			return nil, err
		}
	}

	if game.rng == nil {
		game.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if game.userBoard == nil {
		game.userBoard = RandomBoard(gridSize, game.rng)
		game.computerBoard = RandomBoard(gridSize, game.rng)
	}
	if game.strategy == nil {
		game.strategy = NewHuntStrategy(game.rng)
	}

	game.userBoard.Begin()
	game.computerBoard.Begin()
	game.computerBoard.SetHidden(true)
	return &game, nil
}

func (g *Game) Uuid() string {
	return g.uuid
}

func (g *Game) GridSize() int {
	return g.gridSize
}

func (g *Game) UserBoard() *Board {
	return g.userBoard
}

func (g *Game) ComputerBoard() *Board {
	return g.computerBoard
}

func (g *Game) Turn() Side {
	return g.turn
}

func (g *Game) TurnState() TurnState {
	return g.turnState
}

func (g *Game) CreatedAt() time.Time {
	return g.createdAt
}

func (g *Game) IsFinished() bool {
	return g.isFinished
}

// Winner is only meaningful once the game is finished.
func (g *Game) Winner() (Side, bool) {
	return g.winner, g.isFinished
}

func (g *Game) MatchStatus(side Side) int {
	if !g.isFinished {
		return PlayerMatchStatusUndefined
	}
	if g.winner == side {
		return PlayerMatchStatusWon
	}
	return PlayerMatchStatusLost
}

// Attack fires the user's shot at the computer's board.
func (g *Game) Attack(d Dot) (ShotOutcome, error) {
	if g.isFinished {
		return ShotMiss, cerr.ErrGameAlreadyFinished(g.uuid)
	}
	if g.turn != SideUser {
		return ShotMiss, cerr.ErrNotPlayerTurn(SideUser.String())
	}

	outcome, err := g.computerBoard.ValidateAndFire(d)
	if err != nil {
		return outcome, err
	}

	g.afterShot(outcome)
	return outcome, nil
}

// ComputerMove lets the strategy pick a dot on the user's board and
// fires at it.
func (g *Game) ComputerMove() (Dot, ShotOutcome, error) {
	if g.isFinished {
		return Dot{}, ShotMiss, cerr.ErrGameAlreadyFinished(g.uuid)
	}
	if g.turn != SideComputer {
		return Dot{}, ShotMiss, cerr.ErrNotPlayerTurn(SideComputer.String())
	}

	target, err := g.strategy.ChooseTarget(g.userBoard)
	if err != nil {
		return Dot{}, ShotMiss, err
	}

	outcome := g.userBoard.Fire(target)
	g.afterShot(outcome)
	return target, outcome, nil
}

func (g *Game) afterShot(outcome ShotOutcome) {
	switch {
	case g.computerBoard.IsDefeated():
		g.finish(SideUser)
	case g.userBoard.IsDefeated():
		g.finish(SideComputer)
	}
	if g.isFinished {
		return
	}

	if outcome == ShotHit {
		g.turnState = TurnRepeat
		return
	}
	g.turn = g.turn.Other()
	g.turnState = TurnNormal
}

func (g *Game) finish(winner Side) {
	g.isFinished = true
	g.winner = winner
}
