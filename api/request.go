package api

import (
	"encoding/json"
	"errors"

	"github.com/charmbracelet/log"
	cerr "github.com/som1414/sea-battle/internal/error"
	mb "github.com/som1414/sea-battle/models/battleship"
	mc "github.com/som1414/sea-battle/models/connection"
)

type RequestHandler interface {
	HandleCreateGame(gameManager mb.GameManager, defaultGridSize int) (*mb.Game, mc.Message[mc.RespCreateGame])
	HandleAttack(game *mb.Game) mc.Message[mc.RespAttack]
	HandleComputerAttack(game *mb.Game) (mc.Message[mc.RespAttack], error)
	HandleEndGame(game *mb.Game) mc.Message[mc.RespEndGame]
	HandleRematch(gameManager mb.GameManager, game *mb.Game) (*mb.Game, mc.Message[mc.RespCreateGame])
}

// Every incoming valid request will have this structure
// The request then is handled in line with RequestHandler interface
type Request struct {
	payload []byte
}

var _ RequestHandler = (*Request)(nil)

func NewRequest(payload ...[]byte) Request {
	if len(payload) > 1 {
		log.Warn("cannot accept more than one payload")
		return Request{}
	}

	var req Request
	if len(payload) == 1 {
		req.payload = payload[0]
	}
	return req
}

func (r Request) HandleCreateGame(gameManager mb.GameManager, defaultGridSize int) (*mb.Game, mc.Message[mc.RespCreateGame]) {
	resp := mc.NewMessage[mc.RespCreateGame](mc.CodeCreateGame)

	var reqCreateGame mc.Message[mc.ReqCreateGame]
	if err := json.Unmarshal(r.payload, &reqCreateGame); err != nil {
		resp.AddError(err.Error(), cerr.ConstErrCreateFailed)
		return nil, resp
	}

	gridSize := reqCreateGame.Payload.GridSize
	if gridSize == 0 {
		gridSize = defaultGridSize
	}

	game, err := gameManager.CreateGame(gridSize)
	if err != nil {
		resp.AddError(err.Error(), cerr.ConstErrCreateFailed)
		return nil, resp
	}

	resp.AddPayload(newRespCreateGame(game))
	return game, resp
}

// HandleAttack fires the user's shot at the computer's board. Invalid
// shots leave the game untouched and come back as an error message.
func (r Request) HandleAttack(game *mb.Game) mc.Message[mc.RespAttack] {
	resp := mc.NewMessage[mc.RespAttack](mc.CodeAttack)

	if game == nil {
		resp.AddError(cerr.ErrGameNotExists.Error(), cerr.ConstErrAttackFailed)
		return resp
	}

	var reqAttack mc.Message[mc.ReqAttack]
	if err := json.Unmarshal(r.payload, &reqAttack); err != nil {
		resp.AddError(err.Error(), cerr.ConstErrAttackFailed)
		return resp
	}

	target := mb.NewDot(reqAttack.Payload.X, reqAttack.Payload.Y)
	outcome, err := game.Attack(target)
	if err != nil {
		switch {
		case errors.Is(err, cerr.ErrOutOfBounds), errors.Is(err, cerr.ErrAlreadyFired):
			log.Debug("rejected shot", "game", game.Uuid(), "dot", target, "err", err)
		default:
			log.Warn("attack failed", "game", game.Uuid(), "err", err)
		}
		resp.AddError(err.Error(), cerr.ConstErrAttackFailed)
		return resp
	}

	resp.AddPayload(newRespAttack(game, game.ComputerBoard(), target, outcome))
	return resp
}

// HandleComputerAttack plays one shot of the computer. The error is
// only set when the game can not continue.
func (r Request) HandleComputerAttack(game *mb.Game) (mc.Message[mc.RespAttack], error) {
	resp := mc.NewMessage[mc.RespAttack](mc.CodeComputerAttack)

	target, outcome, err := game.ComputerMove()
	if err != nil {
		return resp, err
	}

	resp.AddPayload(newRespAttack(game, game.UserBoard(), target, outcome))
	return resp, nil
}

func (r Request) HandleEndGame(game *mb.Game) mc.Message[mc.RespEndGame] {
	resp := mc.NewMessage[mc.RespEndGame](mc.CodeEndGame)
	resp.AddPayload(mc.RespEndGame{
		PlayerMatchStatus: game.MatchStatus(mb.SideUser),
		ComputerGrid:      mc.NewGridInt(game.ComputerBoard().RenderConcealed(false)),
	})
	return resp
}

// HandleRematch replaces the game with a fresh one of the same size.
func (r Request) HandleRematch(gameManager mb.GameManager, game *mb.Game) (*mb.Game, mc.Message[mc.RespCreateGame]) {
	resp := mc.NewMessage[mc.RespCreateGame](mc.CodeRematch)

	if game == nil {
		resp.AddError(cerr.ErrGameNotExists.Error(), cerr.ConstErrRematchFailed)
		return nil, resp
	}

	newGame, err := gameManager.CreateGame(game.GridSize())
	if err != nil {
		resp.AddError(err.Error(), cerr.ConstErrRematchFailed)
		return game, resp
	}
	gameManager.TerminateGame(game.Uuid())

	resp.AddPayload(newRespCreateGame(newGame))
	return newGame, resp
}

func newRespCreateGame(game *mb.Game) mc.RespCreateGame {
	return mc.RespCreateGame{
		GameUuid:    game.Uuid(),
		GridSize:    game.GridSize(),
		Fleet:       mb.FleetFor(game.GridSize()),
		DefenceGrid: mc.NewGridInt(game.UserBoard().Render()),
	}
}

func newRespAttack(game *mb.Game, target *mb.Board, d mb.Dot, outcome mb.ShotOutcome) mc.RespAttack {
	return mc.RespAttack{
		X:                   d.X,
		Y:                   d.Y,
		Outcome:             outcome.String(),
		PositionState:       int(target.Cell(d)),
		IsTurn:              !game.IsFinished() && game.Turn() == mb.SideUser,
		SunkenShipsUser:     game.UserBoard().SunkenShips(),
		SunkenShipsComputer: game.ComputerBoard().SunkenShips(),
	}
}
