package api

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/som1414/sea-battle/db/sqlc"
	cerr "github.com/som1414/sea-battle/internal/error"
	mb "github.com/som1414/sea-battle/models/battleship"
	mc "github.com/som1414/sea-battle/models/connection"
	"github.com/sqlc-dev/pqtype"
)

var upgrader = websocket.Upgrader{
	// good average time since this is not a high-latency operation such as video streaming
	HandshakeTimeout: time.Second * 5,

	ReadBufferSize:  2048,
	WriteBufferSize: 2048,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Analytics receives the per-server counters. Failures are logged and
// never end a session.
type Analytics interface {
	IncrementGamesCreatedCount(ctx context.Context, serverIpNet pqtype.Inet) error
	IncrementUserWinsCount(ctx context.Context, serverIpNet pqtype.Inet) error
	IncrementComputerWinsCount(ctx context.Context, serverIpNet pqtype.Inet) error
}

var _ Analytics = (*sqlc.AnalyticsManager)(nil)

type RequestProcessor struct {
	sessionManager  mc.SessionManager
	gameManager     mb.GameManager
	analytics       Analytics
	computerDelay   time.Duration
	defaultGridSize int
}

type Option func(*RequestProcessor)

func WithAnalytics(analytics Analytics) Option {
	return func(rp *RequestProcessor) {
		rp.analytics = analytics
	}
}

// WithComputerDelay sets the pause before every shot of the computer.
func WithComputerDelay(delay time.Duration) Option {
	return func(rp *RequestProcessor) {
		rp.computerDelay = delay
	}
}

// WithDefaultGridSize is used when a create request leaves grid_size out.
func WithDefaultGridSize(gridSize int) Option {
	return func(rp *RequestProcessor) {
		if mb.IsGridSizeValid(gridSize) {
			rp.defaultGridSize = gridSize
		}
	}
}

func NewRequestProcessor(
	sessionManager mc.SessionManager,
	gameManager mb.GameManager,
	optFuncs ...Option,
) RequestProcessor {
	rp := RequestProcessor{
		sessionManager:  sessionManager,
		gameManager:     gameManager,
		defaultGridSize: mb.GridSizeSmall,
	}
	for _, opt := range optFuncs {
		opt(&rp)
	}
	return rp
}

func (rp RequestProcessor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Upgrade replies with an http error itself when it fails
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn("failed to upgrade connection", "remoteAddr", r.RemoteAddr, "err", err)
		return
	}

	session := rp.sessionManager.GenerateNewSession(conn)
	log.Info("a new connection established", "session", session.Id(), "remoteAddr", conn.RemoteAddr().String())
	rp.processSessionRequests(session)
}

func (rp RequestProcessor) processSessionRequests(session *mc.Session) {
	sessionId := session.Id()

	defer func() {
		if game := session.Game(); game != nil {
			rp.gameManager.TerminateGame(game.Uuid())
		}
		_ = session.Conn().Close()
		rp.sessionManager.TerminateSession(sessionId)
		log.Info("session terminated", "session", sessionId)
	}()

	serverInet := pqtype.Inet{Valid: false}
	if ipNet, err := getServerIpNet(session.Conn().LocalAddr().String()); err == nil {
		serverInet = pqtype.Inet{IPNet: ipNet, Valid: true}
	} else {
		log.Warn("failed to resolve server ip", "err", err)
	}

	resp := mc.NewMessage[mc.RespSessionId](mc.CodeSessionID)
	resp.AddPayload(mc.RespSessionId{SessionID: sessionId})
	if err := rp.sessionManager.WriteToSessionConn(session, resp); err != nil {
		return
	}

sessionLoop:
	for {
		// A WebSocket frame can be one of 6 types: text=1, binary=2, ping=9, pong=10, close=8 and continuation=0
		// https://www.rfc-editor.org/rfc/rfc6455.html#section-11.8
		_, payload, err := rp.sessionManager.ReadFromSessionConn(session)
		if err != nil {
			// retries did not resolve the connection problem
			break sessionLoop
		}

		code, err := rp.sessionManager.FetchCodeFromMsg(payload)
		if err != nil {
			msg := mc.NewMessage[mc.NoPayload](mc.CodeSignalAbsent)
			msg.AddError(err.Error(), "incoming req payload must contain 'code' field")
			if err = rp.sessionManager.WriteToSessionConn(session, msg); err != nil {
				break sessionLoop
			}
			continue sessionLoop
		}

		switch code {
		case mc.CodeCreateGame:
			game, respMsg := NewRequest(payload).HandleCreateGame(rp.gameManager, rp.defaultGridSize)
			if respMsg.Error == nil {
				if prev := session.Game(); prev != nil {
					rp.gameManager.TerminateGame(prev.Uuid())
				}
				session.SetGame(game)
				rp.record(serverInet, Analytics.IncrementGamesCreatedCount)
				log.Info("game created", "session", sessionId, "game", game.Uuid(), "gridSize", game.GridSize())
			}

			if err := rp.sessionManager.WriteToSessionConn(session, respMsg); err != nil {
				break sessionLoop
			}

		// The reply to the user's shot is followed by every shot of the
		// computer until the turn comes back or the game ends.
		case mc.CodeAttack:
			game := session.Game()
			respMsg := NewRequest(payload).HandleAttack(game)
			if err := rp.sessionManager.WriteToSessionConn(session, respMsg); err != nil {
				break sessionLoop
			}
			if respMsg.Error != nil {
				continue sessionLoop
			}

			if err := rp.playComputerTurn(session, game); err != nil {
				break sessionLoop
			}

			if game.IsFinished() {
				rp.recordResult(serverInet, game)
				if err := rp.sessionManager.WriteToSessionConn(session, NewRequest().HandleEndGame(game)); err != nil {
					break sessionLoop
				}
			}

		case mc.CodeRematch:
			game, respMsg := NewRequest().HandleRematch(rp.gameManager, session.Game())
			if respMsg.Error == nil {
				session.SetGame(game)
				rp.record(serverInet, Analytics.IncrementGamesCreatedCount)
				log.Info("rematch", "session", sessionId, "game", game.Uuid())
			}

			if err := rp.sessionManager.WriteToSessionConn(session, respMsg); err != nil {
				break sessionLoop
			}

		default:
			respInvalidSignal := mc.NewMessage[mc.NoPayload](mc.CodeInvalidSignal)
			respInvalidSignal.AddError("invalid code in the incoming payload", cerr.ConstErrInvalidSignal)
			if err := rp.sessionManager.WriteToSessionConn(session, respInvalidSignal); err != nil {
				break sessionLoop
			}
		}
	}
}

func (rp RequestProcessor) playComputerTurn(session *mc.Session, game *mb.Game) error {
	for !game.IsFinished() && game.Turn() == mb.SideComputer {
		if rp.computerDelay > 0 {
			time.Sleep(rp.computerDelay)
		}

		respMsg, err := NewRequest().HandleComputerAttack(game)
		if err != nil {
			log.Error("computer move failed", "session", session.Id(), "game", game.Uuid(), "err", err)
			return err
		}
		if err := rp.sessionManager.WriteToSessionConn(session, respMsg); err != nil {
			return err
		}
	}
	return nil
}

func (rp RequestProcessor) recordResult(serverInet pqtype.Inet, game *mb.Game) {
	winner, _ := game.Winner()
	log.Info("game finished", "game", game.Uuid(), "winner", winner)

	if winner == mb.SideUser {
		rp.record(serverInet, Analytics.IncrementUserWinsCount)
		return
	}
	rp.record(serverInet, Analytics.IncrementComputerWinsCount)
}

func (rp RequestProcessor) record(serverInet pqtype.Inet, increment func(Analytics, context.Context, pqtype.Inet) error) {
	if rp.analytics == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
	defer cancel()

	// for now not killing the game for it
	if err := increment(rp.analytics, ctx, serverInet); err != nil {
		log.Error("failed to update analytics", "err", err)
	}
}

func getServerIpNet(localAddr string) (net.IPNet, error) {
	host, _, err := net.SplitHostPort(localAddr)
	if err != nil {
		return net.IPNet{}, err
	}

	ip := net.ParseIP(host)
	if ip == nil {
		return net.IPNet{}, &net.ParseError{Type: "IP address", Text: host}
	}
	if ip4 := ip.To4(); ip4 != nil {
		return net.IPNet{IP: ip4, Mask: net.CIDRMask(32, 32)}, nil
	}
	return net.IPNet{IP: ip, Mask: net.CIDRMask(128, 128)}, nil
}
