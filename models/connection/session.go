package connection

import (
	"errors"
	"net"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	mb "github.com/som1414/sea-battle/models/battleship"
)

const (
	maxWsRetries  uint8 = 2
	backOffFactor uint8 = 2
)

var errMaxRetries = errors.New("max retries reached")

// Session is one websocket connection and the game played on it.
type Session struct {
	id        string
	conn      *websocket.Conn
	createdAt time.Time

	// gorilla connections allow one concurrent writer
	writeMu sync.Mutex

	gameMu sync.RWMutex
	game   *mb.Game
}

func NewSession(id string, conn *websocket.Conn) *Session {
	return &Session{
		id:        id,
		conn:      conn,
		createdAt: time.Now(),
	}
}

func (s *Session) Id() string {
	return s.id
}

func (s *Session) Conn() *websocket.Conn {
	return s.conn
}

// Game is nil until the user creates one.
func (s *Session) Game() *mb.Game {
	s.gameMu.RLock()
	defer s.gameMu.RUnlock()
	return s.game
}

func (s *Session) SetGame(game *mb.Game) {
	s.gameMu.Lock()
	s.game = game
	s.gameMu.Unlock()
}

func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Session) onConnErr(err error) connAction {
	if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
		log.Warn("timeout error", "session", s.id, "err", err)
		return connRetry
	}

	if websocket.IsCloseError(err, websocket.CloseTryAgainLater) {
		log.Warn("high server load/traffic error", "session", s.id, "err", err)
		return connRetry
	}

	if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
		log.Info("connection closed", "session", s.id, "err", err)
		return connBreak
	}

	/*
		CloseUnsupportedData (1003): the client sent binary data.
		CloseInvalidFramePayloadData (1007): text that is not valid UTF-8.
		Either way the client is not one of ours; drop it.
	*/
	if websocket.IsCloseError(err, websocket.CloseInvalidFramePayloadData, websocket.CloseUnsupportedData, websocket.CloseMessageTooBig, websocket.ClosePolicyViolation, websocket.CloseServiceRestart, websocket.CloseNoStatusReceived) {
		log.Warn("non-critical error", "session", s.id, "err", err)
		return connBreak
	}

	log.Error("unexpected error", "session", s.id, "err", err)
	return connBreak
}

// Writes msg as JSON. Timeouts and try-again-later closures are
// retried with a linear back off.
func (s *Session) writeJSONWithRetry(msg interface{}) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	var retries uint8
	for {
		err := s.conn.WriteJSON(msg)
		if err == nil {
			return nil
		}

		if s.onConnErr(err) != connRetry {
			return &ConnErr{SessionId: s.id, Op: "write", Err: err}
		}
		if retries >= maxWsRetries {
			log.Error("max retries reached for writing to ws", "session", s.id, "err", err)
			return &ConnErr{SessionId: s.id, Op: "write", Err: errMaxRetries}
		}
		retries++
		log.Warn("writing to ws failed; retrying...", "session", s.id, "retry", retries)
		time.Sleep(time.Duration(retries*backOffFactor) * time.Second)
	}
}

func (s *Session) readWithRetry() (int, []byte, error) {
	var retries uint8
	for {
		messageType, payload, err := s.conn.ReadMessage()
		if err == nil {
			return messageType, payload, nil
		}

		if s.onConnErr(err) != connRetry {
			return -1, nil, &ConnErr{SessionId: s.id, Op: "read", Err: err}
		}
		if retries >= maxWsRetries {
			return -1, nil, &ConnErr{SessionId: s.id, Op: "read", Err: errMaxRetries}
		}
		retries++
		log.Warn("reading from ws failed; retrying...", "session", s.id, "retry", retries)
		time.Sleep(time.Duration(retries*backOffFactor) * time.Second)
	}
}
