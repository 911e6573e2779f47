package connection_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	mb "github.com/som1414/sea-battle/models/battleship"
	mc "github.com/som1414/sea-battle/models/connection"
)

// dialEcho opens a client connection to a server that echoes text
// frames back until the client goes away.
func dialEcho(t *testing.T) *websocket.Conn {
	t.Helper()

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for {
			messageType, payload, err := conn.ReadMessage()
			if err != nil {
				return
			}
			if err := conn.WriteMessage(messageType, payload); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)

	dialer := websocket.Dialer{HandshakeTimeout: 5 * time.Second}
	conn, _, err := dialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatal(err)
	}
	return conn
}

func TestSessionWriteAndRead(t *testing.T) {
	bsm := mc.NewBattleshipSessionManager(mc.DefaultCleanupInterval)
	conn := dialEcho(t)
	defer conn.Close()
	session := bsm.GenerateNewSession(conn)

	if err := bsm.WriteToSessionConn(session, mc.NewSignal(mc.CodeRematch)); err != nil {
		t.Fatal(err)
	}

	_, payload, err := bsm.ReadFromSessionConn(session)
	if err != nil {
		t.Fatal(err)
	}
	code, err := bsm.FetchCodeFromMsg(payload)
	if err != nil {
		t.Fatal(err)
	}
	if code != mc.CodeRematch {
		t.Fatalf("expected code: %d\t got: %d", mc.CodeRematch, code)
	}
}

func TestSessionClosedConnection(t *testing.T) {
	bsm := mc.NewBattleshipSessionManager(mc.DefaultCleanupInterval)
	conn := dialEcho(t)
	session := bsm.GenerateNewSession(conn)
	conn.Close()

	tests := []struct {
		name       string
		expectedOp string
		call       func() error
	}{
		{
			name:       "write",
			expectedOp: "write",
			call:       func() error { return bsm.WriteToSessionConn(session, mc.NewSignal(mc.CodeAttack)) },
		},
		{
			name:       "read",
			expectedOp: "read",
			call: func() error {
				_, _, err := bsm.ReadFromSessionConn(session)
				return err
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var connErr *mc.ConnErr
			if err := test.call(); !errors.As(err, &connErr) {
				t.Fatalf("expected *ConnErr\t got: %v", err)
			}
			if connErr.Op != test.expectedOp || connErr.SessionId != session.Id() {
				t.Fatalf("unexpected error: %v", connErr)
			}
		})
	}
}

func TestSessionGame(t *testing.T) {
	session := mc.NewSession("abc", nil)
	if session.Game() != nil {
		t.Fatal("new session should have no game")
	}

	game, err := mb.NewGame(mb.GridSizeSmall)
	if err != nil {
		t.Fatal(err)
	}
	session.SetGame(game)
	if session.Game() != game {
		t.Fatal("expected the game that was set")
	}
}
