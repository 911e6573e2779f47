package connection

import "fmt"

// connAction tells the read and write loops what to do after a
// websocket error.
type connAction uint8

const (
	connBreak connAction = iota
	connRetry
)

// ConnErr is returned once a session's connection is given up on. The
// session loop ends on it and the session is terminated.
type ConnErr struct {
	SessionId string
	Op        string
	Err       error
}

func (c *ConnErr) Error() string {
	return fmt.Sprintf("session %s: %s failed: %v", c.SessionId, c.Op, c.Err)
}

func (c *ConnErr) Unwrap() error {
	return c.Err
}
