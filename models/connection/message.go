package connection

// NoPayload marks frames that carry only a code, like CodeRematch or
// CodeInvalidSignal.
type NoPayload bool

// Message is the frame for every code in signal.go. Requests fill
// Payload; replies carry either Payload or Error.
type Message[T any] struct {
	Code    uint8    `json:"code"`
	Payload T        `json:"payload,omitempty"`
	Error   *RespErr `json:"error,omitempty"`
}

func NewMessage[T any](code uint8) Message[T] {
	return Message[T]{Code: code}
}

func (m *Message[T]) AddPayload(payload T) {
	m.Payload = payload
}

// AddError turns the message into a rejection; details is the wrapped
// cerr text, message one of the cerr.ConstErr* summaries.
func (m *Message[T]) AddError(details, message string) {
	m.Error = NewRespErr(details, message)
}
