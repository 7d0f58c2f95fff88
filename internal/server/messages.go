package server

import (
	"encoding/json"

	"github.com/samdwyer/dungeonle/internal/entity"
)

// MessageType tags every frame exchanged over the socket.
type MessageType string

const (
	MessageTypeSnapshot MessageType = "snapshot"
	MessageTypeEvent    MessageType = "event"
	MessageTypeError    MessageType = "error"
	MessageTypeIntent   MessageType = "intent"
)

// BaseMessage is the envelope for every frame.
type BaseMessage struct {
	Type    MessageType `json:"type"`
	Payload any         `json:"payload"`
}

// inbound is BaseMessage with the payload left undecoded.
type inbound struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// SnapshotMessage carries the full session state.
type SnapshotMessage struct {
	Rows    []string   `json:"rows"`
	Sprites entity.Map `json:"sprites"`
	Player  entity.ID  `json:"player"`
	Turn    int        `json:"turn"`
}

// IntentMessage asks for the player's next action.
type IntentMessage struct {
	Action string `json:"action"`
}

// ErrorMessage reports a rejected frame or a failed session.
type ErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes
const (
	CodeBadMessage  = "BAD_MESSAGE"
	CodeUnknownType = "UNKNOWN_MESSAGE_TYPE"
	CodeBadAction   = "BAD_ACTION"
	CodeNoWorld     = "WORLD_FAILED"
)
