package websocket

import "encoding/json"

// Message defines the structure for websocket messages.
type Message struct {
	Action  string      `json:"action"`
	Payload interface{} `json:"payload"`
}

// NewTallyUpdateMessage builds the broadcast payload sent after each vote.
func NewTallyUpdateMessage(payload interface{}) ([]byte, error) {
	return json.Marshal(Message{Action: "tally_update", Payload: payload})
}
