package amqp

import (
	"encoding/json"
	"time"

	"ledger/internal/journal"
)

// EventMessage carries one journal entry to subscribers
type EventMessage struct {
	Entry     journal.Entry `json:"entry"`
	Timestamp time.Time     `json:"timestamp"`
}

// NewEventMessage wraps e with the current publish time
func NewEventMessage(e journal.Entry) *EventMessage {
	return &EventMessage{
		Entry:     e,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *EventMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// EventMessageFromJSON creates a message from JSON bytes
func EventMessageFromJSON(data []byte) (*EventMessage, error) {
	var msg EventMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
