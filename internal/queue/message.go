package queue

import (
	"encoding/json"
	"time"
)

// Message is the analysis job payload placed on the queue when a repository
// is registered.
type Message struct {
	RepositoryID string    `json:"repositoryId"`
	RequestID    string    `json:"requestId,omitempty"`
	EnqueuedAt   time.Time `json:"enqueuedAt"`
	Version      int       `json:"version"`
}

// EncodeMessage serializes a message into its queue body.
func EncodeMessage(m Message) (string, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeMessage parses a queue body back into a message.
func DecodeMessage(body string) (Message, error) {
	var m Message
	if err := json.Unmarshal([]byte(body), &m); err != nil {
		return Message{}, err
	}
	return m, nil
}
