package queue

import (
	"context"
	"sync"
)

// MemoryClient is an in-process queue backed by a buffered channel. The API
// process produces onto it and the dispatcher consumes from it.
type MemoryClient struct {
	messages  chan string
	closeOnce sync.Once
}

// NewMemoryClient builds a memory queue with the given buffer size.
func NewMemoryClient(size int) *MemoryClient {
	if size <= 0 {
		size = 1
	}
	return &MemoryClient{messages: make(chan string, size)}
}

// Send encodes the message and places it on the queue. It blocks while the
// buffer is full and gives up when the context is done.
func (c *MemoryClient) Send(ctx context.Context, m Message) error {
	body, err := EncodeMessage(m)
	if err != nil {
		return err
	}
	select {
	case c.messages <- body:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Messages exposes the consumer side of the queue.
func (c *MemoryClient) Messages() <-chan string {
	return c.messages
}

// Close stops the queue. Pending messages already buffered remain readable.
func (c *MemoryClient) Close() {
	c.closeOnce.Do(func() { close(c.messages) })
}
