package queue

import "context"

// Client enqueues analysis jobs.
type Client interface {
	Send(ctx context.Context, m Message) error
}
