package queue

import (
	"context"
	"testing"
	"time"
)

func TestMemoryClientRoundTrip(t *testing.T) {
	client := NewMemoryClient(4)
	defer client.Close()

	sent := Message{RepositoryID: "repo-1", RequestID: "req-1", EnqueuedAt: time.Now().UTC(), Version: 1}
	if err := client.Send(context.Background(), sent); err != nil {
		t.Fatalf("send: %v", err)
	}

	body := <-client.Messages()
	got, err := DecodeMessage(body)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.RepositoryID != "repo-1" || got.RequestID != "req-1" || got.Version != 1 {
		t.Fatalf("unexpected message: %+v", got)
	}
}

func TestMemoryClientSendRespectsContext(t *testing.T) {
	client := NewMemoryClient(1)
	defer client.Close()

	if err := client.Send(context.Background(), Message{RepositoryID: "a"}); err != nil {
		t.Fatalf("first send: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := client.Send(ctx, Message{RepositoryID: "b"}); err == nil {
		t.Fatalf("expected context error on full queue")
	}
}

func TestDecodeMessageRejectsGarbage(t *testing.T) {
	if _, err := DecodeMessage("not-json"); err == nil {
		t.Fatalf("expected decode error")
	}
}
