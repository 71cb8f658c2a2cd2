package stream

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestHubBroadcast(t *testing.T) {
	hub := NewHub(nil)
	client := hub.Register("stream-1")
	defer hub.Unregister(client)

	payload := []byte("hello")
	hub.Broadcast("stream-1", payload)

	select {
	case msg := <-client.Send:
		if string(msg) != "hello" {
			t.Fatalf("unexpected message")
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatalf("timeout waiting for message")
	}
}

func TestHubHelpers(t *testing.T) {
	ch := redisChannel("abc")
	if ch != "corsa:stream:abc:live" {
		t.Fatalf("unexpected channel %q", ch)
	}
	if streamIDFromChannel(ch) != "abc" {
		t.Fatalf("unexpected stream id")
	}
	if streamIDFromChannel("bad") != "" {
		t.Fatalf("expected empty stream id")
	}
}

func TestUnregisterCloses(t *testing.T) {
	hub := NewHub(nil)
	client := hub.Register("stream-2")
	hub.Unregister(client)
	_, ok := <-client.Send
	if ok {
		t.Fatalf("expected channel closed")
	}
}

func TestHubRedisBroadcastAndSubscribe(t *testing.T) {
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	defer client.Close()

	hub := NewHub(client)
	follower := hub.Register("stream-redis")
	defer hub.Unregister(follower)

	// give the pattern subscription a moment to establish
	time.Sleep(20 * time.Millisecond)
	hub.Broadcast("stream-redis", []byte("ping"))

	select {
	case msg := <-follower.Send:
		if string(msg) != "ping" {
			t.Fatalf("unexpected message")
		}
	case <-time.After(200 * time.Millisecond):
		t.Fatalf("timeout waiting for broadcast")
	}

	// a publish from another node lands on the stream's own channel and must
	// reach local followers through the pattern subscription
	if err := client.Publish(context.Background(), "corsa:stream:stream-redis:live", "pong").Err(); err != nil {
		t.Fatalf("publish error: %v", err)
	}

	select {
	case msg := <-follower.Send:
		if string(msg) != "pong" {
			t.Fatalf("unexpected message from redis")
		}
	case <-time.After(200 * time.Millisecond):
		t.Fatalf("timeout waiting for redis message")
	}
}

func TestHubRedisPublishErrorFallsBackToLocal(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	server.Close()
	defer client.Close()

	hub := NewHub(client)
	follower := hub.Register("stream-bad")
	defer hub.Unregister(follower)

	hub.Broadcast("stream-bad", []byte("ping"))

	select {
	case msg := <-follower.Send:
		if string(msg) != "ping" {
			t.Fatalf("unexpected message")
		}
	case <-time.After(200 * time.Millisecond):
		t.Fatalf("expected local delivery when redis is down")
	}
}
