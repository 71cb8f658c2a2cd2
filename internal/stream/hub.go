package stream

import (
	"context"
	"log"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Hub fans live stream payloads (locations, chat) out to connected websocket
// clients, and mirrors them through redis so every node sees every publish.
type Hub struct {
	redis   *redis.Client
	clients map[string]map[*Client]struct{}
	mu      sync.RWMutex
}

type Client struct {
	StreamID string
	Send     chan []byte
}

func NewHub(redisClient *redis.Client) *Hub {
	h := &Hub{
		redis:   redisClient,
		clients: map[string]map[*Client]struct{}{},
	}

	if redisClient != nil {
		go h.subscribeRedis()
	}
	return h
}

func (h *Hub) Register(streamID string) *Client {
	client := &Client{
		StreamID: streamID,
		Send:     make(chan []byte, 64),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[streamID] == nil {
		h.clients[streamID] = map[*Client]struct{}{}
	}
	h.clients[streamID][client] = struct{}{}
	return client
}

func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if streamClients, ok := h.clients[client.StreamID]; ok {
		delete(streamClients, client)
		if len(streamClients) == 0 {
			delete(h.clients, client.StreamID)
		}
	}
	close(client.Send)
}

// Broadcast routes a payload through redis so every node's subscription
// delivers it, this one's included. Without redis, or when the publish
// fails, delivery falls back to the local client set.
func (h *Hub) Broadcast(streamID string, payload []byte) {
	if h.redis != nil {
		err := h.redis.Publish(context.Background(), redisChannel(streamID), payload).Err()
		if err == nil {
			return
		}
		log.Printf("redis publish error: %v", err)
	}
	h.deliver(streamID, payload)
}

func (h *Hub) deliver(streamID string, payload []byte) {
	h.mu.RLock()
	clients := h.clients[streamID]
	h.mu.RUnlock()

	for client := range clients {
		select {
		case client.Send <- payload:
		default:
		}
	}
}

func (h *Hub) subscribeRedis() {
	ctx := context.Background()
	pubsub := h.redis.PSubscribe(ctx, "corsa:stream:*:live")
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		h.deliver(streamIDFromChannel(msg.Channel), []byte(msg.Payload))
	}
}

func redisChannel(streamID string) string {
	return "corsa:stream:" + streamID + ":live"
}

func streamIDFromChannel(ch string) string {
	// corsa:stream:{id}:live
	const prefix = "corsa:stream:"
	const suffix = ":live"
	if len(ch) <= len(prefix)+len(suffix) {
		return ""
	}
	return ch[len(prefix) : len(ch)-len(suffix)]
}
