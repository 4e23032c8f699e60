package booking

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// EventType for dashboard WebSocket messages
type EventType string

const (
	EventBookingCreated       EventType = "booking_created"
	EventBookingStatusChanged EventType = "booking_status_changed"
)

// eventsChannel is the Redis Pub/Sub channel fanning booking events across
// API instances so every connected dashboard sees them.
const eventsChannel = "bookings:events"

// Event is a dashboard feed message
type Event struct {
	Type    EventType        `json:"type"`
	Booking *BookingResponse `json:"booking"`
}

type wireEvent struct {
	Event
	SenderInstanceID string `json:"sender_instance_id,omitempty"`
}

// Connection represents a connected admin dashboard
type Connection struct {
	Conn *websocket.Conn
	Send chan []byte
}

// Hub broadcasts booking events to connected admin dashboards, with Redis
// Pub/Sub for multi-instance fan-out. Works without Redis on one instance.
type Hub struct {
	connections map[*Connection]bool

	redis  *redis.Client
	pubsub *redis.PubSub

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection

	ctx    context.Context
	cancel context.CancelFunc

	instanceID string
}

// NewHub creates a booking event hub
func NewHub(redisClient *redis.Client) *Hub {
	ctx, cancel := context.WithCancel(context.Background())

	h := &Hub{
		connections: make(map[*Connection]bool),
		redis:       redisClient,
		register:    make(chan *Connection),
		unregister:  make(chan *Connection),
		ctx:         ctx,
		cancel:      cancel,
		instanceID:  uuid.NewString(),
	}

	if redisClient != nil {
		h.pubsub = redisClient.Subscribe(ctx, eventsChannel)
	}

	return h
}

// Run starts the hub (call in goroutine)
func (h *Hub) Run() {
	if h.pubsub != nil {
		go h.runRedisSubscriber()
	}

	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.connections[conn] = true
			h.mu.Unlock()
			log.Debug().Int("connections", h.connectionCount()).Msg("Dashboard connected")

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.connections[conn]; ok {
				delete(h.connections, conn)
				close(conn.Send)
			}
			h.mu.Unlock()
			log.Debug().Int("connections", h.connectionCount()).Msg("Dashboard disconnected")

		case <-h.ctx.Done():
			return
		}
	}
}

// runRedisSubscriber relays events published by other instances
func (h *Hub) runRedisSubscriber() {
	for msg := range h.pubsub.Channel() {
		var ev wireEvent
		if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
			log.Warn().Err(err).Msg("Malformed booking event on pubsub channel")
			continue
		}
		if ev.SenderInstanceID == h.instanceID {
			continue
		}
		if data, err := json.Marshal(ev.Event); err == nil {
			h.broadcastLocal(data)
		}
	}
}

// Broadcast sends a booking event to every connected dashboard and, when
// Redis is available, to every other API instance.
func (h *Hub) Broadcast(eventType EventType, b *BookingResponse) {
	event := Event{Type: eventType, Booking: b}

	data, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal booking event")
		return
	}

	h.broadcastLocal(data)

	if h.redis != nil {
		wire, err := json.Marshal(wireEvent{Event: event, SenderInstanceID: h.instanceID})
		if err != nil {
			return
		}
		if err := h.redis.Publish(h.ctx, eventsChannel, wire).Err(); err != nil {
			log.Warn().Err(err).Msg("Failed to publish booking event")
		}
	}
}

func (h *Hub) broadcastLocal(data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for conn := range h.connections {
		select {
		case conn.Send <- data:
		default:
			// Slow consumer, drop the event rather than block the workflow
			log.Warn().Msg("Dashboard send buffer full, dropping event")
		}
	}
}

func (h *Hub) connectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}

// Shutdown stops the hub and closes the pubsub subscription
func (h *Hub) Shutdown() {
	h.cancel()
	if h.pubsub != nil {
		_ = h.pubsub.Close()
	}
}
