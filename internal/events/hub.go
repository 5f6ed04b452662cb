package events

import "sync"

// Hub fans events out to SSE subscribers. A subscriber whose buffer is full
// misses the event rather than blocking the publisher.
type Hub struct {
	mu      sync.Mutex
	clients map[chan string]Subscriber
	buffer  int
}

func NewHub() *Hub {
	return &Hub{clients: make(map[chan string]Subscriber), buffer: 10}
}

func (h *Hub) Subscribe(sub Subscriber) chan string {
	ch := make(chan string, h.buffer)
	h.mu.Lock()
	h.clients[ch] = sub
	h.mu.Unlock()
	return ch
}

func (h *Hub) Unsubscribe(ch chan string) {
	h.mu.Lock()
	if _, ok := h.clients[ch]; ok {
		delete(h.clients, ch)
		close(ch)
	}
	h.mu.Unlock()
}

// Publish delivers evt to every subscriber.
func (h *Hub) Publish(evt string) {
	h.PublishTo(Everyone, evt)
}

func (h *Hub) PublishTo(aud Audience, evt string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch, sub := range h.clients {
		if !aud.Allows(sub) {
			continue
		}
		select {
		case ch <- evt:
		default:
			// drop if slow
		}
	}
}

func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
