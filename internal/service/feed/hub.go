// internal/service/feed/hub.go

package feed

import (
	"context"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"

	"fashiontrends/internal/domain/trend"
	"fashiontrends/internal/logging"
	"fashiontrends/internal/metrics"
)

// MessageTypeTrendingColors tags a trending-color snapshot frame
const MessageTypeTrendingColors = "trending_colors"

// Snapshot is a single frame pushed to feed clients
type Snapshot struct {
	Type      string              `json:"type"`
	Region    string              `json:"region"`
	Data      []trend.RankedColor `json:"data"`
	Timestamp time.Time           `json:"timestamp"`
}

// HubConfig contains configuration for the feed hub
type HubConfig struct {
	// Interval between snapshot broadcasts
	Interval time.Duration

	// Client contains per-connection websocket settings
	Client ClientConfig
}

// DefaultHubConfig returns the default hub configuration
func DefaultHubConfig() HubConfig {
	return HubConfig{
		Interval: 5 * time.Second,
		Client:   DefaultClientConfig(),
	}
}

// Hub re-ranks trending colors on an interval and pushes the result to
// every connected websocket client
type Hub struct {
	engine     trend.Aggregator
	config     HubConfig
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mutex      sync.RWMutex
}

// NewHub creates a new feed hub
func NewHub(engine trend.Aggregator, config HubConfig) *Hub {
	if config.Interval <= 0 {
		config.Interval = DefaultHubConfig().Interval
	}
	return &Hub{
		engine:     engine,
		config:     config,
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run processes registrations and broadcasts until ctx is cancelled
func (h *Hub) Run(ctx context.Context) {
	ticker := time.NewTicker(h.config.Interval)
	defer ticker.Stop()
	defer h.shutdown()

	for {
		select {
		case <-ctx.Done():
			return
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.mutex.Unlock()
			metrics.FeedClients.Inc()
		case client := <-h.unregister:
			h.remove(client)
		case <-ticker.C:
			h.broadcast()
		}
	}
}

// Attach starts serving an upgraded connection for the given region filter
func (h *Hub) Attach(conn *websocket.Conn, region string) {
	client := newClient(h, conn, region, h.config.Client)

	// first frame goes out before the client joins the broadcast set
	if frame, err := h.snapshot(region); err == nil {
		client.send <- frame
	}

	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

// Clients returns the number of registered clients
func (h *Hub) Clients() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

func (h *Hub) broadcast() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if len(h.clients) == 0 {
		return
	}

	// one ranking per region filter per tick
	frames := make(map[string][]byte)
	for client := range h.clients {
		frame, ok := frames[client.region]
		if !ok {
			var err error
			frame, err = h.snapshot(client.region)
			if err != nil {
				logging.Error().Err(err).Str("region", client.region).Msg("Failed to encode trend snapshot")
				continue
			}
			frames[client.region] = frame
		}

		select {
		case client.send <- frame:
		default:
			// slow consumer
			close(client.send)
			delete(h.clients, client)
			metrics.FeedClients.Dec()
		}
	}

	metrics.FeedBroadcastsTotal.Inc()
}

func (h *Hub) snapshot(region string) ([]byte, error) {
	return json.Marshal(Snapshot{
		Type:      MessageTypeTrendingColors,
		Region:    region,
		Data:      h.engine.TrendingColors(region),
		Timestamp: time.Now(),
	})
}

func (h *Hub) remove(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
		metrics.FeedClients.Dec()
	}
}

func (h *Hub) shutdown() {
	close(h.done)

	h.mutex.Lock()
	defer h.mutex.Unlock()

	for client := range h.clients {
		close(client.send)
		delete(h.clients, client)
		metrics.FeedClients.Dec()
	}
}
