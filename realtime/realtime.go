package realtime

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

var (
	feedClients = make(map[*websocket.Conn]bool) // Connected live-feed clients
	broadcast   = make(chan FeedEvent)           // Broadcast channel for exhibition events
	mutex       sync.Mutex                       // Protects feedClients
)

// Event types published on the live feed
const (
	EventCatCreated      = "cat_created"
	EventCatUpdated      = "cat_updated"
	EventCatDeleted      = "cat_deleted"
	EventRatingSubmitted = "rating_submitted"
)

// FeedEvent represents one exhibition event pushed to connected clients
type FeedEvent struct {
	Type    string      `json:"type"`
	CatID   string      `json:"cat_id"`
	Payload interface{} `json:"payload,omitempty"`
}

// RegisterClient adds a WebSocket client to the live feed
func RegisterClient(conn *websocket.Conn) {
	mutex.Lock()
	feedClients[conn] = true
	mutex.Unlock()
}

// UnregisterClient removes a WebSocket client from the live feed
func UnregisterClient(conn *websocket.Conn) {
	mutex.Lock()
	delete(feedClients, conn)
	mutex.Unlock()
}

// BroadcastEvent sends an event to all connected clients
func BroadcastEvent(event FeedEvent) {
	broadcast <- event
}

func handleBroadcast() {
	for {
		event := <-broadcast
		mutex.Lock()
		for client := range feedClients {
			if err := client.WriteJSON(event); err != nil {
				log.Printf("WebSocket write error: %v", err)
				client.Close()
				delete(feedClients, client)
			}
		}
		mutex.Unlock()
	}
}

func init() {
	go handleBroadcast()
}
