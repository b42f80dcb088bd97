// internal/server/handlers/websocket.go

package handlers

import (
	"net/http"

	"github.com/gorilla/websocket"

	"fashiontrends/internal/logging"
	"fashiontrends/internal/service/feed"
)

// upgrader is used to upgrade HTTP connections to WebSocket. Origin checks are
// left to the CORS configuration, which allows any origin by default.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// FeedWebSocketHandler streams trending-color snapshots for the region query parameter
func FeedWebSocketHandler(hub *feed.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade has already written an HTTP error
			logging.Warn().Err(err).Msg("Failed to upgrade to WebSocket")
			return
		}

		region := r.URL.Query().Get("region")
		logging.Info().Str("region", region).Str("remote", r.RemoteAddr).Msg("Feed client connected")

		hub.Attach(conn, region)
	}
}
