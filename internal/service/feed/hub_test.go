package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"

	"fashiontrends/internal/adapter/storage"
	"fashiontrends/internal/logging"
	"fashiontrends/internal/service/analytics"
)

func TestMain(m *testing.M) {
	logging.Init(logging.Config{Level: "disabled"})
	os.Exit(m.Run())
}

func startHub(t *testing.T, interval time.Duration) (*Hub, *httptest.Server) {
	t.Helper()

	hub := NewHub(analytics.NewEngine(storage.NewTrendStore()), HubConfig{
		Interval: interval,
		Client:   DefaultClientConfig(),
	})

	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Attach(conn, r.URL.Query().Get("region"))
	}))

	t.Cleanup(func() {
		srv.Close()
		cancel()
	})

	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/?" + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readSnapshot(t *testing.T, conn *websocket.Conn) Snapshot {
	t.Helper()

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	return snap
}

func TestAttachSendsInitialSnapshot(t *testing.T) {
	_, srv := startHub(t, time.Hour)
	conn := dial(t, srv, "region=Asia")

	snap := readSnapshot(t, conn)
	if snap.Type != MessageTypeTrendingColors {
		t.Fatalf("unexpected type %q", snap.Type)
	}
	if len(snap.Data) != 8 {
		t.Fatalf("expected 8 colors, got %d", len(snap.Data))
	}
	for _, c := range snap.Data {
		if c.Region != "Asia" {
			t.Fatalf("unexpected region %q", c.Region)
		}
	}
}

func TestHubBroadcasts(t *testing.T) {
	hub, srv := startHub(t, 20*time.Millisecond)
	conn := dial(t, srv, "region=all")

	readSnapshot(t, conn)
	snap := readSnapshot(t, conn)
	if len(snap.Data) != 80 {
		t.Fatalf("expected 80 colors, got %d", len(snap.Data))
	}

	deadline := time.Now().Add(2 * time.Second)
	for hub.Clients() != 1 {
		if time.Now().After(deadline) {
			t.Fatalf("expected 1 client, got %d", hub.Clients())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHubDropsClosedClients(t *testing.T) {
	hub, srv := startHub(t, time.Hour)
	conn := dial(t, srv, "")
	readSnapshot(t, conn)

	conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for hub.Clients() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("expected 0 clients, got %d", hub.Clients())
		}
		time.Sleep(5 * time.Millisecond)
	}
}
