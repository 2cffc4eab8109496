package notify

import (
	"encoding/json"
	"testing"
	"time"
)

func TestHubRegisterBroadcastUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{
		Send: make(chan []byte, 10),
	}

	hub.register <- client

	note := Notification{Kind: "booking-created", EntityID: "abc123", Message: "New booking request", Timestamp: time.Now().Unix()}
	data, _ := json.Marshal(note)
	hub.Broadcast(data)

	select {
	case got := <-client.Send:
		if string(got) != string(data) {
			t.Fatalf("expected %s, got %s", data, got)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for notification")
	}

	hub.unregister <- client
}

func TestHubDropsSlowClient(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	// no buffer: the first broadcast cannot be delivered
	slow := &Client{Send: make(chan []byte)}
	hub.register <- slow

	hub.Broadcast([]byte(`{"kind":"event-updated"}`))

	deadline := time.After(1 * time.Second)
	for {
		hub.mu.Lock()
		gone := !hub.clients[slow]
		hub.mu.Unlock()
		if gone {
			return
		}
		select {
		case <-deadline:
			t.Fatal("slow client was not evicted")
		case <-time.After(10 * time.Millisecond):
		}
	}
}
