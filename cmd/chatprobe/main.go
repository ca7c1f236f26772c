// Package main provides a smoke and load testing tool for the chat WebSocket relay.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/url"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
)

// Metrics tracks the probe results
type Metrics struct {
	ConnectionsAttempted int64
	ConnectionsSuccess   int64
	ConnectionsFailed    int64
	MessagesSent         int64
	MessagesReceived     int64
	HistoryEvents        int64
	UserCountEvents      int64
	Errors               int64
}

var metrics Metrics

func main() {
	host := flag.String("host", "localhost:5000", "API server host")
	clients := flag.Int("clients", 10, "Number of concurrent clients")
	duration := flag.Duration("duration", 30*time.Second, "Probe duration")
	interval := flag.Duration("interval", 2*time.Second, "Delay between messages per client")
	flag.Parse()

	log.Printf("Starting chat probe against %s with %d clients for %v", *host, *clients, *duration)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	var wg sync.WaitGroup
	stopChan := make(chan struct{})

	for i := 0; i < *clients; i++ {
		wg.Add(1)
		go runClient(*host, i, *interval, stopChan, &wg)
		time.Sleep(50 * time.Millisecond) // Stagger connections
	}

	select {
	case <-time.After(*duration):
		log.Println("Probe duration reached")
	case <-interrupt:
		log.Println("Interrupted")
	}

	close(stopChan)
	wg.Wait()
	report()
}

func runClient(host string, id int, interval time.Duration, stop <-chan struct{}, wg *sync.WaitGroup) {
	defer wg.Done()

	u := url.URL{Scheme: "ws", Host: host, Path: "/ws"}
	atomic.AddInt64(&metrics.ConnectionsAttempted, 1)

	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		atomic.AddInt64(&metrics.ConnectionsFailed, 1)
		log.Printf("client %d: dial failed: %v", id, err)
		return
	}
	atomic.AddInt64(&metrics.ConnectionsSuccess, 1)
	defer func() { _ = conn.Close() }()

	// Reader
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			_, raw, err := conn.ReadMessage()
			if err != nil {
				return
			}
			atomic.AddInt64(&metrics.MessagesReceived, 1)

			var event struct {
				Type string `json:"type"`
			}
			if err := json.Unmarshal(raw, &event); err != nil {
				atomic.AddInt64(&metrics.Errors, 1)
				continue
			}
			switch event.Type {
			case "history":
				atomic.AddInt64(&metrics.HistoryEvents, 1)
			case "user_count":
				atomic.AddInt64(&metrics.UserCountEvents, 1)
			}
		}
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	seq := 0
	for {
		select {
		case <-stop:
			_ = conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			select {
			case <-done:
			case <-time.After(time.Second):
			}
			return
		case <-done:
			return
		case <-ticker.C:
			seq++
			payload, _ := json.Marshal(map[string]string{
				"type":     "chat_message",
				"username": fmt.Sprintf("probe-%d", id),
				"content":  fmt.Sprintf("probe message %d from client %d", seq, id),
			})
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				atomic.AddInt64(&metrics.Errors, 1)
				return
			}
			atomic.AddInt64(&metrics.MessagesSent, 1)
		}
	}
}

func report() {
	log.Println("--- probe results ---")
	log.Printf("connections: %d attempted, %d ok, %d failed",
		atomic.LoadInt64(&metrics.ConnectionsAttempted),
		atomic.LoadInt64(&metrics.ConnectionsSuccess),
		atomic.LoadInt64(&metrics.ConnectionsFailed))
	log.Printf("messages: %d sent, %d received",
		atomic.LoadInt64(&metrics.MessagesSent),
		atomic.LoadInt64(&metrics.MessagesReceived))
	log.Printf("events: %d history, %d user_count",
		atomic.LoadInt64(&metrics.HistoryEvents),
		atomic.LoadInt64(&metrics.UserCountEvents))
	log.Printf("errors: %d", atomic.LoadInt64(&metrics.Errors))
}
