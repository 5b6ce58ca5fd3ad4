// Package monitor implements the opt-in progress server (spec.md §4.J): a
// JWT-authenticated WebSocket endpoint that fans out decode-progress events
// to connected clients. Entirely decoupled from decode correctness.
package monitor

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// clientBuffer is the per-connection outbound queue depth. A slow or
// disconnected client falls behind and starts missing events rather than
// blocking the fan-out goroutine.
const clientBuffer = 64

// Server accepts websocket clients bearing a valid bearer token and relays
// every Event it receives on its input channel to all connected clients.
type Server struct {
	secret []byte

	mu      sync.Mutex
	clients map[string]chan Event

	upgrader websocket.Upgrader
}

// NewServer returns a Server that validates incoming tokens against secret.
func NewServer(secret []byte) *Server {
	return &Server{
		secret:  secret,
		clients: make(map[string]chan Event),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// Claims is the expected JWT payload shape. authenticate verifies the HMAC
// signature and any standard time claims present; Subject is not checked.
// The standard claim set lets a deployment add expiry without changing this
// code.
type Claims struct {
	jwt.RegisteredClaims
}

func (s *Server) authenticate(r *http.Request) error {
	header := r.Header.Get("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if token == header || token == "" {
		return jwt.ErrTokenMalformed
	}
	_, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	return err
}

// ServeHTTP upgrades authenticated requests to a websocket and registers the
// connection to receive subsequent Broadcast calls.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := s.authenticate(r); err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("monitor: upgrade failed: %v", err)
		return
	}

	id := uuid.NewString()
	ch := make(chan Event, clientBuffer)
	s.mu.Lock()
	s.clients[id] = ch
	s.mu.Unlock()

	go s.serveClient(id, conn, ch)
}

func (s *Server) serveClient(id string, conn *websocket.Conn, ch chan Event) {
	defer func() {
		s.mu.Lock()
		delete(s.clients, id)
		s.mu.Unlock()
		conn.Close()
	}()
	for ev := range ch {
		frame, err := json.Marshal(ev)
		if err != nil {
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
			return
		}
	}
}

// Broadcast fans ev out to every connected client, dropping it for clients
// whose outbound buffer is already full.
func (s *Server) Broadcast(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.clients {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Pump reads events off in and broadcasts each to connected clients until in
// is closed. Intended to run in its own goroutine alongside a decode batch.
func (s *Server) Pump(in <-chan Event) {
	for ev := range in {
		s.Broadcast(ev)
	}
}

// IssueToken mints an HS256 bearer token for subject, signed with the
// server's secret (spec.md §4.J "signed bearer token ... default claim
// sub=cli-operator").
func (s *Server) IssueToken(subject string) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: subject},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
