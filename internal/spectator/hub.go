// internal/spectator/hub.go
package spectator

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"tank-arena/internal/event"
	"tank-arena/internal/logging"

	"github.com/coder/websocket"
	"github.com/rs/zerolog"
)

// subscriberBuffer — сколько кадров может отстать зритель, прежде чем кадры начнут теряться.
const subscriberBuffer = 64

const writeTimeout = 2 * time.Second

// Frame is one JSON message of the spectator stream.
type Frame struct {
	Match string          `json:"match"`
	Type  event.EventType `json:"type"`
	Time  float64         `json:"time"`
	Data  any             `json:"data,omitempty"`
}

// Hub рассылает игровые события всем подключённым зрителям.
type Hub struct {
	mu     sync.Mutex
	subs   map[chan []byte]struct{}
	match  string
	log    zerolog.Logger
	joined chan struct{} // сигнал о новом подписчике, для тестов и ожидания
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		subs:   make(map[chan []byte]struct{}),
		log:    logging.For(log, "spectator"),
		joined: make(chan struct{}, 1),
	}
}

// OnEvent is called on the game loop; slow spectators lose frames instead of stalling it.
func (h *Hub) OnEvent(e event.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if e.Type == event.MatchReset {
		if p, ok := e.Data.(event.MatchPayload); ok && p.Match != "" {
			h.match = p.Match
		}
	}
	if len(h.subs) == 0 {
		return
	}
	msg, err := json.Marshal(Frame{Match: h.match, Type: e.Type, Time: e.Time, Data: e.Data})
	if err != nil {
		h.log.Error().Err(err).Str("event", string(e.Type)).Msg("encode frame")
		return
	}
	for ch := range h.subs {
		select {
		case ch <- msg:
		default:
			h.log.Debug().Msg("spectator lagging, frame dropped")
		}
	}
}

// Subscribers returns the number of connected spectators.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

func (h *Hub) subscribe() chan []byte {
	ch := make(chan []byte, subscriberBuffer)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	select {
	case h.joined <- struct{}{}:
	default:
	}
	return ch
}

func (h *Hub) unsubscribe(ch chan []byte) {
	h.mu.Lock()
	delete(h.subs, ch)
	h.mu.Unlock()
}

// ServeHTTP upgrades the request and streams frames until either side closes.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // зрители подключаются из локального браузера
	})
	if err != nil {
		h.log.Warn().Err(err).Msg("accept spectator")
		return
	}
	defer conn.CloseNow()

	// входящие сообщения не ожидаются; CloseRead отменяет ctx при закрытии клиентом
	ctx := conn.CloseRead(r.Context())
	ch := h.subscribe()
	defer h.unsubscribe(ch)
	h.log.Info().Str("remote", r.RemoteAddr).Msg("spectator joined")

	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-ch:
			wctx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := conn.Write(wctx, websocket.MessageText, msg)
			cancel()
			if err != nil {
				h.log.Debug().Err(err).Msg("spectator left")
				return
			}
		}
	}
}

// Serve listens on addr until ctx is cancelled. Трансляция необязательна:
// ошибка сервера только пишется в лог, и Serve возвращает nil, чтобы соседние
// фоновые задачи продолжали работать.
func (h *Hub) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/ws", h)
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errc := make(chan error, 1)
	go func() {
		h.log.Info().Str("addr", addr).Msg("spectator stream listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		h.log.Error().Err(err).Str("addr", addr).Msg("spectator stream stopped")
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			h.log.Warn().Err(err).Msg("spectator shutdown")
		}
		return nil
	}
}
