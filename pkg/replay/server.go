// Package replay runs the HTTP replay server: submit an AST, get a run
// ID back, then stream that run's simulator events over a WebSocket as
// they're produced (SPEC_FULL.md's Replay Server module, grounded on the
// teacher's JSON-RPC notification/subscription machinery).
package replay

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lupyuen/ulispc/pkg/ast"
	"github.com/lupyuen/ulispc/pkg/cache"
	"github.com/lupyuen/ulispc/pkg/runid"
	"github.com/lupyuen/ulispc/pkg/simulator"
	"github.com/lupyuen/ulispc/pkg/store"
	"github.com/lupyuen/ulispc/pkg/transcoder"
)

// Server is the replay HTTP server: POST /runs submits a script, GET
// /runs/{id}/events streams that run's simulator events, /metrics
// exposes the prometheus gauges registered in metrics.go.
type Server struct {
	runs     *store.RunStore
	upgrader websocket.Upgrader
	cache    *cache.Cache

	mu        sync.Mutex
	subs      map[string][]chan simulator.Event
	transcode func(ast.Program) (string, error)
}

// ServerOption configures optional Server behavior.
type ServerOption func(*Server)

// WithCache fronts transcode with an LRU cache keyed by the submitted
// AST's raw JSON, so repeated submissions of the same script skip the
// transcoder walk (SPEC_FULL.md's Transcode Cache module, consulted
// here since a long-running replay server is the natural place repeat
// submissions show up).
func WithCache(c *cache.Cache) ServerOption {
	return func(s *Server) { s.cache = c }
}

// NewServer returns a Server persisting runs in runs. transcode defaults
// to transcoder.Transcode when nil.
func NewServer(runs *store.RunStore, transcode func(ast.Program) (string, error), opts ...ServerOption) *Server {
	if transcode == nil {
		transcode = func(p ast.Program) (string, error) { return transcoder.Transcode(p) }
	}
	s := &Server{
		runs:      runs,
		upgrader:  websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }},
		subs:      make(map[string][]chan simulator.Event),
		transcode: transcode,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the server's http.Handler, routing the three endpoints
// spec documents.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/runs", s.handleSubmitRun)
	mux.HandleFunc("/runs/", s.handleRunEvents)
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

type submitRequest struct {
	AST json.RawMessage `json:"ast"`
}

type submitResponse struct {
	RunID string `json:"run_id"`
}

func (s *Server) handleSubmitRun(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var program ast.Program
	if err := json.Unmarshal(req.AST, &program); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	var cacheKey uint64
	var ulisp string
	cached := false
	if s.cache != nil {
		cacheKey = cache.Key(req.AST)
		ulisp, cached = s.cache.Get(cacheKey)
	}

	if !cached {
		start := time.Now()
		var err error
		ulisp, err = s.transcode(program)
		transcodeDuration.Observe(time.Since(start).Seconds())
		transcodeTotal.Inc()
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		if s.cache != nil {
			s.cache.Put(cacheKey, ulisp)
		}
	}

	id := runid.New()
	if s.runs != nil {
		if _, err := s.runs.Put(store.Run{AST: req.AST, ULisp: ulisp}); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(submitResponse{RunID: id.String()})
}

func (s *Server) handleRunEvents(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	id := r.URL.Path[len("/runs/"):]
	const suffix = "/events"
	if len(id) <= len(suffix) || id[len(id)-len(suffix):] != suffix {
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseUnsupportedData, "expected /runs/{id}/events"))
		return
	}
	id = id[:len(id)-len(suffix)]

	ch := s.subscribe(id)
	defer s.unsubscribe(id, ch)

	for ev := range ch {
		payload, err := json.Marshal(ev)
		if err != nil {
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}

// Publish delivers ev to every subscriber currently streaming runID's
// events (spec.md's push-not-poll design). Delivery does not block: a
// subscriber whose 16-event buffer is full does not receive ev.
func (s *Server) Publish(runID string, ev simulator.Event) {
	simulationEventsTotal.Inc()

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.subs[runID] {
		select {
		case ch <- ev:
		default:
		}
	}
}

func (s *Server) subscribe(runID string) chan simulator.Event {
	ch := make(chan simulator.Event, 16)
	s.mu.Lock()
	s.subs[runID] = append(s.subs[runID], ch)
	s.mu.Unlock()
	return ch
}

func (s *Server) unsubscribe(runID string, ch chan simulator.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	chans := s.subs[runID]
	for i, c := range chans {
		if c == ch {
			s.subs[runID] = append(chans[:i], chans[i+1:]...)
			close(ch)
			return
		}
	}
}
