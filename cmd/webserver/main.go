package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/trytobebee/snake_classic/pkg/config"
	"github.com/trytobebee/snake_classic/pkg/game"
	"github.com/trytobebee/snake_classic/pkg/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

type ServerMessage struct {
	Type   string           `json:"type"`
	Event  string           `json:"event,omitempty"`
	Config *game.GameConfig `json:"config,omitempty"`
	State  *game.GameState  `json:"state,omitempty"`
}

type ClientMessage struct {
	Action string `json:"action"`
}

// server tracks active connections so one IP plays one game at a time
type server struct {
	log       *zap.SugaredLogger
	interval  time.Duration
	activeIPs sync.Map
}

// parseAction maps a client action to a session command
func parseAction(action string) (game.Command, bool) {
	if dir, ok := game.ParseDirection(action); ok {
		return game.Steer(dir), true
	}
	switch action {
	case "start":
		return game.Command{Kind: game.CmdStart}, true
	case "restart":
		return game.Command{Kind: game.CmdRestart}, true
	case "reset":
		return game.Command{Kind: game.CmdReset}, true
	case "pause":
		return game.Command{Kind: game.CmdPause}, true
	case "auto":
		return game.Command{Kind: game.CmdAutoPlay}, true
	}
	return game.Command{}, false
}

// clientConn queues outgoing frames so a slow client never stalls the
// session goroutine
type clientConn struct {
	ws   *websocket.Conn
	send chan []byte
}

func (c *clientConn) enqueue(msg ServerMessage) {
	b, err := json.Marshal(msg)
	if err != nil {
		return
	}
	select {
	case c.send <- b:
	default:
		// Drop the frame; the next snapshot supersedes it
	}
}

func (c *clientConn) writePump(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg := <-c.send:
			c.ws.SetWriteDeadline(time.Now().Add(5 * time.Second))
			if err := c.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
				return err
			}
		}
	}
}

func (s *server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warnw("upgrade error", "remote", r.RemoteAddr, "error", err)
		return
	}
	defer conn.Close()

	if _, loaded := s.activeIPs.LoadOrStore(ip, true); loaded {
		s.log.Infow("connection rejected, IP already playing", "ip", ip)
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "Already connected"))
		return
	}
	defer s.activeIPs.Delete(ip)

	client := &clientConn{ws: conn, send: make(chan []byte, 64)}

	g := game.NewGame(game.WithSeed(time.Now().UnixNano()))
	sess := game.NewSession(g,
		game.WithClock(game.NewTickerClock(s.interval)),
		game.WithController(&game.HeuristicController{}),
		game.WithLogger(s.log),
		game.WithObserver(func(event string, state game.GameState) {
			client.enqueue(ServerMessage{Type: "state", Event: event, State: &state})
		}),
	)
	log := s.log.With("session", sess.ID, "ip", ip)
	log.Infow("new websocket connection")

	// Config goes out before the session publishes its first state
	gameConfig := sess.Config()
	gameConfig.TickInterval = int(s.interval.Milliseconds())
	client.enqueue(ServerMessage{Type: "config", Config: &gameConfig})

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	go sess.Run(ctx)
	go func() {
		if err := client.writePump(ctx); err != nil {
			log.Infow("write error", "error", err)
		}
		cancel()
		// Unblocks the read loop below
		conn.Close()
	}()

	// Input handling runs on the handler goroutine
	conn.SetReadLimit(1 << 16)
	for {
		var msg ClientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Infow("read error", "error", err)
			}
			return
		}
		cmd, ok := parseAction(msg.Action)
		if !ok {
			log.Debugw("unknown action", "action", msg.Action)
			continue
		}
		sess.Send(cmd)
	}
}

func main() {
	var (
		addr      = flag.String("addr", config.ListenAddr, "server listen address, e.g. :8080")
		staticDir = flag.String("static", config.StaticDir, "directory with the web client")
		interval  = flag.Duration("interval", config.TickInterval, "time between snake moves")
		logLevel  = flag.String("log-level", "info", "log level: debug, info, warn, error")
	)
	flag.Parse()

	log, err := logger.NewConsole(*logLevel)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync(log)

	s := &server{log: log, interval: *interval}

	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(*staticDir)))
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{Addr: *addr, Handler: mux}

	go func() {
		log.Infof("🚀 Snake web server listening on %s", *addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("shutdown", "error", err)
	}
}
